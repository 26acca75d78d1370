package analyzers

import (
	"context"
	"time"

	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/configs"
	"github.com/reusee/classcheck/lexers"
	"github.com/reusee/classcheck/logs"
	"github.com/reusee/classcheck/sources"
	"github.com/reusee/classcheck/symbols"
	"github.com/reusee/classcheck/tokens"
	"github.com/reusee/classcheck/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
}

var (
	lineCommentsFlag = cmds.Switch("-line-comments")
	traceFlag        = cmds.Switch("-trace")
)

// Options controls how sources are analyzed.
type Options struct {
	LineComments bool
	TraceTokens  bool
}

func (Module) Options(
	loader configs.Loader,
) Options {
	return Options{
		LineComments: vars.FirstNonZero(
			*lineCommentsFlag,
			configs.First[bool](loader, "line_comments"),
		),
		TraceTokens: vars.FirstNonZero(
			*traceFlag,
			configs.First[bool](loader, "trace_tokens"),
		),
	}
}

// Analyze checks one source. Failures carry the source and line as *sources.LineError.
type Analyze func(ctx context.Context, src *sources.Source, options ...lexers.Option) (*symbols.Table, error)

func (Module) Analyze(
	options Options,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Analyze {
	return func(ctx context.Context, src *sources.Source, extra ...lexers.Option) (*symbols.Table, error) {
		ctx, _ = newSpan(ctx, "", "source", src.Name)
		start := time.Now()

		lexerOptions := []lexers.Option{
			lexers.LineComments(options.LineComments),
		}
		if options.TraceTokens {
			lexerOptions = append(lexerOptions, lexers.OnToken(func(token tokens.Token) {
				logger.DebugContext(ctx, "token", "token", token)
			}))
		}
		lexerOptions = append(lexerOptions, extra...)

		table, err := Check(src.Reader(), lexerOptions...)
		if err != nil {
			err = sources.WithLine(err, src)
			logger.InfoContext(ctx, "check failed",
				"source", src.Name,
				"error", err,
				"duration", time.Since(start),
			)
			return table, err
		}

		logger.InfoContext(ctx, "check ok",
			"source", src.Name,
			"symbols", table.Len(),
			"duration", time.Since(start),
		)
		return table, nil
	}
}
