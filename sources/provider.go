package sources

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/classcheck/logs"
	"github.com/reusee/classcheck/nets"
	"github.com/reusee/dscope"
)

// Provider resolves command line arguments into sources.
type Provider struct {
	NameMatch  dscope.Inject[NameMatch]
	Logger     dscope.Inject[logs.Logger]
	HTTPClient dscope.Inject[nets.HTTPClient]
}

func (Module) Provider(
	inject dscope.InjectStruct,
) (ret Provider) {
	inject(&ret)
	return
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://")
}

func isText(content []byte) bool {
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}

// IterSources yields one source per URL, per file argument and per text file found under directory arguments.
// Directories are walked breadth-first, skipping hidden entries and names rejected by NameMatch.
// Iteration stops at the first error.
func (p Provider) IterSources(ctx context.Context, paths []string) iter.Seq2[*Source, error] {
	return func(yield func(*Source, error) bool) {
		if err := p.NameMatch().Err; err != nil {
			yield(nil, err)
			return
		}
		for _, path := range paths {
			if isURL(path) {
				src, err := p.fetch(ctx, path)
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(src, nil) {
					return
				}
				continue
			}
			stat, err := os.Stat(path)
			if err != nil {
				yield(nil, wrap(err))
				return
			}
			if !stat.IsDir() {
				content, err := os.ReadFile(path)
				if err != nil {
					yield(nil, wrap(err))
					return
				}
				if !yield(NewSource(path, string(content)), nil) {
					return
				}
				continue
			}
			for src, err := range p.walk(ctx, path) {
				if !yield(src, err) || err != nil {
					return
				}
			}
		}
	}
}

func (p Provider) walk(ctx context.Context, root string) iter.Seq2[*Source, error] {
	return func(yield func(*Source, error) bool) {
		queue := []string{root}

		handlePath := func(path string) (stop bool, err error) {
			baseName := filepath.Base(path)

			// ignore hidden files
			if path != root && strings.HasPrefix(baseName, ".") {
				return false, nil
			}

			file, err := os.Open(path)
			if err != nil {
				return false, wrap(err)
			}
			defer file.Close()

			stat, err := file.Stat()
			if err != nil {
				return false, wrap(err)
			}

			if stat.IsDir() {
				entries, err := file.ReadDir(0)
				if err != nil {
					return false, wrap(err)
				}
				names := make([]string, 0, len(entries))
				for _, entry := range entries {
					names = append(names, entry.Name())
				}
				slices.Sort(names)
				for _, name := range names {
					queue = append(queue, filepath.Join(path, name))
				}
				return false, nil
			}

			if !p.NameMatch().Match(path) {
				return false, nil
			}

			content, err := io.ReadAll(file)
			if err != nil {
				return false, wrap(err)
			}
			if !isText(content) {
				p.Logger().DebugContext(ctx, "skip non-text file", "path", path)
				return false, nil
			}

			if !yield(NewSource(path, string(content)), nil) {
				return true, nil
			}
			return false, nil
		}

		for len(queue) > 0 {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			path := queue[0]
			queue = queue[1:]
			if stop, err := handlePath(path); err != nil {
				yield(nil, err)
				return
			} else if stop {
				return
			}
		}
	}
}

func (p Provider) fetch(ctx context.Context, url string) (*Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wrap(err)
	}
	resp, err := p.HTTPClient().Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, wrap(fmt.Errorf("fetch %s: %s", url, resp.Status))
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrap(err)
	}
	p.Logger().DebugContext(ctx, "fetched", "url", url, "bytes", len(content))
	return NewSource(url, string(content)), nil
}
