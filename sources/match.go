package sources

import (
	"fmt"
	"regexp"

	"github.com/reusee/classcheck/cmds"
	"github.com/reusee/classcheck/configs"
	"github.com/reusee/classcheck/vars"
)

var matchFlag string

func init() {
	cmds.Define("-match", cmds.Func(func(re string) error {
		if _, err := regexp.Compile(re); err != nil {
			return fmt.Errorf("bad pattern: %w", err)
		}
		matchFlag = re
		return nil
	}).Desc("only check files whose path matches the regular expression when walking directories"))
}

type Match string

func (Module) Match(
	loader configs.Loader,
) Match {
	return vars.FirstNonZero(
		Match(matchFlag),
		configs.First[Match](loader, "match"),
	)
}

// NameMatch filters file paths found while walking directories.
// Err holds the compile error of a bad pattern; IterSources reports it.
type NameMatch struct {
	re  *regexp.Regexp
	Err error
}

func (n NameMatch) Match(path string) bool {
	if n.Err != nil {
		return false
	}
	return n.re == nil || n.re.MatchString(path)
}

func (Module) NameMatch(
	match Match,
) (ret NameMatch) {
	if match == "" {
		return
	}
	re, err := regexp.Compile(string(match))
	if err != nil {
		ret.Err = wrap(fmt.Errorf("match %q: %w", match, err))
		return
	}
	ret.re = re
	return
}
