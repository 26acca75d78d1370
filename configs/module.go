package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/classcheck/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

//go:embed schema.cue
var Schema string

var FileNames = []string{
	"classcheck.cue",
	".classcheck.cue",
}

// SearchDirs returns the directories probed for configuration files, most specific first.
func SearchDirs() []string {
	var ret []string
	if wd, err := os.Getwd(); err == nil {
		ret = append(ret, wd)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return ret
}

// FindFiles returns existing configuration files under dirs.
func FindFiles(dirs []string) []string {
	var ret []string
	for _, dir := range dirs {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			stat, err := os.Stat(path)
			if err != nil || stat.IsDir() {
				continue
			}
			ret = append(ret, path)
		}
	}
	return ret
}

func (Module) Loader(
	logger logs.Logger,
) Loader {
	paths := FindFiles(SearchDirs())
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return NewLoader(paths, Schema)
}
