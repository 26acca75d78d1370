package sources

import (
	"github.com/reusee/classcheck/configs"
	"github.com/reusee/classcheck/logs"
	"github.com/reusee/classcheck/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
	Nets    nets.Module
}
