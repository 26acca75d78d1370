package nets

import (
	"github.com/reusee/classcheck/configs"
	"github.com/reusee/classcheck/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
