package get_snapshot

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

type Sessions interface {
	Get(id string) (*wizard.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
