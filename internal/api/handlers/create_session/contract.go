package create_session

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

type Sessions interface {
	Create(token string) (*wizard.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
