package sessions

import (
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

// SessionFactory создает новую сессию конфигуратора с её widget-токеном
type SessionFactory func(id string, token string) *wizard.Session

// Gauge интерфейс для метрики числа живых сессий
type Gauge interface {
	Inc()
	Dec()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// noopGauge используется, когда метрики выключены
type noopGauge struct{}

func (noopGauge) Inc() {}
func (noopGauge) Dec() {}
