package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/integrations/bookingapi"
)

// SlotsClient интерфейс клиента booking-бэкенда для загрузки слотов
type SlotsClient interface {
	FetchSlots(ctx context.Context, token string, date time.Time, durationMinutes int) ([]bookingapi.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
