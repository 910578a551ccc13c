package catalog

import (
	"context"

	"github.com/m04kA/SMC-ConfiguratorService/internal/integrations/bookingapi"
)

// CatalogClient интерфейс клиента booking-бэкенда для загрузки каталога
type CatalogClient interface {
	FetchServices(ctx context.Context, token string) ([]bookingapi.Service, error)
	FetchExtras(ctx context.Context, token string, serviceID int64) ([]bookingapi.Extra, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
