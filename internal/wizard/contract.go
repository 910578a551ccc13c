package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/integrations/bookingapi"
)

// Catalog интерфейс кэша каталога сессии
type Catalog interface {
	LoadServices(ctx context.Context) ([]domain.Service, error)
	LoadExtras(ctx context.Context, serviceID int64) ([]domain.Extra, error)
	ServiceByID(id int64) (*domain.Service, error)
	ExtraByID(serviceID, extraID int64) (*domain.Extra, error)
	Services() []domain.Service
	ExtrasFor(serviceID int64) []domain.Extra
}

// SlotsFetcher интерфейс загрузчика набора доступности
type SlotsFetcher interface {
	Fetch(ctx context.Context, date time.Time, durationMinutes int) (*domain.AvailabilitySet, error)
}

// ZipClient интерфейс клиента для асинхронных проверок индекса
type ZipClient interface {
	FetchZipSurcharge(ctx context.Context, token string, zipCode string) (float64, error)
	CheckZipAvailability(ctx context.Context, token string, zipCode string) (*bookingapi.ZipAvailabilityResponse, error)
}

// SubmitClient интерфейс клиента для создания бронирования
type SubmitClient interface {
	SubmitBooking(ctx context.Context, token string, payload *bookingapi.SubmitRequest) (*bookingapi.SubmitResult, error)
}

// PromoResolver резолвит промокод в ценовой множитель.
// Второй результат false означает неизвестный код
type PromoResolver interface {
	Resolve(code string) (float64, bool)
}

// StaticPromos таблица промокодов из конфигурации: код -> множитель
type StaticPromos map[string]float64

// Resolve implements PromoResolver.
func (p StaticPromos) Resolve(code string) (float64, bool) {
	multiplier, ok := p[code]
	return multiplier, ok
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
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
