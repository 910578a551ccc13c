package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// Fetcher загружает набор слотов для пары (дата, требуемая длительность).
// Набор всегда заменяется целиком; инкрементальное слияние не выполняется.
// Отбрасывание устаревших ответов - ответственность вызывающей сессии:
// Fetcher лишь помечает набор параметрами запроса (AvailabilitySet.Matches)
type Fetcher struct {
	client SlotsClient
	token  string
	log    Logger
}

// NewFetcher создает Fetcher для сессии с её widget-токеном
func NewFetcher(client SlotsClient, token string, log Logger) *Fetcher {
	return &Fetcher{
		client: client,
		token:  token,
		log:    log,
	}
}

// Fetch запрашивает слоты на дату с учетом требуемой длительности.
// Пустой список от бэкенда (nil или нулевой длины) считается некорректным
// ответом: легитимный день без свободных слотов приходит непустым списком
// с isOpen=false
func (f *Fetcher) Fetch(ctx context.Context, date time.Time, durationMinutes int) (*domain.AvailabilitySet, error) {
	fetched, err := f.client.FetchSlots(ctx, f.token, date, durationMinutes)
	if err != nil {
		f.log.Error("Availability: failed to fetch slots for date=%s, duration=%d: %v",
			date.Format(domain.DateFormat), durationMinutes, err)
		return nil, fmt.Errorf("%w: %v", ErrSlotsUnavailable, err)
	}

	if len(fetched) == 0 {
		f.log.Error("Availability: backend returned no slot list for date=%s, duration=%d",
			date.Format(domain.DateFormat), durationMinutes)
		return nil, fmt.Errorf("%w: empty payload", ErrSlotsUnavailable)
	}

	slots := make([]domain.TimeSlot, 0, len(fetched))
	for _, s := range fetched {
		t, err := types.NewTimeStringFromString(s.Time)
		if err != nil {
			f.log.Error("Availability: malformed slot time %q for date=%s: %v",
				s.Time, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: malformed slot time %q", ErrSlotsUnavailable, s.Time)
		}
		slots = append(slots, domain.TimeSlot{Time: t, IsOpen: s.IsOpen})
	}

	set := &domain.AvailabilitySet{
		Date:            date,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}

	f.log.Info("Availability: fetched %d slots (%d open) for date=%s, duration=%d",
		len(slots), set.OpenCount(), date.Format(domain.DateFormat), durationMinutes)

	return set, nil
}
