package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/integrations/bookingapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotsClient struct {
	slots []bookingapi.Slot
	err   error
}

func (f *fakeSlotsClient) FetchSlots(ctx context.Context, token string, date time.Time, durationMinutes int) ([]bookingapi.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

func TestFetch_TagsSetWithRequestParams(t *testing.T) {
	client := &fakeSlotsClient{
		slots: []bookingapi.Slot{
			{Time: "09:00", IsOpen: true},
			{Time: "10:00", IsOpen: false},
		},
	}
	fetcher := NewFetcher(client, "token", nopLogger{})

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	set, err := fetcher.Fetch(context.Background(), date, 80)
	require.NoError(t, err)

	assert.True(t, set.Matches(date, 80))
	assert.False(t, set.Matches(date, 60))
	require.Len(t, set.Slots, 2)
	assert.True(t, set.SlotOpen("09:00"))
	assert.False(t, set.SlotOpen("10:00"))
	assert.Equal(t, 1, set.OpenCount())
}

func TestFetch_ClientError(t *testing.T) {
	client := &fakeSlotsClient{err: errors.New("connection refused")}
	fetcher := NewFetcher(client, "token", nopLogger{})

	_, err := fetcher.Fetch(context.Background(), time.Now(), 60)
	assert.ErrorIs(t, err, ErrSlotsUnavailable)
}

func TestFetch_NilSlotListIsError(t *testing.T) {
	// Легитимный день без свободного времени приходит непустым списком
	// закрытых слотов; nil-список означает сломанный ответ
	client := &fakeSlotsClient{slots: nil}
	fetcher := NewFetcher(client, "token", nopLogger{})

	_, err := fetcher.Fetch(context.Background(), time.Now(), 60)
	assert.ErrorIs(t, err, ErrSlotsUnavailable)
}

func TestFetch_EmptySlotListIsError(t *testing.T) {
	// {"slots":[]} декодируется в ненулевой пустой срез - для вызывающего
	// он равнозначен nil и тоже означает сломанный ответ
	client := &fakeSlotsClient{slots: []bookingapi.Slot{}}
	fetcher := NewFetcher(client, "token", nopLogger{})

	_, err := fetcher.Fetch(context.Background(), time.Now(), 60)
	assert.ErrorIs(t, err, ErrSlotsUnavailable)
}

func TestFetch_AllClosedDayIsLegitimate(t *testing.T) {
	client := &fakeSlotsClient{
		slots: []bookingapi.Slot{
			{Time: "09:00", IsOpen: false},
			{Time: "10:00", IsOpen: false},
		},
	}
	fetcher := NewFetcher(client, "token", nopLogger{})

	set, err := fetcher.Fetch(context.Background(), time.Now(), 60)
	require.NoError(t, err)
	assert.Equal(t, 0, set.OpenCount())
}

func TestFetch_MalformedSlotTime(t *testing.T) {
	client := &fakeSlotsClient{
		slots: []bookingapi.Slot{{Time: "9 o'clock", IsOpen: true}},
	}
	fetcher := NewFetcher(client, "token", nopLogger{})

	_, err := fetcher.Fetch(context.Background(), time.Now(), 60)
	assert.ErrorIs(t, err, ErrSlotsUnavailable)
}
