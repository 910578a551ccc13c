package wizard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/availability"
	"github.com/m04kA/SMC-ConfiguratorService/internal/catalog"
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-ConfiguratorService/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeBackend единый фейк booking-бэкенда: каталог, индексы, слоты, submit
type fakeBackend struct {
	services    []bookingapi.Service
	extras      map[int64][]bookingapi.Extra
	servicesErr error

	zipAvailable bool
	zipMessage   *string
	zipErr       error
	surcharge    float64
	surchargeErr error
	zipCalls     int

	slots      []bookingapi.Slot
	slotsErr   error
	slotsCalls int

	submitResult *bookingapi.SubmitResult
	submitErr    error
	submitCalls  int
	submitBlock  chan struct{} // если не nil, SubmitBooking ждет закрытия
	lastPayload  *bookingapi.SubmitRequest
}

func (f *fakeBackend) FetchServices(ctx context.Context, token string) ([]bookingapi.Service, error) {
	if f.servicesErr != nil {
		return nil, f.servicesErr
	}
	return f.services, nil
}

func (f *fakeBackend) FetchExtras(ctx context.Context, token string, serviceID int64) ([]bookingapi.Extra, error) {
	return f.extras[serviceID], nil
}

func (f *fakeBackend) CheckZipAvailability(ctx context.Context, token string, zipCode string) (*bookingapi.ZipAvailabilityResponse, error) {
	f.zipCalls++
	if f.zipErr != nil {
		return nil, f.zipErr
	}
	return &bookingapi.ZipAvailabilityResponse{Available: f.zipAvailable, Message: f.zipMessage}, nil
}

func (f *fakeBackend) FetchZipSurcharge(ctx context.Context, token string, zipCode string) (float64, error) {
	if f.surchargeErr != nil {
		return 0, f.surchargeErr
	}
	return f.surcharge, nil
}

func (f *fakeBackend) FetchSlots(ctx context.Context, token string, date time.Time, durationMinutes int) ([]bookingapi.Slot, error) {
	f.slotsCalls++
	if f.slotsErr != nil {
		return nil, f.slotsErr
	}
	return f.slots, nil
}

func (f *fakeBackend) SubmitBooking(ctx context.Context, token string, payload *bookingapi.SubmitRequest) (*bookingapi.SubmitResult, error) {
	f.submitCalls++
	f.lastPayload = payload
	if f.submitBlock != nil {
		<-f.submitBlock
	}
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitResult, nil
}

func defaultBackend() *fakeBackend {
	return &fakeBackend{
		services: []bookingapi.Service{
			{ID: 1, Name: "Window Cleaning", BasePrice: 40, PricePerSquareMeter: 0.5,
				BaseDurationMinutes: 60, SortOrder: 1, Active: true},
			{ID: 2, Name: "Deep Cleaning", BasePrice: 80, PricePerSquareMeter: 1.0,
				BaseDurationMinutes: 120, SortOrder: 2, Active: true},
		},
		extras: map[int64][]bookingapi.Extra{
			1: {
				{ID: 10, Name: "Frame wipe-down", Price: 15, DurationMinutes: 20, Active: true},
				{ID: 11, Name: "Eco detergent", Price: 5, DurationMinutes: 0, Active: true},
			},
			2: {
				{ID: 20, Name: "Fridge interior", Price: 25, DurationMinutes: 30, Active: true},
			},
		},
		zipAvailable: true,
		surcharge:    5,
		slots: []bookingapi.Slot{
			{Time: "09:00", IsOpen: true},
			{Time: "10:00", IsOpen: true},
			{Time: "11:00", IsOpen: false},
		},
		submitResult: &bookingapi.SubmitResult{Message: "Бронирование создано"},
	}
}

// asyncQueue откладывает фоновую работу до явного вызова drain -
// позволяет воспроизводить гонки устаревших ответов детерминированно
type asyncQueue struct {
	fns []func()
}

func (q *asyncQueue) runner() func(fn func()) {
	return func(fn func()) { q.fns = append(q.fns, fn) }
}

func (q *asyncQueue) drain() {
	for len(q.fns) > 0 {
		fn := q.fns[0]
		q.fns = q.fns[1:]
		fn()
	}
}

type testEnv struct {
	backend    *fakeBackend
	session    *Session
	queue      *asyncQueue
	staleKinds []string
}

// newTestEnv создает сессию с синхронным (sync=true) или отложенным
// запуском фоновой работы
func newTestEnv(t *testing.T, backend *fakeBackend, sync bool) *testEnv {
	t.Helper()

	env := &testEnv{backend: backend, queue: &asyncQueue{}}

	async := env.queue.runner()
	if sync {
		async = func(fn func()) { fn() }
	}

	env.session = NewSession(Config{
		ID:        "test-session",
		Token:     "widget-token",
		Catalog:   catalog.NewCache(backend, "widget-token", nopLogger{}),
		Slots:     availability.NewFetcher(backend, "widget-token", nopLogger{}),
		Zip:       backend,
		Submitter: backend,
		Promos:    StaticPromos{"WELCOME10": 0.9},
		Logger:    nopLogger{},
		Async:     async,
		StaleHook: func(kind string) { env.staleKinds = append(env.staleKinds, kind) },
	})
	env.session.Start(context.Background())

	return env
}

// completeDraft доводит черновик до состояния, проходящего все предикаты
func completeDraft(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	s := env.session

	s.SetZip("10115")

	_, err := s.SelectService(ctx, 1)
	require.NoError(t, err)

	_, err = s.SetSquareMeters(100)
	require.NoError(t, err)

	s.SetDate(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))

	_, err = s.SelectTime("10:00")
	require.NoError(t, err)

	for field, value := range map[string]string{
		"customerName":  "Anna Schmidt",
		"customerEmail": "anna@example.com",
		"customerPhone": "+49301234567",
		"address":       "Invalidenstr. 1, Berlin",
	} {
		_, err = s.SetCustomerField(field, value)
		require.NoError(t, err)
	}
}

func TestSession_StartLoadsCatalog(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	snap := env.session.Snapshot()
	assert.Equal(t, domain.StepLocation, snap.Step)
	assert.Len(t, snap.Services, 2)
	assert.Empty(t, snap.CatalogError)
}

func TestSession_StartSurvivesCatalogFailure(t *testing.T) {
	backend := defaultBackend()
	backend.servicesErr = fmt.Errorf("connection refused")
	env := newTestEnv(t, backend, true)

	snap := env.session.Snapshot()
	assert.NotEmpty(t, snap.CatalogError)
	assert.Empty(t, snap.Services)

	// Неудача не мемоизируется: повтор после восстановления бэкенда успешен
	backend.servicesErr = nil
	snap = env.session.RetryCatalog(context.Background())
	assert.Empty(t, snap.CatalogError)
	assert.Len(t, snap.Services, 2)
}

func TestSession_SetZipInvalidFormatSkipsNetwork(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	snap := env.session.SetZip("1234")

	assert.Equal(t, 0, env.backend.zipCalls)
	assert.False(t, snap.ZipCheckPending)
	assert.Equal(t, domain.ZipUnknown, snap.ZipStatus)
	assert.False(t, snap.IsAdvanceEnabled)
	require.Len(t, snap.FieldErrors, 1)
	assert.Equal(t, "zipCode", snap.FieldErrors[0].Field)
}

func TestSession_SetZipTwoPhasePricing(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), false)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)
	_, err = env.session.SetSquareMeters(100)
	require.NoError(t, err)

	// Первая фаза: проверки в полете, надбавка предварительно нулевая
	snap := env.session.SetZip("10115")
	assert.True(t, snap.ZipCheckPending)
	require.NotNil(t, snap.Pricing)
	assert.Equal(t, 0.0, snap.Pricing.ZipSurcharge)
	assert.Equal(t, 90.0, snap.Pricing.TotalPrice)

	// Вторая фаза: результат применен, детализация вытеснена
	env.queue.drain()
	snap = env.session.Snapshot()
	assert.False(t, snap.ZipCheckPending)
	assert.Equal(t, domain.ZipAvailable, snap.ZipStatus)
	require.NotNil(t, snap.Pricing)
	assert.Equal(t, 5.0, snap.Pricing.ZipSurcharge)
	assert.Equal(t, 95.0, snap.Pricing.TotalPrice)
}

func TestSession_SetZipStaleResultDiscarded(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), false)

	env.session.SetZip("10115")
	// Индекс меняется до возврата первой проверки
	env.session.SetZip("20095")

	env.queue.drain()

	snap := env.session.Snapshot()
	assert.Equal(t, "20095", snap.Draft.ZipCode)
	assert.Equal(t, domain.ZipAvailable, snap.ZipStatus)
	assert.False(t, snap.ZipCheckPending)
	assert.Equal(t, []string{"zip"}, env.staleKinds)
}

func TestSession_SetZipUnavailableBlocksAdvance(t *testing.T) {
	backend := defaultBackend()
	backend.zipAvailable = false
	message := "в этом районе пока не работаем"
	backend.zipMessage = &message
	env := newTestEnv(t, backend, true)

	snap := env.session.SetZip("99999")
	assert.Equal(t, domain.ZipUnavailable, snap.ZipStatus)
	assert.False(t, snap.IsAdvanceEnabled)

	_, err := env.session.Advance()
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "zipCode", verr.Fields[0].Field)
	assert.Equal(t, message, verr.Fields[0].Message)
}

func TestSession_SetZipCheckFailureKeepsStepPassable(t *testing.T) {
	backend := defaultBackend()
	backend.zipErr = fmt.Errorf("timeout")
	backend.surchargeErr = fmt.Errorf("timeout")
	env := newTestEnv(t, backend, true)

	// Недоступность проверки не блокирует шаг: вердикт остается unknown
	snap := env.session.SetZip("10115")
	assert.Equal(t, domain.ZipUnknown, snap.ZipStatus)
	assert.True(t, snap.IsAdvanceEnabled)

	_, err := env.session.Advance()
	require.NoError(t, err)
}

func TestSession_SelectServiceClearsExtrasOnChange(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)
	_, err = env.session.ToggleExtra(ctx, 10)
	require.NoError(t, err)

	// Повторный выбор той же услуги допуслуги не трогает
	snap, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)
	assert.True(t, snap.Draft.ExtraSelected(10))

	// Смена услуги сбрасывает выбор допуслуг
	snap, err = env.session.SelectService(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, snap.Draft.ExtraIDs())
	assert.Len(t, snap.Extras, 1)
}

func TestSession_SelectServiceUnknownID(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	_, err := env.session.SelectService(context.Background(), 99)
	assert.ErrorIs(t, err, catalog.ErrServiceNotFound)
}

func TestSession_ToggleExtraRequiresService(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	_, err := env.session.ToggleExtra(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNoServiceSelected)
}

func TestSession_ToggleExtraRejectsForeignExtra(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)

	// Допуслуга услуги 2 не принадлежит выбранной услуге 1
	_, err = env.session.ToggleExtra(ctx, 20)
	assert.ErrorIs(t, err, catalog.ErrExtraNotFound)
}

func TestSession_ToggleExtraUpdatesPricingAndDuration(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)
	_, err = env.session.SetSquareMeters(100)
	require.NoError(t, err)

	snap, err := env.session.ToggleExtra(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, snap.Pricing)
	assert.Equal(t, 15.0, snap.Pricing.ExtrasPrice)
	assert.Equal(t, 80, snap.Pricing.TotalDurationMinutes)

	// Повторный toggle снимает выбор
	snap, err = env.session.ToggleExtra(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, snap.Pricing.ExtrasPrice)
	assert.Equal(t, 60, snap.Pricing.TotalDurationMinutes)
}

func TestSession_SetSquareMetersValidation(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	_, err := env.session.SetSquareMeters(0)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "squareMeters", verr.Fields[0].Field)

	_, err = env.session.SetSquareMeters(domain.MaxSquareMeters + 1)
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	_, err = env.session.SetSquareMeters(50)
	assert.NoError(t, err)
}

func TestSession_SetDateFetchesSlotsAndClearsTime(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)

	day1 := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	snap := env.session.SetDate(day1)
	require.NotNil(t, snap.Availability)
	assert.True(t, snap.Availability.Matches(day1, 60))

	_, err = env.session.SelectTime("10:00")
	require.NoError(t, err)

	// Смена даты сбрасывает время: оно относилось к набору прежней даты
	day2 := day1.AddDate(0, 0, 1)
	snap = env.session.SetDate(day2)
	assert.Empty(t, snap.Draft.BookingTime)
	require.NotNil(t, snap.Availability)
	assert.True(t, snap.Availability.Matches(day2, 60))

	// Повторная установка той же даты время не трогает
	_, err = env.session.SelectTime("09:00")
	require.NoError(t, err)
	snap = env.session.SetDate(day2)
	assert.Equal(t, "09:00", snap.Draft.BookingTime)
}

func TestSession_SelectTimeEnforcesOpenSlot(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)
	env.session.SetDate(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))

	// Закрытый слот
	_, err = env.session.SelectTime("11:00")
	_, ok := AsValidationError(err)
	assert.True(t, ok)

	// Времени нет в наборе
	_, err = env.session.SelectTime("23:30")
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	// Мусорный формат
	_, err = env.session.SelectTime("midnight")
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	_, err = env.session.SelectTime("09:00")
	assert.NoError(t, err)
}

func TestSession_StaleSlotsResultDiscarded(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), false)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)

	day1 := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// Два запроса в полете; применяется только ответ для живой даты
	env.session.SetDate(day1)
	env.session.SetDate(day2)
	env.queue.drain()

	snap := env.session.Snapshot()
	require.NotNil(t, snap.Availability)
	assert.True(t, snap.Availability.Matches(day2, 60))
	assert.False(t, snap.SlotsPending)
	assert.Equal(t, []string{"slots"}, env.staleKinds)
}

func TestSession_SlotsFailureSetsBanner(t *testing.T) {
	backend := defaultBackend()
	backend.slotsErr = fmt.Errorf("boom")
	env := newTestEnv(t, backend, true)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)
	snap := env.session.SetDate(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))

	assert.NotEmpty(t, snap.SlotsError)
	assert.Nil(t, snap.Availability)

	// Следующий успешный запрос снимает баннер
	backend.slotsErr = nil
	snap, err = env.session.ToggleExtra(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, snap.SlotsError)
	require.NotNil(t, snap.Availability)
	assert.True(t, snap.Availability.Matches(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), 80))
}

func TestSession_SetCustomerField(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	snap, err := env.session.SetCustomerField("customerName", "Anna")
	require.NoError(t, err)
	assert.Equal(t, "Anna", snap.Draft.CustomerName)

	_, err = env.session.SetCustomerField("favoriteColor", "blue")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSession_SetCustomerFieldTruncatesLongValues(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	long := make([]byte, domain.MaxNotesLength+100)
	for i := range long {
		long[i] = 'x'
	}

	snap, err := env.session.SetCustomerField("notes", string(long))
	require.NoError(t, err)
	assert.Len(t, snap.Draft.Notes, domain.MaxNotesLength)
}

func TestSession_ApplyPromo(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	ctx := context.Background()

	_, err := env.session.SelectService(ctx, 1)
	require.NoError(t, err)
	_, err = env.session.SetSquareMeters(100)
	require.NoError(t, err)

	snap, err := env.session.ApplyPromo("WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", snap.PromoCode)
	require.NotNil(t, snap.Pricing)
	assert.InDelta(t, 81.0, snap.Pricing.TotalPrice, 1e-9)
	require.NotNil(t, snap.Pricing.OriginalPrice)
	assert.Equal(t, 90.0, *snap.Pricing.OriginalPrice)

	// Повторное применение не компаундит скидку
	snap, err = env.session.ApplyPromo("WELCOME10")
	require.NoError(t, err)
	assert.InDelta(t, 81.0, snap.Pricing.TotalPrice, 1e-9)

	// Неизвестный код сбрасывает скидку
	_, err = env.session.ApplyPromo("BOGUS")
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "promoCode", verr.Fields[0].Field)

	snap = env.session.Snapshot()
	assert.Empty(t, snap.PromoCode)
	assert.Equal(t, 90.0, snap.Pricing.TotalPrice)
	assert.Nil(t, snap.Pricing.OriginalPrice)
}

func TestSession_AdvanceThroughAllSteps(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	completeDraft(t, env)

	steps := []domain.WizardStep{
		domain.StepServiceSelection,
		domain.StepDetails,
		domain.StepScheduling,
		domain.StepCustomerInfo,
	}
	for _, want := range steps {
		snap, err := env.session.Advance()
		require.NoError(t, err)
		assert.Equal(t, want, snap.Step)
	}

	// С последнего шага advance невозможен
	_, err := env.session.Advance()
	assert.ErrorIs(t, err, ErrAtLastStep)
}

func TestSession_AdvanceBlockedKeepsStep(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	_, err := env.session.Advance()
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.NotEmpty(t, verr.Fields)

	snap := env.session.Snapshot()
	assert.Equal(t, domain.StepLocation, snap.Step)
}

func TestSession_AdvanceFailureIsStepPredicateError(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)

	_, err := env.session.Advance()
	require.Error(t, err)

	// Провал предиката распознается и через errors.Is, и через errors.As
	assert.ErrorIs(t, err, validation.ErrStepInvalid)
	_, ok := AsValidationError(err)
	assert.True(t, ok)
}

func TestSession_RetreatIsUnconditional(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	completeDraft(t, env)

	_, err := env.session.Advance()
	require.NoError(t, err)

	snap := env.session.Retreat()
	assert.Equal(t, domain.StepLocation, snap.Step)

	// На первом шаге retreat - no-op
	snap = env.session.Retreat()
	assert.Equal(t, domain.StepLocation, snap.Step)
}

func TestSession_SubmitSuccess(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), true)
	completeDraft(t, env)

	snap, err := env.session.Submit(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.Submitted)
	require.NotNil(t, snap.SubmitResult)
	assert.Equal(t, "Бронирование создано", snap.SubmitResult.Message)

	// Заявка содержит черновик и актуальную детализацию
	payload := env.backend.lastPayload
	require.NotNil(t, payload)
	assert.Equal(t, "10115", payload.ZipCode)
	assert.Equal(t, int64(1), payload.ServiceID)
	assert.Equal(t, 100, payload.SquareMeters)
	assert.Equal(t, "2025-10-15", payload.BookingDate)
	assert.Equal(t, "10:00", payload.BookingTime)
	assert.Equal(t, 95.0, payload.TotalPrice)

	// Повторная отправка после успеха блокируется
	_, err = env.session.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSession_SubmitRevalidatesAllSteps(t *testing.T) {
	backend := defaultBackend()
	env := newTestEnv(t, backend, true)
	completeDraft(t, env)

	// Поздний вердикт: индекс стал unavailable уже после прохождения шага
	backend.zipAvailable = false
	env.session.SetZip("10115")

	_, err := env.session.Submit(context.Background())
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "zipCode", verr.Fields[0].Field)
	assert.Equal(t, 0, backend.submitCalls)
}

func TestSession_SubmitFailureKeepsDraft(t *testing.T) {
	backend := defaultBackend()
	backend.submitErr = fmt.Errorf("%w: выбранное время уже занято", bookingapi.ErrRejected)
	env := newTestEnv(t, backend, true)
	completeDraft(t, env)

	_, err := env.session.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	snap := env.session.Snapshot()
	assert.False(t, snap.Submitted)
	assert.Equal(t, "выбранное время уже занято", snap.SubmitError)
	// Черновик сохранен полностью
	assert.Equal(t, "10115", snap.Draft.ZipCode)
	assert.Equal(t, "anna@example.com", snap.Draft.CustomerEmail)

	// После восстановления бэкенда submit снова доступен
	backend.submitErr = nil
	snap, err = env.session.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Submitted)
	assert.Empty(t, snap.SubmitError)
}

func TestSession_DuplicateSubmitBlocked(t *testing.T) {
	backend := defaultBackend()
	backend.submitBlock = make(chan struct{})
	env := newTestEnv(t, backend, true)
	completeDraft(t, env)

	firstDone := make(chan error, 1)
	go func() {
		_, err := env.session.Submit(context.Background())
		firstDone <- err
	}()

	// Дожидаемся, пока первый submit дойдет до сетевого вызова
	require.Eventually(t, func() bool {
		return env.session.Snapshot().Submitting
	}, time.Second, time.Millisecond)

	_, err := env.session.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, 1, backend.submitCalls)

	close(backend.submitBlock)
	require.NoError(t, <-firstDone)
}

func TestSession_SnapshotRecomputesAdvancePredicate(t *testing.T) {
	env := newTestEnv(t, defaultBackend(), false)

	// До возврата асинхронной проверки шаг проходим (вердикт unknown)
	snap := env.session.SetZip("10115")
	assert.True(t, snap.IsAdvanceEnabled)

	// Поздний вердикт unavailable инвалидирует шаг без правок черновика
	env.backend.zipAvailable = false
	env.queue.drain()

	snap = env.session.Snapshot()
	assert.False(t, snap.IsAdvanceEnabled)
	require.Len(t, snap.FieldErrors, 1)
	assert.Equal(t, "zipCode", snap.FieldErrors[0].Field)
}
