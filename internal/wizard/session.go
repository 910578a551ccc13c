package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-ConfiguratorService/internal/pricing"
	"github.com/m04kA/SMC-ConfiguratorService/internal/validation"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

// Баннерные сообщения коллаборантов - показываются виджетом над формой
const (
	msgCatalogUnavailable = "не удалось загрузить каталог услуг, попробуйте еще раз"
	msgSlotsUnavailable   = "не удалось загрузить доступное время, попробуйте еще раз"
)

// Сообщения уровня поля для команд
const (
	msgInvalidSquareMeters = "площадь должна быть целым числом больше нуля"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgTimeNotOpen         = "выбранное время недоступно"
	msgUnknownPromo        = "неизвестный промокод"
)

// Config зависимости и параметры одной сессии конфигуратора
type Config struct {
	ID    string
	Token string // anti-forgery токен виджета, прикрепляется ко всем запросам к бэкенду

	Catalog   Catalog
	Slots     SlotsFetcher
	Zip       ZipClient
	Submitter SubmitClient
	Promos    PromoResolver
	Logger    Logger

	// Async запускает фоновую работу. По умолчанию - горутина;
	// тесты подставляют синхронный запуск
	Async func(fn func())

	// Time провайдер времени (для тестирования TTL)
	Time TimeProvider

	// StaleHook вызывается при отбрасывании устаревшего ответа (kind: "zip"|"slots").
	// Используется для метрик; может быть nil
	StaleHook func(kind string)
}

// Session машина состояний конфигуратора.
// Владеет черновиком, текущим шагом и всеми производными значениями.
// Вся мутация сериализована мьютексом: две рекомпутации никогда не
// интерливятся. Асинхронные
// результаты применяются только если их параметры все еще совпадают
// с живым черновиком - устаревшие ответы молча отбрасываются.
type Session struct {
	mu sync.Mutex

	id    string
	token string

	catalog   Catalog
	slots     SlotsFetcher
	zip       ZipClient
	submitter SubmitClient
	promos    PromoResolver
	log       Logger
	async     func(fn func())
	time      TimeProvider
	staleHook func(kind string)

	step  domain.WizardStep
	draft *domain.BookingDraft

	pricing      *domain.PricingBreakdown
	availability *domain.AvailabilitySet

	zipSurcharge float64
	zipStatus    domain.ZipAvailability
	zipMessage   string

	promoCode       string
	promoMultiplier float64

	// Счетчики поколений запросов: применяется только результат последнего
	// выпущенного запроса (сравнением, а не порядком прихода ответов)
	zipGen   uint64
	slotsGen uint64

	zipPending   bool
	slotsPending bool

	catalogErr string
	slotsErr   string
	submitErr  string

	submitting   bool
	submitted    bool
	submitResult *SubmitOutcome

	lastActivity time.Time
}

// NewSession создает сессию в начальном состоянии (шаг Location, пустой черновик)
func NewSession(cfg Config) *Session {
	async := cfg.Async
	if async == nil {
		async = func(fn func()) { go fn() }
	}
	tp := cfg.Time
	if tp == nil {
		tp = &RealTimeProvider{}
	}

	return &Session{
		id:              cfg.ID,
		token:           cfg.Token,
		catalog:         cfg.Catalog,
		slots:           cfg.Slots,
		zip:             cfg.Zip,
		submitter:       cfg.Submitter,
		promos:          cfg.Promos,
		log:             cfg.Logger,
		async:           async,
		time:            tp,
		staleHook:       cfg.StaleHook,
		step:            domain.FirstStep,
		draft:           domain.NewBookingDraft(),
		zipStatus:       domain.ZipUnknown,
		promoMultiplier: domain.DefaultPromoMultiplier,
		lastActivity:    tp.Now(),
	}
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// LastActivity возвращает время последней команды (для TTL-вытеснения)
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Start загружает каталог услуг. Неудача не фатальна: сессия остается
// рабочей, виджет показывает баннер с возможностью повтора
func (s *Session) Start(ctx context.Context) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if _, err := s.catalog.LoadServices(ctx); err != nil {
		s.log.Warn("Session %s: catalog load failed on start: %v", s.id, err)
		s.catalogErr = msgCatalogUnavailable
	} else {
		s.catalogErr = ""
	}

	return s.snapshotLocked()
}

// SetZip устанавливает индекс.
// Формат проверяется до любого сетевого вызова: для невалидного индекса
// асинхронные проверки не запускаются вовсе. Для валидного - запускаются
// проверка обслуживаемости и запрос надбавки; до их завершения публикуется
// предварительная детализация с нулевой надбавкой (двухфазный пересчет)
func (s *Session) SetZip(zipCode string) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	zipCode = strings.TrimSpace(zipCode)
	s.draft.ZipCode = zipCode

	// Прежние результаты относятся к прежнему индексу
	s.zipStatus = domain.ZipUnknown
	s.zipMessage = ""
	s.zipSurcharge = 0
	s.zipPending = false

	// Предварительный пересчет с надбавкой 0
	s.recalcPricingLocked()

	if !validation.ZipFormatValid(zipCode) {
		s.log.Debug("Session %s: zip %q failed format check, no network call issued", s.id, zipCode)
		return s.snapshotLocked()
	}

	s.zipGen++
	gen := s.zipGen
	s.zipPending = true

	s.async(func() {
		s.runZipChecks(gen, zipCode)
	})

	return s.snapshotLocked()
}

// runZipChecks выполняет обе проверки индекса и применяет результат,
// если индекс в черновике не успел измениться
func (s *Session) runZipChecks(gen uint64, zipCode string) {
	// Запросы переживают HTTP-запрос команды, поэтому не наследуют его контекст
	ctx := context.Background()

	status := domain.ZipUnknown
	message := ""

	check, err := s.zip.CheckZipAvailability(ctx, s.token, zipCode)
	switch {
	case err != nil:
		// Недоступность проверки не блокирует шаг - вердикт остается unknown
		s.log.Error("Session %s: zip availability check failed for %q: %v", s.id, zipCode, err)
	case check.Available:
		status = domain.ZipAvailable
	default:
		status = domain.ZipUnavailable
		if check.Message != nil {
			message = *check.Message
		}
	}

	surcharge := 0.0
	if status != domain.ZipUnavailable {
		value, err := s.zip.FetchZipSurcharge(ctx, s.token, zipCode)
		if err != nil {
			// Graceful degradation: считаем надбавку нулевой, цена остается
			// предварительной
			s.log.Error("Session %s: zip surcharge lookup failed for %q: %v", s.id, zipCode, err)
		} else {
			surcharge = value
		}
	}

	s.applyZipResult(gen, zipCode, status, message, surcharge)
}

// applyZipResult применяет результат проверок индекса.
// Ответ для уже смененного индекса - устаревший и отбрасывается молча:
// это штатный исход конкурентности, а не ошибка
func (s *Session) applyZipResult(gen uint64, zipCode string, status domain.ZipAvailability, message string, surcharge float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.zipGen || s.draft.ZipCode != zipCode {
		s.log.Info("Session %s: discarding stale zip result for %q", s.id, zipCode)
		if s.staleHook != nil {
			s.staleHook("zip")
		}
		return
	}

	s.zipPending = false
	s.zipStatus = status
	s.zipMessage = message
	s.zipSurcharge = surcharge

	// Вторая фаза пересчета: надбавка известна
	s.recalcPricingLocked()
}

// SelectService выбирает услугу.
// Смена услуги сбрасывает выбранные допуслуги: оставлять допуслуги,
// оцененные для покинутой услуги, значит пропустить невалидный черновик
// к оплате. Затем загружаются допуслуги новой услуги и, если дата уже
// выбрана, перезапрашивается доступность (длительность изменилась)
func (s *Session) SelectService(ctx context.Context, serviceID int64) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	// Каталог мог не загрузиться на старте - повторяем (retry affordance)
	if _, err := s.catalog.LoadServices(ctx); err != nil {
		s.catalogErr = msgCatalogUnavailable
		return nil, err
	}
	s.catalogErr = ""

	service, err := s.catalog.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}

	changed := s.draft.ServiceID == nil || *s.draft.ServiceID != serviceID
	if changed && len(s.draft.SelectedExtraIDs) > 0 {
		s.log.Info("Session %s: service changed to id=%d, clearing %d selected extras",
			s.id, serviceID, len(s.draft.SelectedExtraIDs))
		s.draft.SelectedExtraIDs = make(map[int64]struct{})
	}
	s.draft.ServiceID = &service.ID

	// Допуслуги новой услуги; неудача не откатывает выбор - баннер и retry
	if _, err := s.catalog.LoadExtras(ctx, serviceID); err != nil {
		s.log.Warn("Session %s: failed to load extras for service id=%d: %v", s.id, serviceID, err)
		s.catalogErr = msgCatalogUnavailable
	}

	s.recalcPricingLocked()
	if changed {
		s.refetchSlotsLocked()
	}

	return s.snapshotLocked(), nil
}

// ToggleExtra включает или выключает допуслугу для выбранной услуги.
// Длительность меняется, поэтому при выбранной дате доступность
// перезапрашивается
func (s *Session) ToggleExtra(ctx context.Context, extraID int64) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.draft.HasService() {
		return nil, ErrNoServiceSelected
	}
	serviceID := *s.draft.ServiceID

	if _, err := s.catalog.LoadExtras(ctx, serviceID); err != nil {
		s.catalogErr = msgCatalogUnavailable
		return nil, err
	}
	s.catalogErr = ""

	// Допуслуга обязана принадлежать выбранной услуге
	extra, err := s.catalog.ExtraByID(serviceID, extraID)
	if err != nil {
		return nil, err
	}

	if s.draft.ExtraSelected(extra.ID) {
		delete(s.draft.SelectedExtraIDs, extra.ID)
	} else {
		s.draft.SelectedExtraIDs[extra.ID] = struct{}{}
	}

	s.recalcPricingLocked()
	s.refetchSlotsLocked()

	return s.snapshotLocked(), nil
}

// SetSquareMeters устанавливает площадь. Площадь влияет только на цену,
// не на длительность - доступность не перезапрашивается
func (s *Session) SetSquareMeters(squareMeters int) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if squareMeters <= 0 || squareMeters > domain.MaxSquareMeters {
		return nil, NewValidationError("squareMeters", msgInvalidSquareMeters)
	}

	s.draft.SquareMeters = &squareMeters
	s.recalcPricingLocked()

	return s.snapshotLocked(), nil
}

// SetDate устанавливает дату бронирования.
// Прежнее время относится к набору доступности прежней даты и сбрасывается;
// набор заменяется целиком результатом нового запроса
func (s *Session) SetDate(date time.Time) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if s.draft.BookingDate == nil || !domain.SameDay(*s.draft.BookingDate, day) {
		s.draft.BookingTime = ""
	}
	s.draft.BookingDate = &day

	s.refetchSlotsLocked()

	return s.snapshotLocked()
}

// SelectTime выбирает время из набора доступности.
// Инвариант черновика: время обязано присутствовать в последнем полученном
// наборе для выбранной даты и быть открытым
func (s *Session) SelectTime(bookingTime string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if _, err := types.NewTimeStringFromString(bookingTime); err != nil {
		return nil, NewValidationError("bookingTime", msgInvalidTime)
	}
	if !s.draft.HasDate() || !s.availability.Matches(*s.draft.BookingDate, s.requiredDurationLocked()) ||
		!s.availability.SlotOpen(bookingTime) {
		return nil, NewValidationError("bookingTime", msgTimeNotOpen)
	}

	s.draft.BookingTime = bookingTime

	return s.snapshotLocked(), nil
}

// SetCustomerField записывает одно поле данных клиента
func (s *Session) SetCustomerField(field string, value string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	f := domain.CustomerField(field)
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	limit := domain.MaxCustomerField
	if f == domain.FieldNotes {
		limit = domain.MaxNotesLength
	}
	if len(value) > limit {
		value = value[:limit]
	}

	s.draft.SetCustomerField(f, value)

	return s.snapshotLocked(), nil
}

// ApplyPromo применяет промокод. Множитель всегда применяется к заново
// выведенному subtotal - повторное применение не компаундится.
// Неизвестный код сбрасывает скидку и возвращает ошибку уровня поля
func (s *Session) ApplyPromo(code string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	code = strings.TrimSpace(code)
	if len(code) > domain.MaxPromoCodeLength {
		code = code[:domain.MaxPromoCodeLength]
	}

	multiplier, ok := s.promos.Resolve(code)
	if !ok {
		s.promoCode = ""
		s.promoMultiplier = domain.DefaultPromoMultiplier
		s.recalcPricingLocked()
		return nil, NewValidationError("promoCode", msgUnknownPromo)
	}

	s.promoCode = code
	s.promoMultiplier = multiplier
	s.log.Info("Session %s: promo %q applied, multiplier=%.2f", s.id, code, multiplier)
	s.recalcPricingLocked()

	return s.snapshotLocked(), nil
}

// Advance переводит мастер на следующий шаг, если предикат текущего шага
// выполнен. При невыполненном предикате шаг не меняется, возвращается
// список полей-виновников
func (s *Session) Advance() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.step.IsLast() {
		return nil, ErrAtLastStep
	}

	if errs := validation.ValidateStep(s.step, s.stepInputLocked()); len(errs) > 0 {
		s.log.Info("Session %s: advance blocked at step %s, fields: %v",
			s.id, s.step, validation.Fields(errs))
		return nil, &ValidationError{Fields: errs}
	}

	s.step = s.step.Next()
	s.log.Info("Session %s: advanced to step %s", s.id, s.step)

	return s.snapshotLocked(), nil
}

// Retreat безусловно возвращает мастер на шаг назад, без ревалидации цели.
// На первом шаге - no-op
func (s *Session) Retreat() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.step = s.step.Prev()

	return s.snapshotLocked()
}

// Submit выполняет кумулятивную проверку всех шагов и отправляет заявку.
// Разрешен, только когда предикаты всех шагов выполняются одновременно -
// даже если пользователь дошел до последнего шага по устаревшей валидации.
// Повторный submit при незавершенном запросе блокируется. При неудаче
// черновик сохраняется полностью, submit снова доступен
func (s *Session) Submit(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()

	if s.submitted {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	s.touch()

	if errs := validation.ValidateAll(s.stepInputLocked()); len(errs) > 0 {
		s.log.Info("Session %s: submit rejected, fields: %v", s.id, validation.Fields(errs))
		s.mu.Unlock()
		return nil, &ValidationError{Fields: errs}
	}

	payload := s.buildSubmitPayloadLocked()
	s.submitting = true
	s.submitErr = ""
	s.mu.Unlock()

	// Сетевой вызов выполняется без мьютекса - снапшоты остаются доступными,
	// дубликаты отсекаются флагом submitting
	result, err := s.submitter.SubmitBooking(ctx, s.token, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		s.log.Error("Session %s: submission failed: %v", s.id, err)
		s.submitErr = submissionMessage(err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	s.submitted = true
	s.submitResult = &SubmitOutcome{
		Message:     result.Message,
		CheckoutURL: result.CheckoutURL,
	}
	s.log.Info("Session %s: booking submitted successfully", s.id)

	return s.snapshotLocked(), nil
}

// Snapshot возвращает актуальный срез состояния
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// RetryCatalog повторяет неудачную загрузку каталога (retry affordance баннера)
func (s *Session) RetryCatalog(ctx context.Context) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if _, err := s.catalog.LoadServices(ctx); err != nil {
		s.catalogErr = msgCatalogUnavailable
		return s.snapshotLocked()
	}
	s.catalogErr = ""

	if s.draft.HasService() {
		if _, err := s.catalog.LoadExtras(ctx, *s.draft.ServiceID); err != nil {
			s.catalogErr = msgCatalogUnavailable
		}
	}

	return s.snapshotLocked()
}

// --- внутренние методы (вызываются с удержанным мьютексом) ---

func (s *Session) touch() {
	s.lastActivity = s.time.Now()
}

// selectedExtrasLocked резолвит выбранные допуслуги в полные записи каталога
func (s *Session) selectedExtrasLocked() []domain.Extra {
	if !s.draft.HasService() {
		return nil
	}
	available := s.catalog.ExtrasFor(*s.draft.ServiceID)
	selected := make([]domain.Extra, 0, len(s.draft.SelectedExtraIDs))
	for _, extra := range available {
		if s.draft.ExtraSelected(extra.ID) {
			selected = append(selected, extra)
		}
	}
	return selected
}

// recalcPricingLocked перезапускает ценовой движок.
// Без выбранной услуги движок не выполняется - прежняя детализация
// (или её отсутствие) остается в силе
func (s *Session) recalcPricingLocked() {
	if !s.draft.HasService() {
		return
	}
	service, err := s.catalog.ServiceByID(*s.draft.ServiceID)
	if err != nil {
		s.log.Warn("Session %s: pricing skipped, service lookup failed: %v", s.id, err)
		return
	}

	s.pricing = pricing.Compute(
		service,
		s.draft.SquareMeters,
		s.selectedExtrasLocked(),
		s.zipSurcharge,
		s.promoMultiplier,
	)
}

// requiredDurationLocked суммарная длительность услуги с допуслугами
func (s *Session) requiredDurationLocked() int {
	if !s.draft.HasService() {
		return 0
	}
	service, err := s.catalog.ServiceByID(*s.draft.ServiceID)
	if err != nil {
		return 0
	}
	return pricing.RequiredDuration(service, s.selectedExtrasLocked())
}

// refetchSlotsLocked выпускает новый запрос доступности, если выбраны
// дата и услуга. Запрос помечается параметрами (дата, длительность) и
// поколением на момент выпуска
func (s *Session) refetchSlotsLocked() {
	if !s.draft.HasDate() || !s.draft.HasService() {
		return
	}

	s.slotsGen++
	gen := s.slotsGen
	date := *s.draft.BookingDate
	duration := s.requiredDurationLocked()

	s.slotsPending = true
	s.slotsErr = ""

	s.async(func() {
		set, err := s.slots.Fetch(context.Background(), date, duration)
		s.applySlotsResult(gen, date, duration, set, err)
	})
}

// applySlotsResult применяет результат запроса слотов.
// Ответ для пары (дата, длительность), уже не совпадающей с живым черновиком,
// отбрасывается молча - независимо от порядка прихода ответов
func (s *Session) applySlotsResult(gen uint64, date time.Time, duration int, set *domain.AvailabilitySet, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stale := gen != s.slotsGen ||
		!s.draft.HasDate() ||
		!domain.SameDay(*s.draft.BookingDate, date) ||
		s.requiredDurationLocked() != duration

	if stale {
		s.log.Info("Session %s: discarding stale slots result for date=%s, duration=%d",
			s.id, date.Format(domain.DateFormat), duration)
		if s.staleHook != nil {
			s.staleHook("slots")
		}
		return
	}

	s.slotsPending = false

	if err != nil {
		s.slotsErr = msgSlotsUnavailable
		return
	}

	s.availability = set
}

func (s *Session) stepInputLocked() validation.StepInput {
	return validation.StepInput{
		Draft:        s.draft,
		ZipStatus:    s.zipStatus,
		ZipMessage:   s.zipMessage,
		Availability: s.availability,
	}
}

// buildSubmitPayloadLocked упаковывает черновик и актуальную детализацию
// цены в заявку для бэкенда
func (s *Session) buildSubmitPayloadLocked() *bookingapi.SubmitRequest {
	extras := s.selectedExtrasLocked()
	submitExtras := make([]bookingapi.SubmitExtra, 0, len(extras))
	extraIDs := make([]int64, 0, len(extras))
	for _, e := range extras {
		submitExtras = append(submitExtras, bookingapi.SubmitExtra{ID: e.ID, Price: e.Price})
		extraIDs = append(extraIDs, e.ID)
	}

	payload := &bookingapi.SubmitRequest{
		ZipCode:       s.draft.ZipCode,
		ServiceID:     *s.draft.ServiceID,
		SquareMeters:  *s.draft.SquareMeters,
		ExtraIDs:      extraIDs,
		BookingDate:   s.draft.BookingDate.Format(domain.DateFormat),
		BookingTime:   s.draft.BookingTime,
		CustomerName:  s.draft.CustomerName,
		CustomerEmail: s.draft.CustomerEmail,
		CustomerPhone: s.draft.CustomerPhone,
		Address:       s.draft.Address,
		Notes:         s.draft.Notes,
		Extras:        submitExtras,
		PromoCode:     s.promoCode,
	}

	if s.pricing != nil {
		payload.BasePrice = s.pricing.BasePrice
		payload.SquareMeterPrice = s.pricing.SquareMeterPrice
		payload.ExtrasPrice = s.pricing.ExtrasPrice
		payload.ZipSurcharge = s.pricing.ZipSurcharge
		payload.TotalPrice = s.pricing.TotalPrice
		payload.TotalDurationMinutes = s.pricing.TotalDurationMinutes
		if s.pricing.OriginalPrice != nil {
			original := *s.pricing.OriginalPrice
			payload.OriginalPrice = &original
		}
	}

	return payload
}

// snapshotLocked собирает иммутабельный срез состояния.
// IsAdvanceEnabled и FieldErrors - живой результат предиката текущего шага:
// асинхронные результаты могут инвалидировать ранее пройденный шаг без
// локального редактирования полей
func (s *Session) snapshotLocked() *Snapshot {
	fieldErrs := validation.ValidateStep(s.step, s.stepInputLocked())

	var pricingCopy *domain.PricingBreakdown
	if s.pricing != nil {
		cp := *s.pricing
		if s.pricing.OriginalPrice != nil {
			original := *s.pricing.OriginalPrice
			cp.OriginalPrice = &original
		}
		pricingCopy = &cp
	}

	services := s.catalog.Services()

	var extras []domain.Extra
	if s.draft.HasService() {
		extras = s.catalog.ExtrasFor(*s.draft.ServiceID)
	}

	var outcome *SubmitOutcome
	if s.submitResult != nil {
		cp := *s.submitResult
		outcome = &cp
	}

	return &Snapshot{
		SessionID:        s.id,
		Step:             s.step,
		Draft:            s.draft.Clone(),
		Services:         services,
		Extras:           extras,
		Pricing:          pricingCopy,
		Availability:     s.availability.Clone(),
		ZipStatus:        s.zipStatus,
		ZipMessage:       s.zipMessage,
		PromoCode:        s.promoCode,
		PromoMultiplier:  s.promoMultiplier,
		ZipCheckPending:  s.zipPending,
		SlotsPending:     s.slotsPending,
		Submitting:       s.submitting,
		Submitted:        s.submitted,
		SubmitResult:     outcome,
		CatalogError:     s.catalogErr,
		SlotsError:       s.slotsErr,
		SubmitError:      s.submitErr,
		IsAdvanceEnabled: len(fieldErrs) == 0,
		FieldErrors:      fieldErrs,
	}
}

// submissionMessage извлекает понятное пользователю сообщение из ошибки бэкенда
func submissionMessage(err error) string {
	if errors.Is(err, bookingapi.ErrRejected) {
		// Текст после префикса sentinel-ошибки - сообщение бэкенда
		msg := err.Error()
		if idx := strings.LastIndex(msg, ": "); idx >= 0 && idx+2 < len(msg) {
			return msg[idx+2:]
		}
		return msg
	}
	return "не удалось создать бронирование, попробуйте еще раз"
}
