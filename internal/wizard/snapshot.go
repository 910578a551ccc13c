package wizard

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/validation"
)

// SubmitOutcome результат успешного создания бронирования
type SubmitOutcome struct {
	Message     string
	CheckoutURL *string
}

// Snapshot иммутабельный срез состояния сессии для Presentation Adapter.
// Сессия никогда не отдает свои живые структуры наружу - только копии
type Snapshot struct {
	SessionID string
	Step      domain.WizardStep
	Draft     *domain.BookingDraft

	// Каталог для отрисовки: услуги и допуслуги выбранной услуги
	Services []domain.Service
	Extras   []domain.Extra

	Pricing      *domain.PricingBreakdown
	Availability *domain.AvailabilitySet

	ZipStatus  domain.ZipAvailability
	ZipMessage string

	PromoCode       string
	PromoMultiplier float64

	// Флаги незавершенных асинхронных операций - виджет блокирует
	// соответствующие кнопки, пока запрос не завершится
	ZipCheckPending bool
	SlotsPending    bool
	Submitting      bool

	Submitted    bool
	SubmitResult *SubmitOutcome

	// Баннерные ошибки коллаборантов: каталог/слоты/бронирование.
	// Пустая строка - ошибки нет
	CatalogError string
	SlotsError   string
	SubmitError  string

	// IsAdvanceEnabled - живой результат предиката текущего шага,
	// пересчитывается при каждом снапшоте, никогда не кэшируется
	IsAdvanceEnabled bool
	FieldErrors      []validation.FieldError
}
