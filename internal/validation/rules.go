package validation

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// Сообщения уровня поля - показываются виджетом рядом с полем ввода
const (
	msgZipFormat       = "индекс должен состоять из 5 цифр"
	msgZipUnavailable  = "по этому индексу услуга пока недоступна"
	msgServiceRequired = "выберите услугу"
	msgSquareMeters    = "укажите площадь в кв. метрах (целое число больше нуля)"
	msgTimeRequired    = "выберите время"
	msgTimeNotOpen     = "выбранное время больше недоступно, выберите другое"
	msgNameRequired    = "укажите имя"
	msgEmailRequired   = "укажите email"
	msgEmailFormat     = "некорректный email"
	msgPhoneRequired   = "укажите телефон"
)

var (
	zipPattern   = regexp.MustCompile(`^\d{5}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// StepInput внешнее состояние, которое нужно предикатам помимо черновика:
// вердикт асинхронной проверки индекса и последний набор доступности
type StepInput struct {
	Draft        *domain.BookingDraft
	ZipStatus    domain.ZipAvailability
	ZipMessage   string
	Availability *domain.AvailabilitySet
}

// ValidateStep выполняет предикат указанного шага.
// Пустой результат означает, что шаг пройден; иначе возвращается список
// полей с причинами отказа.
func ValidateStep(step domain.WizardStep, in StepInput) []FieldError {
	switch step {
	case domain.StepLocation:
		return validateLocation(in)
	case domain.StepServiceSelection:
		return validateServiceSelection(in)
	case domain.StepDetails:
		return validateDetails(in)
	case domain.StepScheduling:
		return validateScheduling(in)
	case domain.StepCustomerInfo:
		return validateCustomerInfo(in)
	default:
		return nil
	}
}

// ValidateAll прогоняет предикаты всех шагов разом.
// Используется перед submit: кумулятивная проверка, а не только последний шаг -
// асинхронные результаты могли инвалидировать ранее пройденный шаг.
func ValidateAll(in StepInput) []FieldError {
	var errs []FieldError
	for _, step := range domain.AllSteps {
		errs = append(errs, ValidateStep(step, in)...)
	}
	return errs
}

// validateLocation проверяет формат индекса до любого сетевого вызова.
// Вердикт unknown (проверка еще не вернулась) шаг не блокирует -
// блокирует только явный unavailable
func validateLocation(in StepInput) []FieldError {
	if !zipPattern.MatchString(in.Draft.ZipCode) {
		return []FieldError{{Field: "zipCode", Message: msgZipFormat}}
	}
	if in.ZipStatus == domain.ZipUnavailable {
		message := msgZipUnavailable
		if in.ZipMessage != "" {
			message = in.ZipMessage
		}
		return []FieldError{{Field: "zipCode", Message: message}}
	}
	return nil
}

func validateServiceSelection(in StepInput) []FieldError {
	if !in.Draft.HasService() {
		return []FieldError{{Field: "serviceId", Message: msgServiceRequired}}
	}
	return nil
}

func validateDetails(in StepInput) []FieldError {
	if in.Draft.SquareMeters == nil || *in.Draft.SquareMeters <= 0 {
		return []FieldError{{Field: "squareMeters", Message: msgSquareMeters}}
	}
	return nil
}

// validateScheduling требует, чтобы выбранное время присутствовало и было
// открыто в последнем полученном наборе доступности для выбранной даты
func validateScheduling(in StepInput) []FieldError {
	if !in.Draft.HasDate() || in.Draft.BookingTime == "" {
		return []FieldError{{Field: "bookingTime", Message: msgTimeRequired}}
	}
	if in.Availability == nil ||
		!domain.SameDay(in.Availability.Date, *in.Draft.BookingDate) ||
		!in.Availability.SlotOpen(in.Draft.BookingTime) {
		return []FieldError{{Field: "bookingTime", Message: msgTimeNotOpen}}
	}
	return nil
}

func validateCustomerInfo(in StepInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Draft.CustomerName) == "" {
		errs = append(errs, FieldError{Field: "customerName", Message: msgNameRequired})
	}

	email := strings.TrimSpace(in.Draft.CustomerEmail)
	switch {
	case email == "":
		errs = append(errs, FieldError{Field: "customerEmail", Message: msgEmailRequired})
	case !emailPattern.MatchString(email):
		errs = append(errs, FieldError{Field: "customerEmail", Message: msgEmailFormat})
	}

	if strings.TrimSpace(in.Draft.CustomerPhone) == "" {
		errs = append(errs, FieldError{Field: "customerPhone", Message: msgPhoneRequired})
	}

	return errs
}

// ZipFormatValid проверяет только форматную часть предиката Location.
// Используется командой setZip: при невалидном формате сетевые проверки
// индекса не запускаются вовсе
func ZipFormatValid(zipCode string) bool {
	return zipPattern.MatchString(zipCode)
}
