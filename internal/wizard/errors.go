package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ConfiguratorService/internal/validation"
)

var (
	// ErrNoServiceSelected возвращается при попытке работать с допуслугами
	// до выбора услуги
	ErrNoServiceSelected = errors.New("wizard: no service selected")

	// ErrUnknownField возвращается при записи в неизвестное поле клиента
	ErrUnknownField = errors.New("wizard: unknown customer field")

	// ErrAtLastStep возвращается при advance с последнего шага -
	// дальше только submit
	ErrAtLastStep = errors.New("wizard: already at last step")

	// ErrSubmitInFlight возвращается при повторном submit, пока предыдущий
	// запрос еще не завершился
	ErrSubmitInFlight = errors.New("wizard: submission already in flight")

	// ErrAlreadySubmitted возвращается при submit после успешного создания
	// бронирования
	ErrAlreadySubmitted = errors.New("wizard: booking already submitted")

	// ErrSubmissionFailed возвращается, когда бэкенд отклонил бронирование
	// или произошла сетевая ошибка. Черновик сохраняется, submit снова доступен
	ErrSubmissionFailed = errors.New("wizard: submission failed")
)

// ValidationError ошибка предиката шага с списком полей-виновников.
// Шаг не меняется; виджет показывает сообщения рядом с полями
type ValidationError struct {
	Fields []validation.FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("wizard: validation failed for fields [%s]",
		strings.Join(validation.Fields(e.Fields), ", "))
}

// Unwrap связывает ошибку с сигнальной validation.ErrStepInvalid:
// errors.Is распознает любой невыполненный предикат шага
func (e *ValidationError) Unwrap() error {
	return validation.ErrStepInvalid
}

// NewValidationError создает ValidationError для одного поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Fields: []validation.FieldError{{Field: field, Message: message}},
	}
}

// AsValidationError извлекает *ValidationError из цепочки ошибок
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
