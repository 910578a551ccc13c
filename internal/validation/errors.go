package validation

import "errors"

var (
	// ErrStepInvalid сигнальная ошибка невыполненного предиката шага.
	// Конкретные поля с причинами несет оборачивающая ошибка со списком
	// FieldError; errors.Is по этой ошибке ловит любой провал предиката
	ErrStepInvalid = errors.New("validation: step predicate failed")
)

// FieldError ошибка уровня поля - виджет показывает сообщение рядом с полем,
// а не общий баннер
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Fields возвращает имена полей из списка ошибок
func Fields(errs []FieldError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}
