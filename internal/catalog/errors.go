package catalog

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда бэкенд недоступен или отдал
	// некорректный каталог. Неудачная загрузка не мемоизируется - следующий
	// вызов повторит запрос (retry affordance для виджета)
	ErrCatalogUnavailable = errors.New("catalog: catalog unavailable")

	// ErrServiceNotFound возвращается при обращении к неизвестной услуге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrExtraNotFound возвращается при обращении к допуслуге, недоступной
	// для выбранной услуги
	ErrExtraNotFound = errors.New("catalog: extra not found for service")
)
