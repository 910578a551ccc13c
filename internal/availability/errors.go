package availability

import "errors"

var (
	// ErrSlotsUnavailable возвращается при сетевой ошибке или некорректном
	// ответе бэкенда. Отличается от легитимного "на эту дату нет свободных
	// слотов" (набор получен, но открытых слотов ноль): баннер показывается
	// в обоих случаях, но автоматический retry уместен только здесь
	ErrSlotsUnavailable = errors.New("availability: slots unavailable")
)
