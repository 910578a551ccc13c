package bookingapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrNotFound возвращается, когда запрошенный ресурс не найден (услуга, индекс)
	ErrNotFound = errors.New("bookingapi client: resource not found")

	// ErrRejected возвращается, когда бэкенд отклонил создание бронирования
	// с понятным пользователю сообщением (например, слот уже занят)
	ErrRejected = errors.New("bookingapi client: booking rejected")

	// ErrUnauthorized возвращается при невалидном или отсутствующем widget-токене
	ErrUnauthorized = errors.New("bookingapi client: unauthorized")
)
