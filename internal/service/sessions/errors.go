package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или
	// была вытеснена по TTL
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrTokenRequired возвращается при создании сессии без widget-токена
	ErrTokenRequired = errors.New("sessions: widget token is required")
)
