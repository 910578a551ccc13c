package middleware

import (
	"context"
	"net/http"
)

// WidgetTokenHeader заголовок с anti-forgery токеном хостинг-окружения.
// Сервис не валидирует токен, а прикрепляет его как есть к запросам
// в booking-бэкенд
const WidgetTokenHeader = "X-Widget-Token"

type contextKey string

const tokenContextKey contextKey = "widgetToken"

// Auth требует наличия widget-токена и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(WidgetTokenHeader)
		if token == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"message":"отсутствует widget-токен"}`))
			return
		}

		ctx := context.WithValue(r.Context(), tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext извлекает widget-токен из контекста запроса
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
