package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "внутренняя ошибка сервиса"

// ErrorBody тело ответа с ошибкой
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FieldErrorBody ошибка уровня поля для inline-отображения в виджете
type FieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationBody тело ответа с ошибками валидации
type ValidationBody struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Fields  []FieldErrorBody `json:"fields"`
}

// DecodeJSON декодирует JSON тело запроса
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// RespondError пишет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorBody{Code: status, Message: message})
}

// RespondBadRequest пишет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 Conflict
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondValidation пишет 422 с перечнем полей-виновников -
// виджет показывает сообщения рядом с полями, а не общий баннер
func RespondValidation(w http.ResponseWriter, message string, fields []FieldErrorBody) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationBody{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Fields:  fields,
	})
}

// RespondBadGateway пишет 502 Bad Gateway (ошибка коллаборанта)
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, message)
}

// RespondInternalError пишет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
