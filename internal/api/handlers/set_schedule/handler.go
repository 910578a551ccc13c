package set_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmptyRequest       = "укажите дату или время"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgValidationFailed   = "проверьте корректность заполнения полей"
)

type Handler struct {
	sessions Sessions
	logger   Logger
}

func NewHandler(sessions Sessions, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Date == nil && req.Time == nil {
		handlers.RespondBadRequest(w, msgEmptyRequest)
		return
	}

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/schedule - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/schedule - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	var snapshot *wizard.Snapshot

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/schedule - Invalid date: session_id=%s, date=%q", sessionID, *req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		snapshot = sess.SetDate(date)
	}

	if req.Time != nil {
		snapshot, err = sess.SelectTime(*req.Time)
		if err != nil {
			if verr, ok := wizard.AsValidationError(err); ok {
				h.logger.Warn("PUT /sessions/{id}/schedule - Time rejected: session_id=%s, time=%q",
					sessionID, *req.Time)
				handlers.RespondValidation(w, msgValidationFailed, handlers.FromValidationError(verr))
				return
			}

			h.logger.Error("PUT /sessions/{id}/schedule - Failed to select time: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("PUT /sessions/{id}/schedule - Schedule updated: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
