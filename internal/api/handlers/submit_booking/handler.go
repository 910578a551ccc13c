package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

const (
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgSubmitIncomplete = "заявка заполнена не полностью"
	msgSubmitInFlight   = "заявка уже отправляется"
	msgAlreadySubmitted = "бронирование уже создано"
	msgSubmissionFailed = "не удалось создать бронирование, попробуйте еще раз"
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

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snapshot, err := sess.Submit(r.Context())
	if err != nil {
		// Кумулятивная проверка всех шагов: поля-виновники любого шага
		if verr, ok := wizard.AsValidationError(err); ok {
			h.logger.Info("POST /sessions/{id}/submit - Rejected by validation: session_id=%s", sessionID)
			handlers.RespondValidation(w, msgSubmitIncomplete, handlers.FromValidationError(verr))
			return
		}

		switch {
		case errors.Is(err, wizard.ErrSubmitInFlight):
			h.logger.Warn("POST /sessions/{id}/submit - Duplicate submit: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmitInFlight)

		case errors.Is(err, wizard.ErrAlreadySubmitted):
			h.logger.Warn("POST /sessions/{id}/submit - Already submitted: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgAlreadySubmitted)

		case errors.Is(err, wizard.ErrSubmissionFailed):
			h.logger.Error("POST /sessions/{id}/submit - Backend rejected submission: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondBadGateway(w, msgSubmissionFailed)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking submitted: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
