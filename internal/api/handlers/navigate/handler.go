package navigate

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

const (
	msgSessionNotFound = "сессия не найдена или истекла"
	msgStepIncomplete  = "текущий шаг заполнен не полностью"
	msgAlreadyAtLast   = "это последний шаг, дальше только отправка заявки"
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

// HandleAdvance POST /api/v1/sessions/{sessionId}/advance
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		h.respondSessionError(w, "advance", sessionID, err)
		return
	}

	snapshot, err := sess.Advance()
	if err != nil {
		if verr, ok := wizard.AsValidationError(err); ok {
			h.logger.Info("POST /sessions/{id}/advance - Blocked by validation: session_id=%s", sessionID)
			handlers.RespondValidation(w, msgStepIncomplete, handlers.FromValidationError(verr))
			return
		}

		switch {
		case errors.Is(err, wizard.ErrAtLastStep):
			h.logger.Warn("POST /sessions/{id}/advance - Already at last step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgAlreadyAtLast)

		default:
			h.logger.Error("POST /sessions/{id}/advance - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}

// HandleRetreat POST /api/v1/sessions/{sessionId}/retreat
func (h *Handler) HandleRetreat(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		h.respondSessionError(w, "retreat", sessionID, err)
		return
	}

	// Возврат назад безусловен, на первом шаге - no-op
	snapshot := sess.Retreat()

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}

func (h *Handler) respondSessionError(w http.ResponseWriter, op, sessionID string, err error) {
	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		h.logger.Warn("POST /sessions/{id}/%s - Session not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	default:
		h.logger.Error("POST /sessions/{id}/%s - Failed to get session: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
