package set_details

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle PUT /api/v1/sessions/{sessionId}/details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/details - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/details - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snapshot, err := sess.SetSquareMeters(req.SquareMeters)
	if err != nil {
		if verr, ok := wizard.AsValidationError(err); ok {
			h.logger.Warn("PUT /sessions/{id}/details - Validation failed: session_id=%s, square_meters=%d",
				sessionID, req.SquareMeters)
			handlers.RespondValidation(w, msgValidationFailed, handlers.FromValidationError(verr))
			return
		}

		h.logger.Error("PUT /sessions/{id}/details - Failed to set details: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /sessions/{id}/details - Details set: session_id=%s, square_meters=%d",
		sessionID, req.SquareMeters)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
