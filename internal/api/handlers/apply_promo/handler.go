package apply_promo

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
	msgPromoRejected      = "промокод не применен"
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

// Handle POST /api/v1/sessions/{sessionId}/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ApplyPromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/promo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/promo - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/promo - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snapshot, err := sess.ApplyPromo(req.Code)
	if err != nil {
		if verr, ok := wizard.AsValidationError(err); ok {
			h.logger.Info("POST /sessions/{id}/promo - Promo rejected: session_id=%s, code=%q",
				sessionID, req.Code)
			handlers.RespondValidation(w, msgPromoRejected, handlers.FromValidationError(verr))
			return
		}

		h.logger.Error("POST /sessions/{id}/promo - Failed to apply promo: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions/{id}/promo - Promo applied: session_id=%s, code=%q", sessionID, req.Code)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
