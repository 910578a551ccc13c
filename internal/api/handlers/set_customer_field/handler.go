package set_customer_field

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
	msgUnknownField       = "неизвестное поле данных клиента"
	msgSessionNotFound    = "сессия не найдена или истекла"
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

// Handle PUT /api/v1/sessions/{sessionId}/customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetCustomerFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/customer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/customer - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/customer - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snapshot, err := sess.SetCustomerField(req.Field, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrUnknownField):
			h.logger.Warn("PUT /sessions/{id}/customer - Unknown field: session_id=%s, field=%q",
				sessionID, req.Field)
			handlers.RespondBadRequest(w, msgUnknownField)

		default:
			h.logger.Error("PUT /sessions/{id}/customer - Failed to set field: session_id=%s, field=%q, error=%v",
				sessionID, req.Field, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
