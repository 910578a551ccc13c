package select_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/catalog"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgServiceNotFound    = "услуга не найдена"
	msgCatalogUnavailable = "каталог услуг временно недоступен"
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

// Handle PUT /api/v1/sessions/{sessionId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/service - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/service - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snapshot, err := sess.SelectService(r.Context(), req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /sessions/{id}/service - Service not found: session_id=%s, service_id=%d",
				sessionID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrCatalogUnavailable):
			h.logger.Error("PUT /sessions/{id}/service - Catalog unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("PUT /sessions/{id}/service - Failed to select service: session_id=%s, service_id=%d, error=%v",
				sessionID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/service - Service selected: session_id=%s, service_id=%d",
		sessionID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
