package toggle_extra

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/catalog"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
	"github.com/m04kA/SMC-ConfiguratorService/internal/wizard"
)

const (
	msgInvalidExtraID     = "некорректный идентификатор допуслуги"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgExtraNotFound      = "допуслуга не найдена для выбранной услуги"
	msgNoServiceSelected  = "сначала выберите услугу"
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

// Handle POST /api/v1/sessions/{sessionId}/extras/{extraId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	extraID, err := strconv.ParseInt(vars["extraId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/extras/{extraId} - Invalid extra id: %q", vars["extraId"])
		handlers.RespondBadRequest(w, msgInvalidExtraID)
		return
	}

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/extras/{extraId} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/extras/{extraId} - Failed to get session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snapshot, err := sess.ToggleExtra(r.Context(), extraID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrNoServiceSelected):
			h.logger.Warn("POST /sessions/{id}/extras/{extraId} - No service selected: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNoServiceSelected)

		case errors.Is(err, catalog.ErrExtraNotFound):
			h.logger.Warn("POST /sessions/{id}/extras/{extraId} - Extra not found: session_id=%s, extra_id=%d",
				sessionID, extraID)
			handlers.RespondNotFound(w, msgExtraNotFound)

		case errors.Is(err, catalog.ErrCatalogUnavailable):
			h.logger.Error("POST /sessions/{id}/extras/{extraId} - Catalog unavailable: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/extras/{extraId} - Failed to toggle extra: session_id=%s, extra_id=%d, error=%v",
				sessionID, extraID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/extras/{extraId} - Extra toggled: session_id=%s, extra_id=%d",
		sessionID, extraID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
