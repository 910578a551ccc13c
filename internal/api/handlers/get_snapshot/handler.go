package get_snapshot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
)

const msgSessionNotFound = "сессия не найдена или истекла"

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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snapshot := sess.Snapshot()

	// Неудачная загрузка каталога не мемоизируется: следующий запрос
	// снапшота повторяет ее (retry affordance баннера)
	if snapshot.CatalogError != "" {
		snapshot = sess.RetryCatalog(r.Context())
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snapshot))
}
