package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/api/middleware"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/sessions"
)

const msgTokenRequired = "отсутствует widget-токен"

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	sess, err := h.sessions.Create(token)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrTokenRequired):
			h.logger.Warn("POST /sessions - Missing widget token")
			handlers.RespondError(w, http.StatusUnauthorized, msgTokenRequired)

		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Загрузка каталога: неудача не фатальна, снапшот вернет баннер ошибки
	snapshot := sess.Start(r.Context())

	h.logger.Info("POST /sessions - Session created: session_id=%s", sess.ID())
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(snapshot))
}
