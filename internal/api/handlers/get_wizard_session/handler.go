package get_wizard_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

const (
	msgSessionNotFound = "сессия не найдена или истекла"
)

type Handler struct {
	store        SessionStore
	view         ViewBuilder
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(store SessionStore, view ViewBuilder, logger Logger) *Handler {
	return &Handler{
		store:        store,
		view:         view,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/wizard-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("GET /wizard-sessions/{sessionId} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /wizard-sessions/{sessionId} - Failed to get session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	view, err := h.view.Build(r.Context(), session, h.timeProvider.Now())
	if err != nil {
		h.logger.Error("GET /wizard-sessions/{sessionId} - Failed to build view: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
