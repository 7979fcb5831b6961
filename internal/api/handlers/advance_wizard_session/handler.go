package advance_wizard_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

const (
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgStepIncomplete   = "текущий шаг не заполнен"
	msgSubmitRequired   = "с шага подтверждения бронирование отправляется явно"
	msgAlreadySubmitted = "бронирование уже отправлено"
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

// Handle POST /api/v1/wizard-sessions/{sessionId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("POST /wizard-sessions/{sessionId}/advance - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /wizard-sessions/{sessionId}/advance - Failed to get session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	step, err := session.Advance()
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrStepIncomplete):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/advance - Step incomplete: session_id=%s, step=%s", sessionID, step)
			handlers.RespondError(w, http.StatusConflict, msgStepIncomplete)

		case errors.Is(err, wizard.ErrSubmitRequired):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/advance - Submit required: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitRequired)

		case errors.Is(err, wizard.ErrAlreadySubmitted):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/advance - Already submitted: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)

		default:
			h.logger.Error("POST /wizard-sessions/{sessionId}/advance - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	view, err := h.view.Build(r.Context(), session, h.timeProvider.Now())
	if err != nil {
		h.logger.Error("POST /wizard-sessions/{sessionId}/advance - Failed to build view: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard-sessions/{sessionId}/advance - Advanced: session_id=%s, step=%s", sessionID, step)
	handlers.RespondJSON(w, http.StatusOK, view)
}
