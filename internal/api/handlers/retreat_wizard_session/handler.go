package retreat_wizard_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	"github.com/citystride/CST-BookingService/internal/api/wizardview"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

const (
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgAlreadySubmitted = "бронирование уже отправлено"
)

// RetreatResponse HTTP response model.
// Exited=true - шаг назад с выбора языка, мастер покинут
type RetreatResponse struct {
	Exited  bool                    `json:"exited"`
	Session *wizardview.SessionView `json:"session"`
}

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

// Handle POST /api/v1/wizard-sessions/{sessionId}/retreat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("POST /wizard-sessions/{sessionId}/retreat - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /wizard-sessions/{sessionId}/retreat - Failed to get session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	step, exited, err := session.Retreat()
	if err != nil {
		if errors.Is(err, wizard.ErrAlreadySubmitted) {
			h.logger.Warn("POST /wizard-sessions/{sessionId}/retreat - Already submitted: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)
			return
		}
		h.logger.Error("POST /wizard-sessions/{sessionId}/retreat - Failed: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	view, err := h.view.Build(r.Context(), session, h.timeProvider.Now())
	if err != nil {
		h.logger.Error("POST /wizard-sessions/{sessionId}/retreat - Failed to build view: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard-sessions/{sessionId}/retreat - Retreated: session_id=%s, step=%s, exited=%t", sessionID, step, exited)
	handlers.RespondJSON(w, http.StatusOK, RetreatResponse{Exited: exited, Session: view})
}
