package create_wizard_session

import (
	"errors"
	"net/http"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTourNotFound       = "тур не найден"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	TourID string `json:"tourId"`
}

type Handler struct {
	tours        TourRepository
	store        SessionStore
	view         ViewBuilder
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(tours TourRepository, store SessionStore, view ViewBuilder, logger Logger) *Handler {
	return &Handler{
		tours:        tours,
		store:        store,
		view:         view,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle POST /api/v1/wizard-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.TourID == "" {
		h.logger.Warn("POST /wizard-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tour, err := h.tours.GetByID(r.Context(), req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			h.logger.Warn("POST /wizard-sessions - Tour not found: tour_id=%s", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)
			return
		}
		h.logger.Error("POST /wizard-sessions - Failed to get tour: tour_id=%s, error=%v", req.TourID, err)
		handlers.RespondInternalError(w)
		return
	}
	if !tour.IsActive() {
		h.logger.Warn("POST /wizard-sessions - Tour not active: tour_id=%s", req.TourID)
		handlers.RespondNotFound(w, msgTourNotFound)
		return
	}

	session, err := h.store.Create(tour.ID, tour.MaxGroupSize)
	if err != nil {
		h.logger.Error("POST /wizard-sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	view, err := h.view.Build(r.Context(), session, h.timeProvider.Now())
	if err != nil {
		h.logger.Error("POST /wizard-sessions - Failed to build view: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard-sessions - Session created: session_id=%s, tour_id=%s", session.ID(), tour.ID)
	handlers.RespondJSON(w, http.StatusCreated, view)
}
