package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	daySlots "github.com/citystride/CST-BookingService/internal/usecase/get_day_slots"
	"github.com/citystride/CST-BookingService/pkg/calendar"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnsupportedLanguage = "неподдерживаемый язык"
	msgTourNotFound        = "тур не найден"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourId}/slots?lang=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	date, err := calendar.ParseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /tours/{tourId}/slots - Invalid date: %s", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &daySlots.Request{
		TourID:       vars["tourId"],
		LanguageCode: query.Get("lang"),
		Date:         date,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, daySlots.ErrTourNotFound):
			h.logger.Warn("GET /tours/{tourId}/slots - Tour not found: tour_id=%s", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, daySlots.ErrUnsupportedLanguage):
			h.logger.Warn("GET /tours/{tourId}/slots - Unsupported language: %s", req.LanguageCode)
			handlers.RespondBadRequest(w, msgUnsupportedLanguage)

		case errors.Is(err, daySlots.ErrInvalidInput):
			h.logger.Warn("GET /tours/{tourId}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /tours/{tourId}/slots - Failed: tour_id=%s, error=%v", req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
