package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	monthAvailability "github.com/citystride/CST-BookingService/internal/usecase/get_month_availability"
)

const (
	msgInvalidYearMonth    = "некорректные параметры year и month"
	msgUnsupportedLanguage = "неподдерживаемый язык"
	msgTourNotFound        = "тур не найден"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourId}/availability?lang=&year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	year, errYear := strconv.Atoi(query.Get("year"))
	month, errMonth := strconv.Atoi(query.Get("month"))
	if errYear != nil || errMonth != nil {
		h.logger.Warn("GET /tours/{tourId}/availability - Invalid year/month: year=%s, month=%s",
			query.Get("year"), query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	req := &monthAvailability.Request{
		TourID:       vars["tourId"],
		LanguageCode: query.Get("lang"),
		Year:         year,
		Month:        month,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, monthAvailability.ErrTourNotFound):
			h.logger.Warn("GET /tours/{tourId}/availability - Tour not found: tour_id=%s", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, monthAvailability.ErrUnsupportedLanguage):
			h.logger.Warn("GET /tours/{tourId}/availability - Unsupported language: %s", req.LanguageCode)
			handlers.RespondBadRequest(w, msgUnsupportedLanguage)

		case errors.Is(err, monthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tours/{tourId}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYearMonth)

		default:
			h.logger.Error("GET /tours/{tourId}/availability - Failed: tour_id=%s, error=%v", req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
