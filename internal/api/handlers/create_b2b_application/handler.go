package create_b2b_application

import (
	"errors"
	"net/http"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	submitB2B "github.com/citystride/CST-BookingService/internal/usecase/submit_b2b_application"
)

const msgInvalidInput = "некорректные данные заявки: название компании и email обязательны"

type Handler struct {
	useCase SubmitB2BApplicationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitB2BApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/b2b-applications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateB2BApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /b2b-applications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitB2B.ErrInvalidInput):
			h.logger.Warn("POST /b2b-applications - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /b2b-applications - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /b2b-applications - Application received: application_id=%d, company=%s",
		result.ID, result.CompanyName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
