package submit_wizard_session

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	createBooking "github.com/citystride/CST-BookingService/internal/usecase/create_booking"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

const (
	msgSessionNotFound     = "сессия не найдена или истекла"
	msgNotOnReview         = "отправка доступна только с шага подтверждения"
	msgAlreadySubmitted    = "бронирование уже отправлено"
	msgCapacityConflict    = "мест на выбранный слот уже не хватает, выберите другое время"
	msgSlotNotFound        = "выбранный слот больше не существует"
	msgTourNotFound        = "тур не найден"
	msgInvalidDate         = "дата тура уже прошла"
	msgTooManyParticipants = "превышен максимальный размер группы"
	msgIncompleteDraft     = "бронирование заполнено не полностью"
)

type Handler struct {
	store   SessionStore
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(store SessionStore, useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		store:   store,
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard-sessions/{sessionId}/submit
// При любой ошибке отправки сессия остается на шаге review,
// черновик не теряется: клиент правит выбор и повторяет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	// Тело опционально, пустое тело - обычное бронирование
	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgIncompleteDraft)
		return
	}

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /wizard-sessions/{sessionId}/submit - Failed to get session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	step, draft := session.Snapshot()
	if step == wizard.StepSubmitted {
		h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Already submitted: session_id=%s", sessionID)
		handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)
		return
	}
	if step != wizard.StepReview {
		h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Not on review step: session_id=%s, step=%s", sessionID, step)
		handlers.RespondError(w, http.StatusConflict, msgNotOnReview)
		return
	}

	useCaseReq, err := toUseCaseRequest(draft, session.TourID(), session.ID(), req.IsB2B)
	if err != nil {
		h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Incomplete draft: session_id=%s, error=%v", sessionID, err)
		handlers.RespondError(w, http.StatusConflict, msgIncompleteDraft)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCapacityConflict):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Capacity conflict: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityConflict)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Slot not found: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Tour not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Date in the past: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrTooManyParticipants):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Group size exceeded: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgTooManyParticipants)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgIncompleteDraft)

		default:
			h.logger.Error("POST /wizard-sessions/{sessionId}/submit - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Терминальный шаг только после успешной вставки
	if err := session.MarkSubmitted(); err != nil && !errors.Is(err, wizard.ErrAlreadySubmitted) {
		h.logger.Warn("POST /wizard-sessions/{sessionId}/submit - Failed to mark submitted: session_id=%s, error=%v", sessionID, err)
	}

	h.logger.Info("POST /wizard-sessions/{sessionId}/submit - Booking created: session_id=%s, booking_id=%d, already_existed=%t",
		sessionID, result.ID, result.AlreadyExisted)

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	handlers.RespondJSON(w, status, fromUseCaseResponse(result))
}
