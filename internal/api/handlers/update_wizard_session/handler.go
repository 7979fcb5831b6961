package update_wizard_session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	"github.com/citystride/CST-BookingService/internal/domain"
	daySlots "github.com/citystride/CST-BookingService/internal/usecase/get_day_slots"
	monthAvailability "github.com/citystride/CST-BookingService/internal/usecase/get_month_availability"
	"github.com/citystride/CST-BookingService/internal/wizard"
	"github.com/citystride/CST-BookingService/pkg/calendar"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgSessionNotFound     = "сессия не найдена или истекла"
	msgAlreadySubmitted    = "бронирование уже отправлено"
	msgWrongStep           = "действие не относится к текущему шагу"
	msgUnknownLanguage     = "неподдерживаемый язык"
	msgDateNotSelectable   = "выбранная дата недоступна"
	msgSlotNotFound        = "слот не найден"
	msgSlotNotSelectable   = "в выбранном слоте недостаточно мест"
	msgInvalidParticipants = "некорректное количество участников"
	msgInvalidDetails      = "некорректные контактные данные"
)

type Handler struct {
	store        SessionStore
	view         ViewBuilder
	monthUseCase GetMonthAvailabilityUseCase
	dayUseCase   GetDaySlotsUseCase
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(
	store SessionStore,
	view ViewBuilder,
	monthUseCase GetMonthAvailabilityUseCase,
	dayUseCase GetDaySlotsUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		store:        store,
		view:         view,
		monthUseCase: monthUseCase,
		dayUseCase:   dayUseCase,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle PATCH /api/v1/wizard-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PATCH /wizard-sessions/{sessionId} - Failed to get session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	now := h.timeProvider.Now()

	if err := h.apply(r.Context(), session, &req, now); err != nil {
		h.respondError(w, sessionID, err)
		return
	}

	view, err := h.view.Build(r.Context(), session, now)
	if err != nil {
		h.logger.Error("PATCH /wizard-sessions/{sessionId} - Failed to build view: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

// apply применяет поля запроса в порядке шагов мастера
func (h *Handler) apply(ctx context.Context, session *wizard.Session, req *UpdateSessionRequest, now time.Time) error {
	if req.Language != nil {
		if err := session.SelectLanguage(*req.Language); err != nil {
			return err
		}
	}

	if req.ViewMonth != nil {
		if err := h.fetchMonth(ctx, session, req.ViewMonth.Year, req.ViewMonth.Month); err != nil {
			return err
		}
	}

	if req.Date != nil {
		if err := session.SelectDate(*req.Date, now); err != nil {
			return err
		}
		if err := h.fetchDay(ctx, session, *req.Date); err != nil {
			return err
		}
	}

	if req.SlotID != nil {
		if err := session.SelectSlot(*req.SlotID); err != nil {
			return err
		}
	}

	if req.Participants != nil {
		if err := session.SetParticipants(*req.Participants); err != nil {
			return err
		}
	}

	if req.Details != nil {
		if err := session.SetDetails(req.Details.Name, req.Details.Email, req.Details.Phone, req.Details.SpecialRequests); err != nil {
			return err
		}
	}

	return nil
}

// fetchMonth загружает месяц доступности под защитой поколения:
// устаревший ответ молча отбрасывается
func (h *Handler) fetchMonth(ctx context.Context, session *wizard.Session, year, month int) error {
	_, draft := session.Snapshot()

	gen := session.BeginMonthFetch(year, time.Month(month))

	result, err := h.monthUseCase.Execute(ctx, &monthAvailability.Request{
		TourID:       session.TourID(),
		LanguageCode: draft.Language,
		Year:         year,
		Month:        month,
	})
	if err != nil {
		return err
	}

	days := make(map[string]domain.DateAvailability, len(result.Days))
	for date, day := range result.Days {
		days[date] = domain.DateAvailability{
			Date:            day.Date,
			TotalSpots:      day.TotalSpots,
			HasAvailability: day.HasAvailability,
		}
	}

	if !session.ApplyMonthAvailability(gen, days) {
		h.logger.Info("PATCH /wizard-sessions/{sessionId} - Discarded stale month fetch: session_id=%s, period=%04d-%02d",
			session.ID(), year, month)
	}

	return nil
}

// fetchDay загружает слоты выбранной даты под защитой поколения
func (h *Handler) fetchDay(ctx context.Context, session *wizard.Session, date string) error {
	_, draft := session.Snapshot()

	day, err := calendar.ParseDate(date)
	if err != nil {
		return wizard.ErrDateNotSelectable
	}

	gen := session.BeginDayFetch()

	result, err := h.dayUseCase.Execute(ctx, &daySlots.Request{
		TourID:       session.TourID(),
		LanguageCode: draft.Language,
		Date:         day,
	})
	if err != nil {
		return err
	}

	slots := make([]wizard.SlotInfo, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, wizard.SlotInfo{
			SlotID:         slot.SlotID,
			Time:           slot.Time,
			GuideID:        slot.GuideID,
			GuideName:      slot.GuideName,
			GuidePhoto:     slot.GuidePhoto,
			GuideRating:    slot.GuideRating,
			SpotsRemaining: slot.SpotsRemaining,
			Badge:          slot.Badge,
		})
	}

	if !session.ApplyDaySlots(gen, slots) {
		h.logger.Info("PATCH /wizard-sessions/{sessionId} - Discarded stale day fetch: session_id=%s, date=%s",
			session.ID(), date)
	}

	return nil
}

// respondError конвертирует ошибки мастера в HTTP статусы
func (h *Handler) respondError(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Already submitted: session_id=%s", sessionID)
		handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)

	case errors.Is(err, wizard.ErrWrongStep):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Wrong step: session_id=%s, error=%v", sessionID, err)
		handlers.RespondError(w, http.StatusConflict, msgWrongStep)

	case errors.Is(err, wizard.ErrUnknownLanguage):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Unknown language: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgUnknownLanguage)

	case errors.Is(err, wizard.ErrDateNotSelectable):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Date not selectable: session_id=%s, error=%v", sessionID, err)
		handlers.RespondError(w, http.StatusConflict, msgDateNotSelectable)

	case errors.Is(err, wizard.ErrSlotNotFound):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Slot not found: session_id=%s, error=%v", sessionID, err)
		handlers.RespondNotFound(w, msgSlotNotFound)

	case errors.Is(err, wizard.ErrSlotNotSelectable):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Slot not selectable: session_id=%s, error=%v", sessionID, err)
		handlers.RespondError(w, http.StatusConflict, msgSlotNotSelectable)

	case errors.Is(err, wizard.ErrInvalidParticipants):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Invalid participants: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidParticipants)

	case errors.Is(err, wizard.ErrInvalidDetails):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Invalid details: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidDetails)

	case errors.Is(err, monthAvailability.ErrUnsupportedLanguage), errors.Is(err, daySlots.ErrUnsupportedLanguage):
		h.logger.Warn("PATCH /wizard-sessions/{sessionId} - Unsupported language: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgUnknownLanguage)

	default:
		h.logger.Error("PATCH /wizard-sessions/{sessionId} - Failed: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
	}
}
