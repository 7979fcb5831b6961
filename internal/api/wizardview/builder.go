// Package wizardview собирает ответ сессии мастера: шаг, черновик,
// календарь, слоты и сводку review. Используется всеми обработчиками
// сессий, чтобы любая операция возвращала одинаковую форму
package wizardview

import (
	"context"
	"errors"
	"time"

	"github.com/citystride/CST-BookingService/internal/i18n"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
	"github.com/citystride/CST-BookingService/internal/wizard"
	"github.com/citystride/CST-BookingService/pkg/calendar"
	"github.com/citystride/CST-BookingService/pkg/types"
)

// Builder собирает SessionView из состояния сессии
type Builder struct {
	tours  TourReader
	prices PriceConverter
}

// NewBuilder создает новый builder ответов сессии
func NewBuilder(tours TourReader, prices PriceConverter) *Builder {
	return &Builder{tours: tours, prices: prices}
}

// Build снимает состояние сессии и собирает ответ.
// Сводка review добирает тур из БД только на шаге review
func (b *Builder) Build(ctx context.Context, session *wizard.Session, today time.Time) (*SessionView, error) {
	step, draft := session.Snapshot()

	view := &SessionView{
		SessionID: session.ID(),
		TourID:    session.TourID(),
		Step:      string(step),
		Draft: DraftView{
			Language:        draft.Language,
			Date:            draft.Date,
			SlotID:          draft.SlotID,
			SlotTime:        draft.SlotTime,
			GuideID:         draft.GuideID,
			GuideName:       draft.GuideName,
			Participants:    draft.Participants,
			CustomerName:    draft.CustomerName,
			CustomerEmail:   draft.CustomerEmail,
			CustomerPhone:   draft.CustomerPhone,
			SpecialRequests: draft.SpecialRequests,
		},
		CanAdvance: wizard.CanAdvance(step, draft, session.MaxGroupSize()),
	}

	if step == wizard.StepDate {
		view.Calendar = b.buildCalendar(session, draft, today)
	}

	if step == wizard.StepTime {
		view.Slots = buildSlots(session, draft)
	}

	if step == wizard.StepReview {
		review, err := b.buildReview(ctx, session, draft)
		if err != nil {
			return nil, err
		}
		view.Review = review
	}

	return view, nil
}

// buildCalendar строит сетку последнего запрошенного месяца
func (b *Builder) buildCalendar(session *wizard.Session, draft wizard.Draft, today time.Time) *CalendarView {
	year, month, ok := session.ViewMonth()
	if !ok {
		return nil
	}

	locale := i18n.NewLocaleContext(draft.Language)
	cells := wizard.BuildCalendar(year, month, today, draft.Date, session.MonthAvailability())

	days := make([]DayCellView, 0, len(cells))
	for _, cell := range cells {
		days = append(days, DayCellView{
			Blank:      cell.Blank,
			Day:        cell.Day,
			Date:       cell.Date,
			Status:     string(cell.Status),
			TotalSpots: cell.TotalSpots,
			Selectable: cell.Selectable,
			Selected:   cell.Selected,
		})
	}

	return &CalendarView{
		Year:      year,
		Month:     int(month),
		MonthName: locale.MonthName(month),
		Days:      days,
	}
}

// buildSlots строит варианты слотов с выбираемостью под размер группы
func buildSlots(session *wizard.Session, draft wizard.Draft) []SlotOptionView {
	options := wizard.BuildSlotOptions(session.DaySlots(), draft.Participants, draft.SlotID)

	views := make([]SlotOptionView, 0, len(options))
	for _, opt := range options {
		views = append(views, SlotOptionView{
			SlotID:         opt.SlotID,
			Time:           opt.Time,
			GuideID:        opt.GuideID,
			GuideName:      opt.GuideName,
			GuidePhoto:     opt.GuidePhoto,
			GuideRating:    opt.GuideRating,
			SpotsRemaining: opt.SpotsRemaining,
			Badge:          opt.Badge,
			Selectable:     opt.Selectable,
			Selected:       opt.Selected,
		})
	}

	return views
}

// buildReview собирает локализованную сводку бронирования
func (b *Builder) buildReview(ctx context.Context, session *wizard.Session, draft wizard.Draft) (*ReviewView, error) {
	tour, err := b.tours.GetByID(ctx, session.TourID())
	if err != nil {
		return nil, err
	}

	title := tour.Slug
	translation, err := b.tours.GetTranslation(ctx, tour.ID, draft.Language)
	if err != nil && !errors.Is(err, tourRepo.ErrTranslationNotFound) {
		return nil, err
	}
	if translation != nil && translation.Title != "" {
		title = translation.Title
	}

	locale := i18n.NewLocaleContext(draft.Language)
	total := tour.TotalPrice(draft.Participants)

	var localizedDate string
	if day, err := calendar.ParseDate(draft.Date); err == nil {
		localizedDate = locale.FormatDate(day)
	}

	return &ReviewView{
		TourTitle:     title,
		Date:          localizedDate,
		Time:          locale.FormatTime(types.TimeString(draft.SlotTime)),
		GuideName:     draft.GuideName,
		Participants:  draft.Participants,
		TotalGBP:      total,
		Currency:      locale.Currency,
		TotalDisplay:  b.prices.Convert(total, locale.Currency),
		CustomerName:  draft.CustomerName,
		CustomerEmail: draft.CustomerEmail,
	}, nil
}
