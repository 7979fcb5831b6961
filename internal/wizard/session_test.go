package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystride/CST-BookingService/internal/domain"
)

var testToday = time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return newSession("abc123", "tour-westminster", 12, testToday, time.Hour)
}

// loadMonth загружает в сессию месяц с одним доступным днем
func loadMonth(t *testing.T, s *Session, date string, spots int) {
	t.Helper()
	gen := s.BeginMonthFetch(2026, time.September)
	applied := s.ApplyMonthAvailability(gen, map[string]domain.DateAvailability{
		date: {Date: date, TotalSpots: spots, HasAvailability: spots > 0},
	})
	require.True(t, applied)
}

// loadDay загружает в сессию слоты дня
func loadDay(t *testing.T, s *Session, slots []SlotInfo) {
	t.Helper()
	gen := s.BeginDayFetch()
	require.True(t, s.ApplyDaySlots(gen, slots))
}

// fillToReview проводит сессию по всем шагам до review
func fillToReview(t *testing.T, s *Session) {
	t.Helper()

	require.NoError(t, s.SelectLanguage("en"))
	step, err := s.Advance()
	require.NoError(t, err)
	require.Equal(t, StepDate, step)

	loadMonth(t, s, "2026-09-15", 8)
	require.NoError(t, s.SelectDate("2026-09-15", testToday))
	step, err = s.Advance()
	require.NoError(t, err)
	require.Equal(t, StepTime, step)

	loadDay(t, s, []SlotInfo{
		{SlotID: "slot-1", Time: "10:00", GuideID: "guide-7", GuideName: "Amelia", SpotsRemaining: 8, Badge: "open"},
	})
	require.NoError(t, s.SelectSlot("slot-1"))
	step, err = s.Advance()
	require.NoError(t, err)
	require.Equal(t, StepParticipants, step)

	require.NoError(t, s.SetParticipants(3))
	step, err = s.Advance()
	require.NoError(t, err)
	require.Equal(t, StepDetails, step)

	require.NoError(t, s.SetDetails("Jane Doe", "jane@example.com", "+44 20 1234 5678", ""))
	step, err = s.Advance()
	require.NoError(t, err)
	require.Equal(t, StepReview, step)
}

func TestAdvanceRequiresCompleteStep(t *testing.T) {
	s := newTestSession(t)

	// Язык не выбран, вперед нельзя
	step, err := s.Advance()
	assert.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, StepLanguage, step)
}

func TestHappyPathToReview(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)

	step, draft := s.Snapshot()
	assert.Equal(t, StepReview, step)
	assert.Equal(t, "en", draft.Language)
	assert.Equal(t, "2026-09-15", draft.Date)
	assert.Equal(t, "slot-1", draft.SlotID)
	assert.Equal(t, "10:00", draft.SlotTime)
	assert.Equal(t, "Amelia", draft.GuideName)
	assert.Equal(t, 3, draft.Participants)
	assert.Equal(t, "Jane Doe", draft.CustomerName)
}

func TestAdvanceFromReviewRequiresSubmit(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrSubmitRequired)
}

func TestRetreatExitsFromFirstStep(t *testing.T) {
	s := newTestSession(t)

	step, exited, err := s.Retreat()
	require.NoError(t, err)
	assert.True(t, exited)
	assert.Equal(t, StepLanguage, step)
}

func TestRetreatPreservesDraft(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)

	// Назад до шага участников и обратно вперед
	step, exited, err := s.Retreat()
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, StepDetails, step)

	step, _, err = s.Retreat()
	require.NoError(t, err)
	assert.Equal(t, StepParticipants, step)

	_, draft := s.Snapshot()
	assert.Equal(t, "slot-1", draft.SlotID)
	assert.Equal(t, "Jane Doe", draft.CustomerName)

	// Шаги заполнены, вперед проходим без повторного ввода
	step, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, StepDetails, step)
	step, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, StepReview, step)
}

func TestSelectionScopedToCurrentStep(t *testing.T) {
	s := newTestSession(t)

	// На шаге языка нельзя выбрать дату или слот
	err := s.SelectDate("2026-09-15", testToday)
	assert.ErrorIs(t, err, ErrWrongStep)

	err = s.SelectSlot("slot-1")
	assert.ErrorIs(t, err, ErrWrongStep)

	err = s.SetParticipants(2)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestSelectLanguageUnknown(t *testing.T) {
	s := newTestSession(t)

	err := s.SelectLanguage("ru")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLanguageChangeInvalidatesDateAndSlot(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)

	// Возвращаемся к шагу языка
	for i := 0; i < 5; i++ {
		_, _, err := s.Retreat()
		require.NoError(t, err)
	}
	step, _ := s.Snapshot()
	require.Equal(t, StepLanguage, step)

	require.NoError(t, s.SelectLanguage("fr"))

	_, draft := s.Snapshot()
	assert.Empty(t, draft.Date)
	assert.Empty(t, draft.SlotID)
	assert.Empty(t, draft.GuideID)
	assert.Nil(t, s.MonthAvailability())
	assert.Nil(t, s.DaySlots())
	// Контактные данные и размер группы переживают смену языка
	assert.Equal(t, "Jane Doe", draft.CustomerName)
	assert.Equal(t, 3, draft.Participants)
}

func TestSameLanguageKeepsSelections(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)

	for i := 0; i < 5; i++ {
		_, _, err := s.Retreat()
		require.NoError(t, err)
	}

	require.NoError(t, s.SelectLanguage("en"))

	_, draft := s.Snapshot()
	assert.Equal(t, "2026-09-15", draft.Date)
	assert.Equal(t, "slot-1", draft.SlotID)
}

func TestDateChangeInvalidatesSlot(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)

	// Назад до шага даты
	for i := 0; i < 4; i++ {
		_, _, err := s.Retreat()
		require.NoError(t, err)
	}
	step, _ := s.Snapshot()
	require.Equal(t, StepDate, step)

	gen := s.BeginMonthFetch(2026, time.September)
	require.True(t, s.ApplyMonthAvailability(gen, map[string]domain.DateAvailability{
		"2026-09-15": {Date: "2026-09-15", TotalSpots: 8, HasAvailability: true},
		"2026-09-20": {Date: "2026-09-20", TotalSpots: 4, HasAvailability: true},
	}))

	require.NoError(t, s.SelectDate("2026-09-20", testToday))

	_, draft := s.Snapshot()
	assert.Equal(t, "2026-09-20", draft.Date)
	assert.Empty(t, draft.SlotID)
	assert.Empty(t, draft.GuideName)
	assert.Nil(t, s.DaySlots())
}

func TestSelectDateRejections(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectLanguage("en"))
	_, err := s.Advance()
	require.NoError(t, err)

	loadMonth(t, s, "2026-09-15", 8)

	// Прошедшая дата
	err = s.SelectDate("2026-09-01", testToday)
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	// Дата без доступности
	err = s.SelectDate("2026-09-16", testToday)
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	// Мусор вместо даты
	err = s.SelectDate("tomorrow", testToday)
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	// Состояние не изменилось
	_, draft := s.Snapshot()
	assert.Empty(t, draft.Date)
}

func TestSelectSlotInsufficientSpots(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectLanguage("en"))
	_, err := s.Advance()
	require.NoError(t, err)

	loadMonth(t, s, "2026-09-15", 8)
	require.NoError(t, s.SelectDate("2026-09-15", testToday))
	_, err = s.Advance()
	require.NoError(t, err)

	loadDay(t, s, []SlotInfo{
		{SlotID: "slot-tight", Time: "10:00", GuideID: "guide-7", SpotsRemaining: 2, Badge: "limited"},
	})

	// Группа по умолчанию из 1 проходит, но после не влезает
	require.NoError(t, s.SelectSlot("slot-tight"))

	// Сбросим выбор через несуществующий слот - состояние не меняется
	err = s.SelectSlot("slot-missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)
	_, draft := s.Snapshot()
	assert.Equal(t, "slot-tight", draft.SlotID)
}

func TestSelectSlotRejectedForLargeGroup(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectLanguage("en"))
	_, err := s.Advance()
	require.NoError(t, err)

	loadMonth(t, s, "2026-09-15", 8)
	require.NoError(t, s.SelectDate("2026-09-15", testToday))
	_, err = s.Advance()
	require.NoError(t, err)

	loadDay(t, s, []SlotInfo{
		{SlotID: "slot-1", Time: "10:00", GuideID: "guide-7", SpotsRemaining: 5, Badge: "limited"},
	})
	require.NoError(t, s.SelectSlot("slot-1"))
	_, err = s.Advance()
	require.NoError(t, err)

	// Группа больше остатка
	require.NoError(t, s.SetParticipants(6))

	// Вернулись к выбору слота, прежний слот уже не выбираем
	_, _, err = s.Retreat()
	require.NoError(t, err)
	err = s.SelectSlot("slot-1")
	assert.ErrorIs(t, err, ErrSlotNotSelectable)
}

func TestSetParticipantsRange(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)
	for i := 0; i < 2; i++ {
		_, _, err := s.Retreat()
		require.NoError(t, err)
	}
	step, _ := s.Snapshot()
	require.Equal(t, StepParticipants, step)

	assert.ErrorIs(t, s.SetParticipants(0), ErrInvalidParticipants)
	assert.ErrorIs(t, s.SetParticipants(13), ErrInvalidParticipants)
	assert.NoError(t, s.SetParticipants(12))
}

func TestSetDetailsValidation(t *testing.T) {
	s := newTestSession(t)
	fillToReview(t, s)
	_, _, err := s.Retreat()
	require.NoError(t, err)
	step, _ := s.Snapshot()
	require.Equal(t, StepDetails, step)

	assert.ErrorIs(t, s.SetDetails("", "jane@example.com", "", ""), ErrInvalidDetails)
	assert.ErrorIs(t, s.SetDetails("Jane", "not-an-email", "", ""), ErrInvalidDetails)
	assert.ErrorIs(t, s.SetDetails("Jane", "jane @example.com", "", ""), ErrInvalidDetails)

	long := make([]byte, domain.MaxSpecialRequestsLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, s.SetDetails("Jane", "jane@example.com", "", string(long)), ErrInvalidDetails)

	assert.NoError(t, s.SetDetails("  Jane Doe  ", "jane@example.com", "", "window seat"))
	_, draft := s.Snapshot()
	assert.Equal(t, "Jane Doe", draft.CustomerName)
}

func TestStaleMonthFetchDiscarded(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectLanguage("en"))
	_, err := s.Advance()
	require.NoError(t, err)

	// Клиент пролистал на два месяца, ответы пришли не по порядку
	genSep := s.BeginMonthFetch(2026, time.September)
	genOct := s.BeginMonthFetch(2026, time.October)

	octDays := map[string]domain.DateAvailability{
		"2026-10-03": {Date: "2026-10-03", TotalSpots: 6, HasAvailability: true},
	}
	require.True(t, s.ApplyMonthAvailability(genOct, octDays))

	// Запоздавший сентябрь отброшен
	sepDays := map[string]domain.DateAvailability{
		"2026-09-15": {Date: "2026-09-15", TotalSpots: 8, HasAvailability: true},
	}
	assert.False(t, s.ApplyMonthAvailability(genSep, sepDays))

	assert.Equal(t, octDays, s.MonthAvailability())

	year, month, ok := s.ViewMonth()
	require.True(t, ok)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.October, month)
}

func TestStaleDayFetchDiscarded(t *testing.T) {
	s := newTestSession(t)

	genOld := s.BeginDayFetch()
	genNew := s.BeginDayFetch()

	fresh := []SlotInfo{{SlotID: "slot-new"}}
	require.True(t, s.ApplyDaySlots(genNew, fresh))
	assert.False(t, s.ApplyDaySlots(genOld, []SlotInfo{{SlotID: "slot-old"}}))

	assert.Equal(t, fresh, s.DaySlots())
}

func TestLanguageChangeInvalidatesInFlightFetch(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectLanguage("en"))
	_, err := s.Advance()
	require.NoError(t, err)

	gen := s.BeginMonthFetch(2026, time.September)

	// Пока месяц грузился, клиент вернулся и сменил язык
	_, _, err = s.Retreat()
	require.NoError(t, err)
	require.NoError(t, s.SelectLanguage("de"))

	assert.False(t, s.ApplyMonthAvailability(gen, map[string]domain.DateAvailability{
		"2026-09-15": {Date: "2026-09-15", TotalSpots: 8, HasAvailability: true},
	}))
}

func TestMarkSubmitted(t *testing.T) {
	s := newTestSession(t)

	// Только с шага review
	err := s.MarkSubmitted()
	assert.ErrorIs(t, err, ErrWrongStep)

	fillToReview(t, s)
	require.NoError(t, s.MarkSubmitted())

	step, _ := s.Snapshot()
	assert.Equal(t, StepSubmitted, step)

	// Терминальный шаг: любые действия отклоняются
	assert.ErrorIs(t, s.MarkSubmitted(), ErrAlreadySubmitted)
	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	_, _, err = s.Retreat()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.ErrorIs(t, s.SelectLanguage("en"), ErrAlreadySubmitted)
}

func TestViewMonthBeforeFirstFetch(t *testing.T) {
	s := newTestSession(t)
	_, _, ok := s.ViewMonth()
	assert.False(t, ok)
}
