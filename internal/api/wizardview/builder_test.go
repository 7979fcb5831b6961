package wizardview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/i18n"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

var testToday = time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)

type fakeTourReader struct {
	tour        *domain.Tour
	translation *domain.TourTranslation
}

func (f *fakeTourReader) GetByID(_ context.Context, _ string) (*domain.Tour, error) {
	return f.tour, nil
}

func (f *fakeTourReader) GetTranslation(_ context.Context, _, _ string) (*domain.TourTranslation, error) {
	if f.translation == nil {
		return nil, tourRepo.ErrTranslationNotFound
	}
	return f.translation, nil
}

func newTestBuilder(translation *domain.TourTranslation) *Builder {
	tours := &fakeTourReader{
		tour: &domain.Tour{
			ID:           "tour-westminster",
			Slug:         "westminster-walk",
			BasePriceGBP: 45.0,
			MaxGroupSize: 12,
			Status:       domain.TourStatusActive,
		},
		translation: translation,
	}
	prices := i18n.NewPriceConverter(map[string]float64{"EUR": 1.2})
	return NewBuilder(tours, prices)
}

func newWizardSession(t *testing.T) *wizard.Session {
	t.Helper()
	store := wizard.NewStore(time.Hour)
	t.Cleanup(store.Close)

	session, err := store.Create("tour-westminster", 12)
	require.NoError(t, err)
	return session
}

func TestBuildInitialStep(t *testing.T) {
	builder := newTestBuilder(nil)
	session := newWizardSession(t)

	view, err := builder.Build(context.Background(), session, testToday)
	require.NoError(t, err)

	assert.Equal(t, session.ID(), view.SessionID)
	assert.Equal(t, "tour-westminster", view.TourID)
	assert.Equal(t, "language", view.Step)
	assert.False(t, view.CanAdvance)
	assert.Nil(t, view.Calendar)
	assert.Nil(t, view.Slots)
	assert.Nil(t, view.Review)
}

func TestBuildCalendarOnDateStep(t *testing.T) {
	builder := newTestBuilder(nil)
	session := newWizardSession(t)

	require.NoError(t, session.SelectLanguage("fr"))
	_, err := session.Advance()
	require.NoError(t, err)

	gen := session.BeginMonthFetch(2026, time.September)
	require.True(t, session.ApplyMonthAvailability(gen, map[string]domain.DateAvailability{
		"2026-09-15": {Date: "2026-09-15", TotalSpots: 8, HasAvailability: true},
	}))

	view, err := builder.Build(context.Background(), session, testToday)
	require.NoError(t, err)

	require.NotNil(t, view.Calendar)
	assert.Equal(t, 2026, view.Calendar.Year)
	assert.Equal(t, 9, view.Calendar.Month)
	// Название месяца локализовано под выбранный язык
	assert.Equal(t, "septembre", view.Calendar.MonthName)
	assert.NotEmpty(t, view.Calendar.Days)
}

func TestBuildCalendarBeforeFirstFetch(t *testing.T) {
	builder := newTestBuilder(nil)
	session := newWizardSession(t)

	require.NoError(t, session.SelectLanguage("fr"))
	_, err := session.Advance()
	require.NoError(t, err)

	view, err := builder.Build(context.Background(), session, testToday)
	require.NoError(t, err)
	assert.Nil(t, view.Calendar)
}

func TestBuildSlotsOnTimeStep(t *testing.T) {
	builder := newTestBuilder(nil)
	session := newWizardSession(t)

	require.NoError(t, session.SelectLanguage("fr"))
	_, err := session.Advance()
	require.NoError(t, err)

	gen := session.BeginMonthFetch(2026, time.September)
	require.True(t, session.ApplyMonthAvailability(gen, map[string]domain.DateAvailability{
		"2026-09-15": {Date: "2026-09-15", TotalSpots: 8, HasAvailability: true},
	}))
	require.NoError(t, session.SelectDate("2026-09-15", testToday))
	_, err = session.Advance()
	require.NoError(t, err)

	gen = session.BeginDayFetch()
	require.True(t, session.ApplyDaySlots(gen, []wizard.SlotInfo{
		{SlotID: "slot-1", Time: "10:00", GuideID: "guide-7", GuideName: "Amélie", SpotsRemaining: 8, Badge: "open"},
		{SlotID: "slot-2", Time: "14:00", GuideID: "guide-9", GuideName: "Tom", SpotsRemaining: 0, Badge: "sold_out"},
	}))

	view, err := builder.Build(context.Background(), session, testToday)
	require.NoError(t, err)

	require.Len(t, view.Slots, 2)
	assert.True(t, view.Slots[0].Selectable)
	assert.False(t, view.Slots[1].Selectable)
	assert.Nil(t, view.Review)
}

func TestBuildReviewLocalized(t *testing.T) {
	builder := newTestBuilder(&domain.TourTranslation{
		TourID:       "tour-westminster",
		LanguageCode: "fr",
		Title:        "Promenade de Westminster",
	})
	session := newWizardSession(t)
	driveToReview(t, session)

	view, err := builder.Build(context.Background(), session, testToday)
	require.NoError(t, err)

	require.NotNil(t, view.Review)
	review := view.Review
	assert.Equal(t, "Promenade de Westminster", review.TourTitle)
	assert.Equal(t, "15 septembre 2026", review.Date)
	assert.Equal(t, "10:00", review.Time)
	assert.Equal(t, "Amélie", review.GuideName)
	assert.Equal(t, 2, review.Participants)
	assert.Equal(t, 90.0, review.TotalGBP)
	assert.Equal(t, "EUR", review.Currency)
	assert.Equal(t, "€108.00", review.TotalDisplay)
}

func TestBuildReviewTitleFallsBackToSlug(t *testing.T) {
	builder := newTestBuilder(nil)
	session := newWizardSession(t)
	driveToReview(t, session)

	view, err := builder.Build(context.Background(), session, testToday)
	require.NoError(t, err)
	assert.Equal(t, "westminster-walk", view.Review.TourTitle)
}

// driveToReview проводит сессию по всем шагам до review
func driveToReview(t *testing.T, s *wizard.Session) {
	t.Helper()

	require.NoError(t, s.SelectLanguage("fr"))
	_, err := s.Advance()
	require.NoError(t, err)

	gen := s.BeginMonthFetch(2026, time.September)
	require.True(t, s.ApplyMonthAvailability(gen, map[string]domain.DateAvailability{
		"2026-09-15": {Date: "2026-09-15", TotalSpots: 8, HasAvailability: true},
	}))
	require.NoError(t, s.SelectDate("2026-09-15", testToday))
	_, err = s.Advance()
	require.NoError(t, err)

	gen = s.BeginDayFetch()
	require.True(t, s.ApplyDaySlots(gen, []wizard.SlotInfo{
		{SlotID: "slot-1", Time: "10:00", GuideID: "guide-7", GuideName: "Amélie", SpotsRemaining: 8, Badge: "open"},
	}))
	require.NoError(t, s.SelectSlot("slot-1"))
	_, err = s.Advance()
	require.NoError(t, err)

	require.NoError(t, s.SetParticipants(2))
	_, err = s.Advance()
	require.NoError(t, err)

	require.NoError(t, s.SetDetails("Jane Doe", "jane@example.com", "", ""))
	_, err = s.Advance()
	require.NoError(t, err)
}
