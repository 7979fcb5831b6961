package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystride/CST-BookingService/internal/domain"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
	"github.com/citystride/CST-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTourRepo struct {
	tour *domain.Tour
	err  error
}

func (f *fakeTourRepo) GetByID(_ context.Context, _ string) (*domain.Tour, error) {
	return f.tour, f.err
}

type fakeAvailabilityRepo struct {
	slots []*domain.AvailabilitySlot
}

func (f *fakeAvailabilityRepo) QueryRange(_ context.Context, _, _ string, _, _ time.Time) ([]*domain.AvailabilitySlot, error) {
	return f.slots, nil
}

type fakeGuideRepo struct {
	translations map[string]*domain.GuideTranslation
	requestedIDs []string
}

func (f *fakeGuideRepo) GetTranslations(_ context.Context, guideIDs []string, _ string) (map[string]*domain.GuideTranslation, error) {
	f.requestedIDs = guideIDs
	return f.translations, nil
}

func daySlot(id, guideID, slug string, at string, capacity, booked int) *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:           id,
		TourID:       "tour-westminster",
		GuideID:      guideID,
		GuideSlug:    slug,
		Date:         time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:     types.TimeString(at),
		BaseCapacity: capacity,
		BookedCount:  booked,
	}
}

func TestGetDaySlots(t *testing.T) {
	slots := &fakeAvailabilityRepo{slots: []*domain.AvailabilitySlot{
		daySlot("slot-1", "guide-7", "amelia-hart", "10:00", 10, 2),
		daySlot("slot-2", "guide-9", "tom-finch", "14:00", 10, 7),
		daySlot("slot-3", "guide-7", "amelia-hart", "18:00", 10, 10),
	}}
	guides := &fakeGuideRepo{translations: map[string]*domain.GuideTranslation{
		"guide-7": {GuideID: "guide-7", LanguageCode: "es", Name: "Amelia"},
	}}

	uc := NewUseCase(
		&fakeTourRepo{tour: &domain.Tour{ID: "tour-westminster", Status: domain.TourStatusActive}},
		slots,
		guides,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		TourID:       "tour-westminster",
		LanguageCode: "es",
		Date:         time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-15", resp.Date)
	require.Len(t, resp.Slots, 3)

	// Гиды переведены одним запросом без дублей
	assert.Equal(t, []string{"guide-7", "guide-9"}, guides.requestedIDs)

	first := resp.Slots[0]
	assert.Equal(t, "slot-1", first.SlotID)
	assert.Equal(t, "10:00", first.Time)
	assert.Equal(t, "Amelia", first.GuideName)
	assert.Equal(t, 8, first.SpotsRemaining)
	assert.Equal(t, "open", first.Badge)

	// Без перевода имя откатывается на slug
	second := resp.Slots[1]
	assert.Equal(t, "tom-finch", second.GuideName)
	assert.Equal(t, 3, second.SpotsRemaining)
	assert.Equal(t, "limited", second.Badge)

	// Распроданный слот остается в выдаче
	third := resp.Slots[2]
	assert.Equal(t, 0, third.SpotsRemaining)
	assert.Equal(t, "sold_out", third.Badge)
}

func TestGetDaySlotsTourNotFound(t *testing.T) {
	uc := NewUseCase(&fakeTourRepo{err: tourRepo.ErrTourNotFound}, &fakeAvailabilityRepo{}, &fakeGuideRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TourID:       "tour-missing",
		LanguageCode: "en",
		Date:         time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestGetDaySlotsValidation(t *testing.T) {
	uc := NewUseCase(
		&fakeTourRepo{tour: &domain.Tour{Status: domain.TourStatusActive}},
		&fakeAvailabilityRepo{},
		&fakeGuideRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{TourID: "t", LanguageCode: "ru", Date: time.Now()})
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = uc.Execute(context.Background(), &Request{TourID: "t", LanguageCode: "en"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDaySlotsEmptyDay(t *testing.T) {
	uc := NewUseCase(
		&fakeTourRepo{tour: &domain.Tour{Status: domain.TourStatusActive}},
		&fakeAvailabilityRepo{},
		&fakeGuideRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		TourID:       "tour-westminster",
		LanguageCode: "en",
		Date:         time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
