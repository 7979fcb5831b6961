package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/events"
	availabilityRepo "github.com/citystride/CST-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/citystride/CST-BookingService/internal/infra/storage/booking"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
	"github.com/citystride/CST-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeTourRepo struct {
	tour *domain.Tour
	err  error
}

func (f *fakeTourRepo) GetByID(_ context.Context, _ string) (*domain.Tour, error) {
	return f.tour, f.err
}

type fakeAvailabilityRepo struct {
	slot *domain.AvailabilitySlot
	err  error
}

func (f *fakeAvailabilityRepo) GetForBooking(_ context.Context, _, _ string, _ time.Time, _ string) (*domain.AvailabilitySlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slot, nil
}

type fakeBookingRepo struct {
	existing    *domain.Booking
	bookedSum   int
	created     *domain.Booking
	createCalls int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	created := *booking
	created.ID = 101
	created.CreatedAt = time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByIdempotencyKey(_ context.Context, _ string) (*domain.Booking, error) {
	if f.existing == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.existing, nil
}

func (f *fakeBookingRepo) SumActiveParticipants(_ context.Context, _, _ string, _ time.Time, _ types.TimeString) (int, error) {
	return f.bookedSum, nil
}

type fakeCache struct{ invalidated []string }

func (f *fakeCache) InvalidateTour(_ context.Context, tourID string) error {
	f.invalidated = append(f.invalidated, tourID)
	return nil
}

type fakePublisher struct{ published []events.BookingConfirmedEvent }

func (f *fakePublisher) PublishBookingConfirmed(_ context.Context, event events.BookingConfirmedEvent) error {
	f.published = append(f.published, event)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	useCase   *UseCase
	tours     *fakeTourRepo
	slots     *fakeAvailabilityRepo
	bookings  *fakeBookingRepo
	cache     *fakeCache
	publisher *fakePublisher
}

func newFixture() *fixture {
	f := &fixture{
		tours: &fakeTourRepo{tour: &domain.Tour{
			ID:           "tour-westminster",
			Slug:         "westminster-walk",
			BasePriceGBP: 45.0,
			MaxGroupSize: 12,
			Status:       domain.TourStatusActive,
		}},
		slots: &fakeAvailabilityRepo{slot: &domain.AvailabilitySlot{
			ID:           "slot-1",
			TourID:       "tour-westminster",
			GuideID:      "guide-7",
			BaseCapacity: 10,
		}},
		bookings:  &fakeBookingRepo{},
		cache:     &fakeCache{},
		publisher: &fakePublisher{},
	}

	f.useCase = NewUseCase(f.tours, f.slots, f.bookings, f.cache, f.publisher, fakeTxManager{}, nopLogger{})
	f.useCase.timeProvider = fixedTime{now: time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		TourID:          "tour-westminster",
		GuideID:         "guide-7",
		Date:            time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		Time:            types.TimeString("10:00"),
		NumParticipants: 3,
		LanguageCode:    "es",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		IdempotencyKey:  "abc123",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.False(t, resp.AlreadyExisted)

	// Сумма строго цена за человека * размер группы, валюта из языка
	assert.Equal(t, 135.0, resp.TotalAmount)
	assert.Equal(t, "EUR", resp.Currency)

	// Побочные эффекты нового бронирования
	assert.Equal(t, []string{"tour-westminster"}, f.cache.invalidated)
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, int64(101), f.publisher.published[0].BookingID)
}

func TestCreateBookingIdempotentResubmit(t *testing.T) {
	f := newFixture()
	f.bookings.existing = &domain.Booking{
		ID:                 55,
		TourID:             "tour-westminster",
		GuideID:            "guide-7",
		NumParticipants:    3,
		LanguagePreference: "es",
		Currency:           "EUR",
		TotalAmount:        135.0,
		Status:             domain.StatusConfirmed,
		IdempotencyKey:     "abc123",
	}

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.ID)
	assert.True(t, resp.AlreadyExisted)

	// Повтор не создает бронирование и не трогает кэш и брокер
	assert.Zero(t, f.bookings.createCalls)
	assert.Empty(t, f.cache.invalidated)
	assert.Empty(t, f.publisher.published)
}

func TestCreateBookingCapacityConflict(t *testing.T) {
	f := newFixture()
	// 8 из 10 мест уже заняты, запрошено 3
	f.bookings.bookedSum = 8

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCapacityConflict)
	assert.Zero(t, f.bookings.createCalls)
	assert.Empty(t, f.cache.invalidated)
}

func TestCreateBookingExactCapacityFits(t *testing.T) {
	f := newFixture()
	// Ровно 3 места осталось, запрошено 3
	f.bookings.bookedSum = 7

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.NumParticipants)
}

func TestCreateBookingPastDate(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBookingSameDayAllowed(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.useCase.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBookingTourNotFound(t *testing.T) {
	f := newFixture()
	f.tours.tour = nil
	f.tours.err = tourRepo.ErrTourNotFound

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestCreateBookingInactiveTour(t *testing.T) {
	f := newFixture()
	f.tours.tour.Status = domain.TourStatusInactive

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestCreateBookingGroupTooLarge(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.NumParticipants = 13

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyParticipants)
}

func TestCreateBookingSlotNotFound(t *testing.T) {
	f := newFixture()
	f.slots.err = availabilityRepo.ErrSlotNotFound

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"missing tour", func(r *Request) { r.TourID = "" }, ErrInvalidInput},
		{"missing guide", func(r *Request) { r.GuideID = "" }, ErrInvalidInput},
		{"zero participants", func(r *Request) { r.NumParticipants = 0 }, ErrInvalidInput},
		{"unknown language", func(r *Request) { r.LanguageCode = "ru" }, ErrUnsupportedLanguage},
		{"missing name", func(r *Request) { r.CustomerName = "" }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.CustomerEmail = "jane example.com" }, ErrInvalidInput},
		{"missing idempotency key", func(r *Request) { r.IdempotencyKey = "" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.useCase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBookingNilCacheAndPublisher(t *testing.T) {
	f := newFixture()
	f.useCase = NewUseCase(f.tours, f.slots, f.bookings, nil, nil, fakeTxManager{}, nopLogger{})
	f.useCase.timeProvider = fixedTime{now: time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)}

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}
