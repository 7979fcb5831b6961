package create_booking

import (
	"context"
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/events"
	"github.com/citystride/CST-BookingService/pkg/types"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
}

// AvailabilityRepository интерфейс репозитория слотов доступности
type AvailabilityRepository interface {
	GetForBooking(ctx context.Context, tourID, guideID string, date time.Time, timeSlot string) (*domain.AvailabilitySlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	SumActiveParticipants(ctx context.Context, tourID, guideID string, bookingDate time.Time, bookingTime types.TimeString) (int, error)
}

// AvailabilityCache интерфейс кэша месячной доступности
type AvailabilityCache interface {
	InvalidateTour(ctx context.Context, tourID string) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
