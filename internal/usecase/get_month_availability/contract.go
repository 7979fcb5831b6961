package get_month_availability

import (
	"context"
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
}

// AvailabilityRepository интерфейс репозитория слотов доступности
type AvailabilityRepository interface {
	QueryRange(ctx context.Context, tourID, languageCode string, from, to time.Time) ([]*domain.AvailabilitySlot, error)
}

// AvailabilityCache интерфейс кэша месячной доступности
type AvailabilityCache interface {
	GetMonth(ctx context.Context, tourID, languageCode string, year, month int) (map[string]domain.DateAvailability, error)
	SetMonth(ctx context.Context, tourID, languageCode string, year, month int, days map[string]domain.DateAvailability) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
