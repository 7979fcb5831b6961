package get_day_slots

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

// GuideRepository интерфейс репозитория гидов
type GuideRepository interface {
	GetTranslations(ctx context.Context, guideIDs []string, languageCode string) (map[string]*domain.GuideTranslation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
