package create_wizard_session

import (
	"context"
	"time"

	"github.com/citystride/CST-BookingService/internal/api/wizardview"
	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
}

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Create(tourID string, maxGroupSize int) (*wizard.Session, error)
}

// ViewBuilder интерфейс сборки ответа сессии
type ViewBuilder interface {
	Build(ctx context.Context, session *wizard.Session, today time.Time) (*wizardview.SessionView, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

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
