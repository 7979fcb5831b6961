package update_wizard_session

import (
	"context"
	"time"

	"github.com/citystride/CST-BookingService/internal/api/wizardview"
	daySlots "github.com/citystride/CST-BookingService/internal/usecase/get_day_slots"
	monthAvailability "github.com/citystride/CST-BookingService/internal/usecase/get_month_availability"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Get(id string) (*wizard.Session, error)
}

// ViewBuilder интерфейс сборки ответа сессии
type ViewBuilder interface {
	Build(ctx context.Context, session *wizard.Session, today time.Time) (*wizardview.SessionView, error)
}

// GetMonthAvailabilityUseCase интерфейс загрузки месячной доступности
type GetMonthAvailabilityUseCase interface {
	Execute(ctx context.Context, req *monthAvailability.Request) (*monthAvailability.Response, error)
}

// GetDaySlotsUseCase интерфейс загрузки слотов дня
type GetDaySlotsUseCase interface {
	Execute(ctx context.Context, req *daySlots.Request) (*daySlots.Response, error)
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
