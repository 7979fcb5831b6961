package submit_b2b_application

import (
	"context"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/events"
)

// ApplicationRepository интерфейс репозитория B2B заявок
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.B2BApplication) (*domain.B2BApplication, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishB2BApplicationReceived(ctx context.Context, event events.B2BApplicationReceivedEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
