package submit_wizard_session

import (
	"context"

	createBooking "github.com/citystride/CST-BookingService/internal/usecase/create_booking"
	"github.com/citystride/CST-BookingService/internal/wizard"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Get(id string) (*wizard.Session, error)
}

// CreateBookingUseCase интерфейс создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
