package create_b2b_application

import (
	"context"

	submitB2B "github.com/citystride/CST-BookingService/internal/usecase/submit_b2b_application"
)

// SubmitB2BApplicationUseCase интерфейс приема B2B заявок
type SubmitB2BApplicationUseCase interface {
	Execute(ctx context.Context, req *submitB2B.Request) (*submitB2B.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
