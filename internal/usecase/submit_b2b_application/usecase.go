package submit_b2b_application

import (
	"context"
	"fmt"
	"strings"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/events"
)

// UseCase use case приема заявки на B2B партнерство
type UseCase struct {
	appRepo   ApplicationRepository
	publisher EventPublisher
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appRepo ApplicationRepository, publisher EventPublisher, logger Logger) *UseCase {
	return &UseCase{
		appRepo:   appRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute выполняет use case приема заявки.
// Заявка сохраняется в статусе pending, дальнейшее рассмотрение
// идет вне этого сервиса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitB2BApplication: company=%q", req.CompanyName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitB2BApplication: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем заявку
	app := &domain.B2BApplication{
		CompanyName:  strings.TrimSpace(req.CompanyName),
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Status:       domain.B2BStatusPending,
	}

	created, err := uc.appRepo.Create(ctx, app)
	if err != nil {
		uc.logger.Error("SubmitB2BApplication: failed to create application: %v", err)
		return nil, fmt.Errorf("%w: failed to create application: %v", ErrInternal, err)
	}

	// 3. Публикуем событие для CRM, сбой не фатален
	if uc.publisher != nil {
		event := events.B2BApplicationReceivedEvent{
			ApplicationID: created.ID,
			CompanyName:   created.CompanyName,
			ContactEmail:  created.ContactEmail,
			ReceivedAt:    created.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := uc.publisher.PublishB2BApplicationReceived(ctx, event); err != nil {
			uc.logger.Warn("SubmitB2BApplication: failed to publish event for application id=%d: %v", created.ID, err)
		}
	}

	uc.logger.Info("SubmitB2BApplication: accepted application id=%d", created.ID)

	return &Response{
		ID:           created.ID,
		CompanyName:  created.CompanyName,
		ContactEmail: created.ContactEmail,
		Status:       string(created.Status),
		CreatedAt:    created.CreatedAt,
	}, nil
}
