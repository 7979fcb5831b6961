package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/events"
	"github.com/citystride/CST-BookingService/internal/i18n"
	availabilityCache "github.com/citystride/CST-BookingService/internal/infra/cache"
	availabilityRepo "github.com/citystride/CST-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/citystride/CST-BookingService/internal/infra/storage/booking"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
)

// UseCase use case для создания бронирования
type UseCase struct {
	tourRepo         TourRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	cache            AvailabilityCache
	publisher        EventPublisher
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:         tourRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		cache:            cache,
		publisher:        publisher,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Вместимость слота перепроверяется внутри сериализуемой транзакции:
// остаток, который клиент видел на экране, к моменту отправки мог
// быть выкуплен. Повторная отправка с тем же ключом идемпотентности
// возвращает прежнее бронирование без побочных эффектов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tour=%s, guide=%s, date=%s, time=%s, participants=%d, lang=%s",
		req.TourID, req.GuideID, req.Date.Format(domain.DateFormat), req.Time, req.NumParticipants, req.LanguageCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем тур и проверяем размер группы
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("CreateBooking: tour id=%s not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tour id=%s: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}
	if !tour.IsActive() {
		uc.logger.Warn("CreateBooking: tour id=%s is not active", req.TourID)
		return nil, ErrTourNotFound
	}
	if !tour.ValidParticipants(req.NumParticipants) {
		uc.logger.Warn("CreateBooking: %d participants exceeds max group size %d",
			req.NumParticipants, tour.MaxGroupSize)
		return nil, fmt.Errorf("%w: max group size is %d", ErrTooManyParticipants, tour.MaxGroupSize)
	}

	var result *domain.Booking
	var alreadyExisted bool

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверка идемпотентности: повтор той же отправки
		// возвращает прежнее бронирование
		existing, err := uc.bookingRepo.GetByIdempotencyKey(txCtx, req.IdempotencyKey)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: idempotency lookup failed: %v", err)
			return fmt.Errorf("%w: idempotency lookup: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Info("CreateBooking: duplicate submission, returning booking id=%d", existing.ID)
			result = existing
			alreadyExisted = true
			return nil
		}

		// 5.2. Получаем слот с блокировкой FOR UPDATE
		slot, err := uc.availabilityRepo.GetForBooking(txCtx, req.TourID, req.GuideID, req.Date, req.Time.String())
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot not found: tour=%s, guide=%s, date=%s, time=%s",
					req.TourID, req.GuideID, req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot: %v", err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 5.3. Перепроверяем вместимость по живым бронированиям
		booked, err := uc.bookingRepo.SumActiveParticipants(txCtx, req.TourID, req.GuideID, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to sum booked participants: %v", err)
			return fmt.Errorf("%w: failed to sum booked participants: %v", ErrInternal, err)
		}

		slot.BookedCount = booked
		if !slot.CanAccommodate(req.NumParticipants) {
			uc.logger.Warn("CreateBooking: capacity conflict, %d requested, %d remaining",
				req.NumParticipants, slot.SpotsRemaining())
			return ErrCapacityConflict
		}

		// 5.4. Создаем бронирование, цена фиксируется на момент создания
		booking := &domain.Booking{
			TourID:             req.TourID,
			GuideID:            req.GuideID,
			CustomerName:       req.CustomerName,
			CustomerEmail:      req.CustomerEmail,
			CustomerPhone:      req.CustomerPhone,
			BookingDate:        req.Date,
			BookingTime:        req.Time,
			NumParticipants:    req.NumParticipants,
			LanguagePreference: req.LanguageCode,
			Currency:           i18n.CurrencyForLanguage(req.LanguageCode),
			TotalAmount:        tour.TotalPrice(req.NumParticipants),
			SpecialRequests:    req.SpecialRequests,
			IsB2B:              req.IsB2B,
			Status:             domain.StatusConfirmed,
			IdempotencyKey:     req.IdempotencyKey,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Побочные эффекты только для нового бронирования
	if !alreadyExisted {
		uc.invalidateCache(ctx, req.TourID)
		uc.publishConfirmed(ctx, result)
		uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	}

	return &Response{
		ID:              result.ID,
		TourID:          result.TourID,
		GuideID:         result.GuideID,
		BookingDate:     result.BookingDate,
		BookingTime:     result.BookingTime,
		NumParticipants: result.NumParticipants,
		Language:        result.LanguagePreference,
		Currency:        result.Currency,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		AlreadyExisted:  alreadyExisted,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// invalidateCache сбрасывает кэш доступности тура, сбой не фатален
func (uc *UseCase) invalidateCache(ctx context.Context, tourID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateTour(ctx, tourID); err != nil && !errors.Is(err, availabilityCache.ErrCacheUnavailable) {
		uc.logger.Warn("CreateBooking: cache invalidation failed for tour=%s: %v", tourID, err)
	}
}

// publishConfirmed публикует событие о бронировании, сбой не фатален
func (uc *UseCase) publishConfirmed(ctx context.Context, booking *domain.Booking) {
	if uc.publisher == nil {
		return
	}

	event := events.BookingConfirmedEvent{
		BookingID:       booking.ID,
		TourID:          booking.TourID,
		GuideID:         booking.GuideID,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		BookingDate:     booking.BookingDate.Format(domain.DateFormat),
		BookingTime:     booking.BookingTime.String(),
		NumParticipants: booking.NumParticipants,
		Language:        booking.LanguagePreference,
		Currency:        booking.Currency,
		TotalAmount:     booking.TotalAmount,
		IsB2B:           booking.IsB2B,
		ConfirmedAt:     booking.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}

	if err := uc.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}
}
