package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
	availabilityCache "github.com/citystride/CST-BookingService/internal/infra/cache"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
	"github.com/citystride/CST-BookingService/pkg/calendar"
)

// UseCase use case получения месячной доступности тура
type UseCase struct {
	tourRepo         TourRepository
	availabilityRepo AvailabilityRepository
	cache            AvailabilityCache
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	availabilityRepo AvailabilityRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:         tourRepo,
		availabilityRepo: availabilityRepo,
		cache:            cache,
		logger:           logger,
	}
}

// Execute выполняет use case получения месячной доступности.
// Доступность дня - сумма оставшихся мест по слотам гидов,
// говорящих на запрошенном языке. Дни без слотов в ответ не попадают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: tour=%s, lang=%s, period=%04d-%02d",
		req.TourID, req.LanguageCode, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что тур существует и активен
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("GetMonthAvailability: tour id=%s not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("GetMonthAvailability: failed to get tour id=%s: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}
	if !tour.IsActive() {
		uc.logger.Warn("GetMonthAvailability: tour id=%s is not active", req.TourID)
		return nil, ErrTourNotFound
	}

	// 3. Пробуем кэш
	cached, err := uc.cache.GetMonth(ctx, req.TourID, req.LanguageCode, req.Year, req.Month)
	if err == nil {
		uc.logger.Info("GetMonthAvailability: cache hit for tour=%s, period=%04d-%02d",
			req.TourID, req.Year, req.Month)
		return buildResponse(req, cached, true), nil
	}
	if !errors.Is(err, availabilityCache.ErrCacheMiss) && !errors.Is(err, availabilityCache.ErrCacheUnavailable) {
		uc.logger.Warn("GetMonthAvailability: cache read failed: %v", err)
	}

	// 4. Читаем слоты месяца из БД
	from, to := calendar.MonthBounds(req.Year, time.Month(req.Month))
	slots, err := uc.availabilityRepo.QueryRange(ctx, req.TourID, req.LanguageCode, from, to)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to query slots: %v", err)
		return nil, fmt.Errorf("%w: failed to query slots: %v", ErrInternal, err)
	}

	// 5. Сворачиваем слоты в агрегаты по дням
	days := domain.AggregateByDate(slots)

	// 6. Пишем в кэш, сбой кэша не мешает ответу
	if err := uc.cache.SetMonth(ctx, req.TourID, req.LanguageCode, req.Year, req.Month, days); err != nil {
		if !errors.Is(err, availabilityCache.ErrCacheUnavailable) {
			uc.logger.Warn("GetMonthAvailability: cache write failed: %v", err)
		}
	}

	uc.logger.Info("GetMonthAvailability: tour=%s, period=%04d-%02d, days with slots=%d",
		req.TourID, req.Year, req.Month, len(days))

	return buildResponse(req, days, false), nil
}

// buildResponse конвертирует доменные агрегаты в модель ответа
func buildResponse(req *Request, days map[string]domain.DateAvailability, fromCache bool) *Response {
	result := make(map[string]DayAvailability, len(days))
	for date, day := range days {
		result[date] = DayAvailability{
			Date:            day.Date,
			TotalSpots:      day.TotalSpots,
			HasAvailability: day.HasAvailability,
		}
	}

	return &Response{
		TourID:       req.TourID,
		LanguageCode: req.LanguageCode,
		Year:         req.Year,
		Month:        req.Month,
		Days:         result,
		FromCache:    fromCache,
	}
}
