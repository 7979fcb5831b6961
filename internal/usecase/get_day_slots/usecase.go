package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/citystride/CST-BookingService/internal/domain"
	tourRepo "github.com/citystride/CST-BookingService/internal/infra/storage/tour"
	"github.com/citystride/CST-BookingService/pkg/calendar"
)

// UseCase use case получения слотов тура на день
type UseCase struct {
	tourRepo         TourRepository
	availabilityRepo AvailabilityRepository
	guideRepo        GuideRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	availabilityRepo AvailabilityRepository,
	guideRepo GuideRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:         tourRepo,
		availabilityRepo: availabilityRepo,
		guideRepo:        guideRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов на день.
// Распроданные слоты остаются в выдаче с бейджем sold_out:
// интерфейс показывает их неактивными, а не прячет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: tour=%s, lang=%s, date=%s",
		req.TourID, req.LanguageCode, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что тур существует и активен
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("GetDaySlots: tour id=%s not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get tour id=%s: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}
	if !tour.IsActive() {
		uc.logger.Warn("GetDaySlots: tour id=%s is not active", req.TourID)
		return nil, ErrTourNotFound
	}

	// 3. Читаем слоты одного дня, репозиторий сортирует по времени
	day := calendar.Truncate(req.Date)
	slots, err := uc.availabilityRepo.QueryRange(ctx, req.TourID, req.LanguageCode, day, day)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to query slots: %v", err)
		return nil, fmt.Errorf("%w: failed to query slots: %v", ErrInternal, err)
	}

	// 4. Собираем уникальные ID гидов для перевода
	guideIDs := distinctGuideIDs(slots)

	// 5. Получаем локализованные имена гидов одним запросом
	translations, err := uc.guideRepo.GetTranslations(ctx, guideIDs, req.LanguageCode)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get guide translations: %v", err)
		return nil, fmt.Errorf("%w: failed to get guide translations: %v", ErrInternal, err)
	}

	// 6. Конвертируем в модель ответа
	options := make([]SlotOption, 0, len(slots))
	for _, slot := range slots {
		options = append(options, SlotOption{
			SlotID:         slot.ID,
			Time:           slot.TimeSlot.String(),
			GuideID:        slot.GuideID,
			GuideName:      guideName(slot, translations),
			GuidePhoto:     slot.GuidePhoto,
			GuideLanguages: slot.GuideLanguages,
			GuideRating:    slot.GuideRating,
			SpotsRemaining: slot.SpotsRemaining(),
			Badge:          string(slot.Badge()),
		})
	}

	uc.logger.Info("GetDaySlots: tour=%s, date=%s, slots=%d",
		req.TourID, day.Format(domain.DateFormat), len(options))

	return &Response{
		TourID:       req.TourID,
		LanguageCode: req.LanguageCode,
		Date:         day.Format(domain.DateFormat),
		Slots:        options,
	}, nil
}

// distinctGuideIDs собирает уникальные ID гидов, сохраняя порядок слотов
func distinctGuideIDs(slots []*domain.AvailabilitySlot) []string {
	seen := make(map[string]bool, len(slots))
	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		if seen[slot.GuideID] {
			continue
		}
		seen[slot.GuideID] = true
		ids = append(ids, slot.GuideID)
	}
	return ids
}

// guideName возвращает локализованное имя гида, при отсутствии
// перевода откатывается на slug
func guideName(slot *domain.AvailabilitySlot, translations map[string]*domain.GuideTranslation) string {
	if tr, ok := translations[slot.GuideID]; ok && tr.Name != "" {
		return tr.Name
	}
	return slot.GuideSlug
}
