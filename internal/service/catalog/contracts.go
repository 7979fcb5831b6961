package catalog

import (
	"context"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	ListActive(ctx context.Context) ([]*domain.Tour, error)
	GetTranslations(ctx context.Context, tourIDs []string, languageCode string) (map[string]*domain.TourTranslation, error)
}

// GuideRepository интерфейс репозитория гидов
type GuideRepository interface {
	ListActive(ctx context.Context) ([]*domain.Guide, error)
	GetTranslations(ctx context.Context, guideIDs []string, languageCode string) (map[string]*domain.GuideTranslation, error)
}

// LanguageRepository интерфейс репозитория языков
type LanguageRepository interface {
	List(ctx context.Context) ([]*domain.Language, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	ListVerified(ctx context.Context, tourID string, limit int) ([]*domain.Review, error)
}

// PriceConverter интерфейс конвертации цен для отображения
type PriceConverter interface {
	Convert(amountGBP float64, currency string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
