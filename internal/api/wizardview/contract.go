package wizardview

import (
	"context"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// TourReader интерфейс чтения туров для экрана review
type TourReader interface {
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	GetTranslation(ctx context.Context, tourID, languageCode string) (*domain.TourTranslation, error)
}

// PriceConverter интерфейс конвертации цен для отображения
type PriceConverter interface {
	Convert(amountGBP float64, currency string) string
}
