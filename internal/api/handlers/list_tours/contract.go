package list_tours

import (
	"context"

	"github.com/citystride/CST-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListTours(ctx context.Context, languageCode string) (*models.TourListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
