package list_guides

import (
	"context"

	"github.com/citystride/CST-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListGuides(ctx context.Context, languageCode string) (*models.GuideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
