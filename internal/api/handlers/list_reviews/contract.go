package list_reviews

import (
	"context"

	"github.com/citystride/CST-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListReviews(ctx context.Context, tourID string, limit int) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
