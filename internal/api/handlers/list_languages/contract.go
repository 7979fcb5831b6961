package list_languages

import (
	"context"

	"github.com/citystride/CST-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListLanguages(ctx context.Context) (*models.LanguageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
