package review

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/dbmetrics"
	"github.com/citystride/CST-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с отзывами клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// reviewColumns колонки таблицы reviews в порядке сканирования
var reviewColumns = []string{
	"id",
	"tour_id",
	"guide_id",
	"customer_name",
	"rating",
	"language_code",
	"comment",
	"verified",
	"created_at",
}

// ListVerified получает подтвержденные отзывы, свежие первыми.
// tourID пустой - отзывы по всем турам
func (r *Repository) ListVerified(ctx context.Context, tourID string, limit int) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"verified": true}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	if tourID != "" {
		builder = builder.Where(squirrel.Eq{"tour_id": tourID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVerified - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVerified - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		err := rows.Scan(
			&rev.ID,
			&rev.TourID,
			&rev.GuideID,
			&rev.CustomerName,
			&rev.Rating,
			&rev.LanguageCode,
			&rev.Comment,
			&rev.Verified,
			&rev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListVerified - scan review: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVerified - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
