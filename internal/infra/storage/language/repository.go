package language

import (
	"context"
	"fmt"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/dbmetrics"
	"github.com/citystride/CST-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со справочником языков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория языков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все поддерживаемые языки, отсортированные по коду
func (r *Repository) List(ctx context.Context) ([]*domain.Language, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "name", "flag_emoji").
		From("languages").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	languages := make([]*domain.Language, 0)
	for rows.Next() {
		var lang domain.Language
		if err := rows.Scan(&lang.Code, &lang.Name, &lang.FlagEmoji); err != nil {
			return nil, fmt.Errorf("%w: List - scan language: %v", ErrScanRow, err)
		}
		languages = append(languages, &lang)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return languages, nil
}
