package guide

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/dbmetrics"
	"github.com/citystride/CST-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с гидами и их переводами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гидов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// guideColumns колонки таблицы guides в порядке сканирования
var guideColumns = []string{
	"id",
	"slug",
	"photo_url",
	"languages_spoken",
	"specialties",
	"years_experience",
	"rating",
	"status",
}

// ListActive получает всех активных гидов, отсортированных по slug
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Guide, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guideColumns...).
		From("guides").
		Where(squirrel.Eq{"status": domain.GuideStatusActive}).
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guides := make([]*domain.Guide, 0)
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, guide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return guides, nil
}

// GetByID получает гида по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Guide, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guideColumns...).
		From("guides").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var guide domain.Guide
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&guide.ID,
		&guide.Slug,
		&guide.PhotoURL,
		pq.Array(&guide.LanguagesSpoken),
		pq.Array(&guide.Specialties),
		&guide.YearsExperience,
		&guide.Rating,
		&guide.Status,
	)

	if err == sql.ErrNoRows {
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guide: %v", ErrScanRow, err)
	}

	return &guide, nil
}

// GetTranslations получает переводы для набора гидов одним запросом
// Гиды без перевода в карте отсутствуют
func (r *Repository) GetTranslations(ctx context.Context, guideIDs []string, languageCode string) (map[string]*domain.GuideTranslation, error) {
	if len(guideIDs) == 0 {
		return map[string]*domain.GuideTranslation{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"guide_id",
		"language_code",
		"name",
		"bio",
		"fun_fact",
	).
		From("guide_translations").
		Where(squirrel.Eq{"guide_id": guideIDs, "language_code": languageCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTranslations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTranslations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	translations := make(map[string]*domain.GuideTranslation)
	for rows.Next() {
		var tr domain.GuideTranslation
		err := rows.Scan(
			&tr.GuideID,
			&tr.LanguageCode,
			&tr.Name,
			&tr.Bio,
			&tr.FunFact,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTranslations - scan translation: %v", ErrScanRow, err)
		}
		translations[tr.GuideID] = &tr
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTranslations - rows error: %v", ErrScanRow, err)
	}

	return translations, nil
}

// scanGuide сканирует одну строку guides
func scanGuide(rows *sql.Rows) (*domain.Guide, error) {
	var guide domain.Guide
	err := rows.Scan(
		&guide.ID,
		&guide.Slug,
		&guide.PhotoURL,
		pq.Array(&guide.LanguagesSpoken),
		pq.Array(&guide.Specialties),
		&guide.YearsExperience,
		&guide.Rating,
		&guide.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanGuide - scan row: %v", ErrScanRow, err)
	}
	return &guide, nil
}
