package tour

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

// Repository репозиторий для работы с турами и их переводами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// tourColumns колонки таблицы tours в порядке сканирования
var tourColumns = []string{
	"id",
	"slug",
	"theme",
	"duration_hours",
	"base_price_gbp",
	"max_group_size",
	"image_url",
	"gallery_urls",
	"status",
}

// ListActive получает все активные туры, отсортированные по slug
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(squirrel.Eq{"status": domain.TourStatusActive}).
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

	tours := make([]*domain.Tour, 0)
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return tours, nil
}

// GetByID получает тур по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tour domain.Tour
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tour.ID,
		&tour.Slug,
		&tour.Theme,
		&tour.DurationHours,
		&tour.BasePriceGBP,
		&tour.MaxGroupSize,
		&tour.ImageURL,
		pq.Array(&tour.GalleryURLs),
		&tour.Status,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tour: %v", ErrScanRow, err)
	}

	return &tour, nil
}

// GetTranslation получает перевод тура для языка
// Отсутствие перевода - это ErrTranslationNotFound, не сбой:
// потребители откатываются на slug тура
func (r *Repository) GetTranslation(ctx context.Context, tourID, languageCode string) (*domain.TourTranslation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"tour_id",
		"language_code",
		"title",
		"description",
		"itinerary",
		"highlights",
		"meeting_point",
		"cancellation_policy",
	).
		From("tour_translations").
		Where(squirrel.Eq{"tour_id": tourID, "language_code": languageCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTranslation - build select query: %v", ErrBuildQuery, err)
	}

	var tr domain.TourTranslation
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tr.TourID,
		&tr.LanguageCode,
		&tr.Title,
		&tr.Description,
		&tr.Itinerary,
		pq.Array(&tr.Highlights),
		&tr.MeetingPoint,
		&tr.CancellationPolicy,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTranslationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTranslation - scan translation: %v", ErrScanRow, err)
	}

	return &tr, nil
}

// GetTranslations получает переводы для набора туров одним запросом
// Туры без перевода в карте отсутствуют
func (r *Repository) GetTranslations(ctx context.Context, tourIDs []string, languageCode string) (map[string]*domain.TourTranslation, error) {
	if len(tourIDs) == 0 {
		return map[string]*domain.TourTranslation{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"tour_id",
		"language_code",
		"title",
		"description",
		"itinerary",
		"highlights",
		"meeting_point",
		"cancellation_policy",
	).
		From("tour_translations").
		Where(squirrel.Eq{"tour_id": tourIDs, "language_code": languageCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTranslations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTranslations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	translations := make(map[string]*domain.TourTranslation)
	for rows.Next() {
		var tr domain.TourTranslation
		err := rows.Scan(
			&tr.TourID,
			&tr.LanguageCode,
			&tr.Title,
			&tr.Description,
			&tr.Itinerary,
			pq.Array(&tr.Highlights),
			&tr.MeetingPoint,
			&tr.CancellationPolicy,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTranslations - scan translation: %v", ErrScanRow, err)
		}
		translations[tr.TourID] = &tr
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTranslations - rows error: %v", ErrScanRow, err)
	}

	return translations, nil
}

// scanTour сканирует одну строку tours
func scanTour(rows *sql.Rows) (*domain.Tour, error) {
	var tour domain.Tour
	err := rows.Scan(
		&tour.ID,
		&tour.Slug,
		&tour.Theme,
		&tour.DurationHours,
		&tour.BasePriceGBP,
		&tour.MaxGroupSize,
		&tour.ImageURL,
		pq.Array(&tour.GalleryURLs),
		&tour.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanTour - scan row: %v", ErrScanRow, err)
	}
	return &tour, nil
}
