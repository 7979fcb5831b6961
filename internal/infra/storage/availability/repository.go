package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/dbmetrics"
	"github.com/citystride/CST-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// bookedCountExpr считает занятые места слота по живым бронированиям.
// Слоты не хранят счетчик занятости: источник правды - таблица bookings,
// отмененные бронирования места не занимают
const bookedCountExpr = `COALESCE((
		SELECT SUM(b.num_participants)
		FROM bookings b
		WHERE b.tour_id = a.tour_id
		  AND b.guide_id = a.guide_id
		  AND b.booking_date = a.date
		  AND b.booking_time = a.time_slot
		  AND b.status <> ?
	), 0) AS booked_count`

// QueryRange получает слоты тура в диапазоне дат для гидов,
// говорящих на заданном языке. Слоты неактивных гидов не попадают
// в выдачу. Сортировка: дата, затем время
func (r *Repository) QueryRange(ctx context.Context, tourID, languageCode string, from, to time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.tour_id",
		"a.guide_id",
		"a.date",
		"a.time_slot",
		"a.base_capacity",
	).
		Column(squirrel.Expr(bookedCountExpr, domain.StatusCancelled)).
		Columns(
			"g.slug",
			"g.photo_url",
			"g.languages_spoken",
			"g.rating",
		).
		From("availability_slots a").
		Join("guides g ON g.id = a.guide_id").
		Where(squirrel.Eq{"a.tour_id": tourID}).
		Where(squirrel.Eq{"g.status": domain.GuideStatusActive}).
		Where("g.languages_spoken @> ARRAY[?]::text[]", languageCode).
		Where(squirrel.GtOrEq{"a.date": from}).
		Where(squirrel.LtOrEq{"a.date": to}).
		OrderBy("a.date ASC", "a.time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: QueryRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: QueryRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.TourID,
			&slot.GuideID,
			&slot.Date,
			&slot.TimeSlot,
			&slot.BaseCapacity,
			&slot.BookedCount,
			&slot.GuideSlug,
			&slot.GuidePhoto,
			pq.Array(&slot.GuideLanguages),
			&slot.GuideRating,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: QueryRange - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: QueryRange - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetForBooking получает слот по (тур, гид, дата, время) без данных гида.
// Внутри транзакции блокирует строку слота через FOR UPDATE:
// на этой блокировке сериализуются конкурирующие создания бронирований
func (r *Repository) GetForBooking(ctx context.Context, tourID, guideID string, date time.Time, timeSlot string) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"tour_id",
		"guide_id",
		"date",
		"time_slot",
		"base_capacity",
	).
		From("availability_slots").
		Where(squirrel.Eq{
			"tour_id":   tourID,
			"guide_id":  guideID,
			"date":      date,
			"time_slot": timeSlot,
		})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForBooking - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.AvailabilitySlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.TourID,
		&slot.GuideID,
		&slot.Date,
		&slot.TimeSlot,
		&slot.BaseCapacity,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForBooking - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}
