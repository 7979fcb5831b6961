package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/dbmetrics"
	"github.com/citystride/CST-BookingService/pkg/psqlbuilder"
	"github.com/citystride/CST-BookingService/pkg/types"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"tour_id",
	"guide_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"booking_date",
	"booking_time",
	"num_participants",
	"language_preference",
	"currency",
	"total_amount",
	"special_requests",
	"is_b2b",
	"status",
	"idempotency_key",
	"created_at",
	"updated_at",
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Вызывается только внутри сериализуемой транзакции вместе с
// проверкой вместимости слота, иначе возможен овербукинг.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"tour_id",
			"guide_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_date",
			"booking_time",
			"num_participants",
			"language_preference",
			"currency",
			"total_amount",
			"special_requests",
			"is_b2b",
			"status",
			"idempotency_key",
		).
		Values(
			booking.TourID,
			booking.GuideID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.BookingDate,
			booking.BookingTime,
			booking.NumParticipants,
			booking.LanguagePreference,
			booking.Currency,
			booking.TotalAmount,
			booking.SpecialRequests,
			booking.IsB2B,
			booking.Status,
			booking.IdempotencyKey,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByIdempotencyKey получает бронирование по ключу идемпотентности.
// Используется внутри транзакции создания для защиты от дублей
// при повторной отправке одной и той же сессии мастера
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"idempotency_key": key})

	// Блокируем строку внутри транзакции, чтобы параллельный повтор
	// той же отправки дождался результата первой
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// SumActiveParticipants считает занятые места слота: сумму участников
// всех неотмененных бронирований на (тур, гид, дата, время)
func (r *Repository) SumActiveParticipants(ctx context.Context, tourID, guideID string, bookingDate time.Time, bookingTime types.TimeString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(num_participants), 0)").
		From("bookings").
		Where(squirrel.Eq{
			"tour_id":      tourID,
			"guide_id":     guideID,
			"booking_date": bookingDate,
			"booking_time": bookingTime,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumActiveParticipants - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: SumActiveParticipants - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}

// scanBookingRow сканирует одну строку bookings из QueryRowContext
func scanBookingRow(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TourID,
		&booking.GuideID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.NumParticipants,
		&booking.LanguagePreference,
		&booking.Currency,
		&booking.TotalAmount,
		&booking.SpecialRequests,
		&booking.IsB2B,
		&booking.Status,
		&booking.IdempotencyKey,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
