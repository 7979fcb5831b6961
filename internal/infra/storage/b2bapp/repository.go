package b2bapp

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/dbmetrics"
	"github.com/citystride/CST-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для заявок на B2B партнерство
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку в статусе pending
func (r *Repository) Create(ctx context.Context, app *domain.B2BApplication) (*domain.B2BApplication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("b2b_applications").
		Columns(
			"company_name",
			"contact_email",
			"contact_phone",
			"status",
		).
		Values(
			app.CompanyName,
			app.ContactEmail,
			app.ContactPhone,
			app.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time

	return app, nil
}
