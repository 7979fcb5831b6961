package submit_b2b_application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/events"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppRepo struct {
	created *domain.B2BApplication
}

func (f *fakeAppRepo) Create(_ context.Context, app *domain.B2BApplication) (*domain.B2BApplication, error) {
	created := *app
	created.ID = 42
	created.CreatedAt = time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

type fakePublisher struct {
	published []events.B2BApplicationReceivedEvent
}

func (f *fakePublisher) PublishB2BApplicationReceived(_ context.Context, event events.B2BApplicationReceivedEvent) error {
	f.published = append(f.published, event)
	return nil
}

func TestSubmitB2BApplication(t *testing.T) {
	repo := &fakeAppRepo{}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyName:  "  Wanderlust Travel Ltd  ",
		ContactEmail: "partners@wanderlust.example",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Wanderlust Travel Ltd", resp.CompanyName)
	assert.Equal(t, "pending", resp.Status)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, int64(42), publisher.published[0].ApplicationID)
}

func TestSubmitB2BApplicationValidation(t *testing.T) {
	uc := NewUseCase(&fakeAppRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CompanyName: "   ", ContactEmail: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		CompanyName:  strings.Repeat("x", domain.MaxCompanyNameLength+1),
		ContactEmail: "a@b.c",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CompanyName: "Acme", ContactEmail: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmitB2BApplicationWithoutPublisher(t *testing.T) {
	uc := NewUseCase(&fakeAppRepo{}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyName:  "Acme Tours",
		ContactEmail: "acme@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}
