package domain

import (
	"time"

	"github.com/citystride/CST-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a confirmed tour reservation
// Создается сразу в статусе confirmed: оплата и промежуточные
// статусы не моделируются
type Booking struct {
	ID                 int64
	TourID             string
	GuideID            string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      *string
	BookingDate        time.Time
	BookingTime        types.TimeString
	NumParticipants    int
	LanguagePreference string
	Currency           string
	TotalAmount        float64 // строго BasePriceGBP * NumParticipants
	SpecialRequests    *string
	IsB2B              bool
	Status             BookingStatus

	// IdempotencyKey - клиентский ключ (id сессии мастера), защищает
	// от дублей при повторной отправке после сетевой ошибки
	IdempotencyKey string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking still occupies slot capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// B2BApplicationStatus represents the review status of a partner application
type B2BApplicationStatus string

const (
	B2BStatusPending  B2BApplicationStatus = "pending"
	B2BStatusApproved B2BApplicationStatus = "approved"
	B2BStatusRejected B2BApplicationStatus = "rejected"
)

// B2BApplication represents a travel agency partnership application
type B2BApplication struct {
	ID           int64
	CompanyName  string
	ContactEmail string
	ContactPhone *string
	Status       B2BApplicationStatus
	CreatedAt    time.Time
}
