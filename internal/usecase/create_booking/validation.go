package create_booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// emailPattern грубая проверка формата: непустые части вокруг @ и точка в домене
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TourID == "" {
		return fmt.Errorf("%w: tourID is required", ErrInvalidInput)
	}

	if req.GuideID == "" {
		return fmt.Errorf("%w: guideID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.NumParticipants < domain.MinParticipants {
		return fmt.Errorf("%w: numParticipants must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}

	if !domain.KnownLanguageCode(req.LanguageCode) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.LanguageCode)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if !emailPattern.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: invalid customerEmail", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	if req.IdempotencyKey == "" {
		return fmt.Errorf("%w: idempotencyKey is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
