package get_day_slots

import (
	"fmt"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TourID == "" {
		return fmt.Errorf("%w: tourID is required", ErrInvalidInput)
	}

	if req.LanguageCode == "" {
		return fmt.Errorf("%w: languageCode is required", ErrInvalidInput)
	}

	if !domain.KnownLanguageCode(req.LanguageCode) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.LanguageCode)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
