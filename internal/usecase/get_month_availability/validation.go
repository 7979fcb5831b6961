package get_month_availability

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

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be in range 1..12", ErrInvalidInput)
	}

	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}

	return nil
}
