package submit_b2b_application

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// emailPattern грубая проверка формата: непустые части вокруг @ и точка в домене
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные заявки
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CompanyName) == "" {
		return fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}

	if len(req.CompanyName) > domain.MaxCompanyNameLength {
		return fmt.Errorf("%w: companyName exceeds %d characters", ErrInvalidInput, domain.MaxCompanyNameLength)
	}

	if !emailPattern.MatchString(req.ContactEmail) {
		return fmt.Errorf("%w: invalid contactEmail", ErrInvalidInput)
	}

	return nil
}
