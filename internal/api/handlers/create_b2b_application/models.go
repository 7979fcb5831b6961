package create_b2b_application

import (
	"time"

	submitB2B "github.com/citystride/CST-BookingService/internal/usecase/submit_b2b_application"
)

// CreateB2BApplicationRequest HTTP request model
type CreateB2BApplicationRequest struct {
	CompanyName  string  `json:"companyName"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone,omitempty"`
}

// B2BApplicationResponse HTTP response model
type B2BApplicationResponse struct {
	ApplicationID int64  `json:"applicationId"`
	CompanyName   string `json:"companyName"`
	ContactEmail  string `json:"contactEmail"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateB2BApplicationRequest) ToUseCaseRequest() *submitB2B.Request {
	return &submitB2B.Request{
		CompanyName:  r.CompanyName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitB2B.Response) *B2BApplicationResponse {
	return &B2BApplicationResponse{
		ApplicationID: resp.ID,
		CompanyName:   resp.CompanyName,
		ContactEmail:  resp.ContactEmail,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
