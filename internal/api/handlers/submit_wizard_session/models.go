package submit_wizard_session

import (
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
	createBooking "github.com/citystride/CST-BookingService/internal/usecase/create_booking"
	"github.com/citystride/CST-BookingService/internal/wizard"
	"github.com/citystride/CST-BookingService/pkg/calendar"
	"github.com/citystride/CST-BookingService/pkg/types"
)

// SubmitRequest HTTP request model.
// IsB2B помечает бронирование от турагентства
type SubmitRequest struct {
	IsB2B bool `json:"isB2b,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID       int64   `json:"bookingId"`
	TourID          string  `json:"tourId"`
	GuideID         string  `json:"guideId"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	NumParticipants int     `json:"numParticipants"`
	Language        string  `json:"language"`
	Currency        string  `json:"currency"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	AlreadyExisted  bool    `json:"alreadyExisted,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// toUseCaseRequest собирает запрос use case из черновика сессии
func toUseCaseRequest(draft wizard.Draft, tourID, idempotencyKey string, isB2B bool) (*createBooking.Request, error) {
	date, err := calendar.ParseDate(draft.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(draft.SlotTime)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		TourID:          tourID,
		GuideID:         draft.GuideID,
		Date:            date,
		Time:            slotTime,
		NumParticipants: draft.Participants,
		LanguageCode:    draft.Language,
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		IsB2B:           isB2B,
		IdempotencyKey:  idempotencyKey,
	}
	if draft.CustomerPhone != "" {
		phone := draft.CustomerPhone
		req.CustomerPhone = &phone
	}
	if draft.SpecialRequests != "" {
		requests := draft.SpecialRequests
		req.SpecialRequests = &requests
	}

	return req, nil
}

// fromUseCaseResponse конвертирует ответ use case в HTTP response
func fromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:       resp.ID,
		TourID:          resp.TourID,
		GuideID:         resp.GuideID,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		Time:            resp.BookingTime.String(),
		NumParticipants: resp.NumParticipants,
		Language:        resp.Language,
		Currency:        resp.Currency,
		TotalAmount:     resp.TotalAmount,
		Status:          resp.Status,
		AlreadyExisted:  resp.AlreadyExisted,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
