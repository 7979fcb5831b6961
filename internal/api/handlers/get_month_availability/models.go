package get_month_availability

import (
	monthAvailability "github.com/citystride/CST-BookingService/internal/usecase/get_month_availability"
)

// DayAvailabilityResponse агрегат доступности одного дня
type DayAvailabilityResponse struct {
	Date            string `json:"date"`
	TotalSpots      int    `json:"totalSpots"`
	HasAvailability bool   `json:"hasAvailability"`
}

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	TourID       string                             `json:"tourId"`
	LanguageCode string                             `json:"languageCode"`
	Year         int                                `json:"year"`
	Month        int                                `json:"month"`
	Days         map[string]DayAvailabilityResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *monthAvailability.Response) *MonthAvailabilityResponse {
	days := make(map[string]DayAvailabilityResponse, len(resp.Days))
	for date, day := range resp.Days {
		days[date] = DayAvailabilityResponse{
			Date:            day.Date,
			TotalSpots:      day.TotalSpots,
			HasAvailability: day.HasAvailability,
		}
	}

	return &MonthAvailabilityResponse{
		TourID:       resp.TourID,
		LanguageCode: resp.LanguageCode,
		Year:         resp.Year,
		Month:        resp.Month,
		Days:         days,
	}
}
