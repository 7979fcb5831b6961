package get_day_slots

import (
	daySlots "github.com/citystride/CST-BookingService/internal/usecase/get_day_slots"
)

// SlotResponse один слот дня
type SlotResponse struct {
	SlotID         string   `json:"slotId"`
	Time           string   `json:"time"`
	GuideID        string   `json:"guideId"`
	GuideName      string   `json:"guideName"`
	GuidePhoto     string   `json:"guidePhoto,omitempty"`
	GuideLanguages []string `json:"guideLanguages"`
	GuideRating    float64  `json:"guideRating"`
	SpotsRemaining int      `json:"spotsRemaining"`
	Badge          string   `json:"badge"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	TourID       string         `json:"tourId"`
	LanguageCode string         `json:"languageCode"`
	Date         string         `json:"date"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *daySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			SlotID:         slot.SlotID,
			Time:           slot.Time,
			GuideID:        slot.GuideID,
			GuideName:      slot.GuideName,
			GuidePhoto:     slot.GuidePhoto,
			GuideLanguages: slot.GuideLanguages,
			GuideRating:    slot.GuideRating,
			SpotsRemaining: slot.SpotsRemaining,
			Badge:          slot.Badge,
		})
	}

	return &DaySlotsResponse{
		TourID:       resp.TourID,
		LanguageCode: resp.LanguageCode,
		Date:         resp.Date,
		Slots:        slots,
	}
}
