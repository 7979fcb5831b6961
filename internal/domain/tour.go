package domain

// TourStatus represents the publication status of a tour
type TourStatus string

const (
	TourStatusActive   TourStatus = "active"
	TourStatusInactive TourStatus = "inactive"
)

// Tour represents a guided city tour offered on the site
type Tour struct {
	ID            string
	Slug          string
	Theme         string
	DurationHours float64
	BasePriceGBP  float64 // Базовая цена за человека в GBP
	MaxGroupSize  int
	ImageURL      string
	GalleryURLs   []string
	Status        TourStatus
}

// IsActive returns true if the tour is visible and bookable
func (t *Tour) IsActive() bool {
	return t.Status == TourStatusActive
}

// TotalPrice returns the exact total for the given number of participants
// Скидки и налоги не моделируются: строго цена за человека * количество
func (t *Tour) TotalPrice(participants int) float64 {
	return t.BasePriceGBP * float64(participants)
}

// ValidParticipants returns true if the group size fits the tour
func (t *Tour) ValidParticipants(count int) bool {
	return count >= MinParticipants && count <= t.MaxGroupSize
}

// TourTranslation localized tour content, keyed by (tour id, language code)
// Отсутствие перевода допустимо - потребители откатываются на slug
type TourTranslation struct {
	TourID             string
	LanguageCode       string
	Title              string
	Description        string
	Itinerary          string
	Highlights         []string
	MeetingPoint       string
	CancellationPolicy string
}
