package domain

import "time"

// Review represents a customer review of a tour
type Review struct {
	ID           string
	TourID       string
	GuideID      string
	CustomerName string
	Rating       int // 1..5
	LanguageCode string
	Comment      string
	Verified     bool
	CreatedAt    time.Time
}
