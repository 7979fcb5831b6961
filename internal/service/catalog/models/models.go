package models

import (
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// TourResponse тур с локализованным контентом.
// При отсутствии перевода Title откатывается на slug
type TourResponse struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Theme         string   `json:"theme"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	MeetingPoint  string   `json:"meetingPoint,omitempty"`
	DurationHours float64  `json:"durationHours"`
	BasePriceGBP  float64  `json:"basePriceGbp"`
	PriceDisplay  string   `json:"priceDisplay"`
	MaxGroupSize  int      `json:"maxGroupSize"`
	ImageURL      string   `json:"imageUrl"`
}

// TourListResponse список туров
type TourListResponse struct {
	Tours []TourResponse `json:"tours"`
}

// GuideResponse гид с локализованным контентом
type GuideResponse struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio,omitempty"`
	FunFact         string   `json:"funFact,omitempty"`
	PhotoURL        string   `json:"photoUrl"`
	Languages       []string `json:"languages"`
	Specialties     []string `json:"specialties"`
	YearsExperience int      `json:"yearsExperience"`
	Rating          float64  `json:"rating"`
}

// GuideListResponse список гидов
type GuideListResponse struct {
	Guides []GuideResponse `json:"guides"`
}

// LanguageResponse поддерживаемый язык сайта
type LanguageResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	FlagEmoji string `json:"flagEmoji"`
}

// LanguageListResponse список языков, отсортированный по коду
type LanguageListResponse struct {
	Languages []LanguageResponse `json:"languages"`
}

// ReviewResponse отзыв клиента
type ReviewResponse struct {
	ID           string    `json:"id"`
	TourID       string    `json:"tourId"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	LanguageCode string    `json:"languageCode"`
	Comment      string    `json:"comment"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReviewListResponse список отзывов, свежие первыми
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomainLanguage конвертирует доменный язык в response
func FromDomainLanguage(lang *domain.Language) LanguageResponse {
	return LanguageResponse{
		Code:      lang.Code,
		Name:      lang.Name,
		FlagEmoji: lang.FlagEmoji,
	}
}

// FromDomainReview конвертирует доменный отзыв в response
func FromDomainReview(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		TourID:       review.TourID,
		CustomerName: review.CustomerName,
		Rating:       review.Rating,
		LanguageCode: review.LanguageCode,
		Comment:      review.Comment,
		Verified:     review.Verified,
		CreatedAt:    review.CreatedAt,
	}
}
