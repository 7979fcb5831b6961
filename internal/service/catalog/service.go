package catalog

import (
	"context"
	"fmt"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/i18n"
	"github.com/citystride/CST-BookingService/internal/service/catalog/models"
)

// Service сервис каталога: туры, гиды, языки и отзывы для витрины
type Service struct {
	tourRepo     TourRepository
	guideRepo    GuideRepository
	languageRepo LanguageRepository
	reviewRepo   ReviewRepository
	prices       PriceConverter
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	tourRepo TourRepository,
	guideRepo GuideRepository,
	languageRepo LanguageRepository,
	reviewRepo ReviewRepository,
	prices PriceConverter,
	logger Logger,
) *Service {
	return &Service{
		tourRepo:     tourRepo,
		guideRepo:    guideRepo,
		languageRepo: languageRepo,
		reviewRepo:   reviewRepo,
		prices:       prices,
		logger:       logger,
	}
}

// ListTours получает активные туры с контентом на запрошенном языке.
// Тур без перевода остается в списке со slug вместо заголовка
func (s *Service) ListTours(ctx context.Context, languageCode string) (*models.TourListResponse, error) {
	s.logger.Info("ListTours: lang=%s", languageCode)

	if !domain.KnownLanguageCode(languageCode) {
		s.logger.Warn("ListTours: unsupported language %q", languageCode)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, languageCode)
	}

	tours, err := s.tourRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListTours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTours - repository error: %v", ErrInternal, err)
	}

	tourIDs := make([]string, 0, len(tours))
	for _, tour := range tours {
		tourIDs = append(tourIDs, tour.ID)
	}

	translations, err := s.tourRepo.GetTranslations(ctx, tourIDs, languageCode)
	if err != nil {
		s.logger.Error("ListTours: translations error: %v", err)
		return nil, fmt.Errorf("%w: ListTours - translations error: %v", ErrInternal, err)
	}

	currency := i18n.CurrencyForLanguage(languageCode)

	result := make([]models.TourResponse, 0, len(tours))
	for _, tour := range tours {
		resp := models.TourResponse{
			ID:            tour.ID,
			Slug:          tour.Slug,
			Theme:         tour.Theme,
			Title:         tour.Slug,
			DurationHours: tour.DurationHours,
			BasePriceGBP:  tour.BasePriceGBP,
			PriceDisplay:  s.prices.Convert(tour.BasePriceGBP, currency),
			MaxGroupSize:  tour.MaxGroupSize,
			ImageURL:      tour.ImageURL,
		}
		if tr, ok := translations[tour.ID]; ok {
			resp.Title = tr.Title
			resp.Description = tr.Description
			resp.Highlights = tr.Highlights
			resp.MeetingPoint = tr.MeetingPoint
		}
		result = append(result, resp)
	}

	s.logger.Info("ListTours: returned %d tours", len(result))
	return &models.TourListResponse{Tours: result}, nil
}

// ListGuides получает активных гидов с контентом на запрошенном языке
func (s *Service) ListGuides(ctx context.Context, languageCode string) (*models.GuideListResponse, error) {
	s.logger.Info("ListGuides: lang=%s", languageCode)

	if !domain.KnownLanguageCode(languageCode) {
		s.logger.Warn("ListGuides: unsupported language %q", languageCode)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, languageCode)
	}

	guides, err := s.guideRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListGuides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGuides - repository error: %v", ErrInternal, err)
	}

	guideIDs := make([]string, 0, len(guides))
	for _, guide := range guides {
		guideIDs = append(guideIDs, guide.ID)
	}

	translations, err := s.guideRepo.GetTranslations(ctx, guideIDs, languageCode)
	if err != nil {
		s.logger.Error("ListGuides: translations error: %v", err)
		return nil, fmt.Errorf("%w: ListGuides - translations error: %v", ErrInternal, err)
	}

	result := make([]models.GuideResponse, 0, len(guides))
	for _, guide := range guides {
		resp := models.GuideResponse{
			ID:              guide.ID,
			Slug:            guide.Slug,
			Name:            guide.Slug,
			PhotoURL:        guide.PhotoURL,
			Languages:       guide.LanguagesSpoken,
			Specialties:     guide.Specialties,
			YearsExperience: guide.YearsExperience,
			Rating:          guide.Rating,
		}
		if tr, ok := translations[guide.ID]; ok {
			resp.Name = tr.Name
			resp.Bio = tr.Bio
			resp.FunFact = tr.FunFact
		}
		result = append(result, resp)
	}

	s.logger.Info("ListGuides: returned %d guides", len(result))
	return &models.GuideListResponse{Guides: result}, nil
}

// ListLanguages получает поддерживаемые языки, отсортированные по коду
func (s *Service) ListLanguages(ctx context.Context) (*models.LanguageListResponse, error) {
	languages, err := s.languageRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListLanguages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLanguages - repository error: %v", ErrInternal, err)
	}

	result := make([]models.LanguageResponse, 0, len(languages))
	for _, lang := range languages {
		result = append(result, models.FromDomainLanguage(lang))
	}

	return &models.LanguageListResponse{Languages: result}, nil
}

// ListReviews получает подтвержденные отзывы, свежие первыми.
// limit <= 0 заменяется дефолтом, верхняя граница ограничивается
func (s *Service) ListReviews(ctx context.Context, tourID string, limit int) (*models.ReviewListResponse, error) {
	if limit <= 0 {
		limit = domain.DefaultReviewsLimit
	}
	if limit > domain.MaxReviewsLimit {
		limit = domain.MaxReviewsLimit
	}

	reviews, err := s.reviewRepo.ListVerified(ctx, tourID, limit)
	if err != nil {
		s.logger.Error("ListReviews: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReviews - repository error: %v", ErrInternal, err)
	}

	result := make([]models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, models.FromDomainReview(review))
	}

	s.logger.Info("ListReviews: returned %d reviews", len(result))
	return &models.ReviewListResponse{Reviews: result}, nil
}
