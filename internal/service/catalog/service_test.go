package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/internal/i18n"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTourRepo struct {
	tours        []*domain.Tour
	translations map[string]*domain.TourTranslation
}

func (f *fakeTourRepo) ListActive(_ context.Context) ([]*domain.Tour, error) {
	return f.tours, nil
}

func (f *fakeTourRepo) GetTranslations(_ context.Context, _ []string, _ string) (map[string]*domain.TourTranslation, error) {
	return f.translations, nil
}

type fakeGuideRepo struct {
	guides       []*domain.Guide
	translations map[string]*domain.GuideTranslation
}

func (f *fakeGuideRepo) ListActive(_ context.Context) ([]*domain.Guide, error) {
	return f.guides, nil
}

func (f *fakeGuideRepo) GetTranslations(_ context.Context, _ []string, _ string) (map[string]*domain.GuideTranslation, error) {
	return f.translations, nil
}

type fakeLanguageRepo struct {
	languages []*domain.Language
}

func (f *fakeLanguageRepo) List(_ context.Context) ([]*domain.Language, error) {
	return f.languages, nil
}

type fakeReviewRepo struct {
	reviews   []*domain.Review
	lastLimit int
}

func (f *fakeReviewRepo) ListVerified(_ context.Context, _ string, limit int) ([]*domain.Review, error) {
	f.lastLimit = limit
	if limit < len(f.reviews) {
		return f.reviews[:limit], nil
	}
	return f.reviews, nil
}

func newTestService(tours *fakeTourRepo, guides *fakeGuideRepo, reviews *fakeReviewRepo) *Service {
	if tours == nil {
		tours = &fakeTourRepo{}
	}
	if guides == nil {
		guides = &fakeGuideRepo{}
	}
	if reviews == nil {
		reviews = &fakeReviewRepo{}
	}
	prices := i18n.NewPriceConverter(map[string]float64{"EUR": 1.2, "JPY": 190.0})
	return NewService(tours, guides, &fakeLanguageRepo{}, reviews, prices, nopLogger{})
}

func TestListToursTranslated(t *testing.T) {
	tours := &fakeTourRepo{
		tours: []*domain.Tour{
			{ID: "t1", Slug: "westminster-walk", BasePriceGBP: 45.0, MaxGroupSize: 12},
			{ID: "t2", Slug: "soho-food-tour", BasePriceGBP: 60.0, MaxGroupSize: 8},
		},
		translations: map[string]*domain.TourTranslation{
			"t1": {TourID: "t1", Title: "Paseo por Westminster", Description: "Un paseo clásico"},
		},
	}

	svc := newTestService(tours, nil, nil)

	resp, err := svc.ListTours(context.Background(), "es")
	require.NoError(t, err)
	require.Len(t, resp.Tours, 2)

	first := resp.Tours[0]
	assert.Equal(t, "Paseo por Westminster", first.Title)
	assert.Equal(t, 45.0, first.BasePriceGBP)
	// Цена сконвертирована в валюту локали
	assert.Equal(t, "€54.00", first.PriceDisplay)

	// Тур без перевода остается в списке со slug вместо заголовка
	second := resp.Tours[1]
	assert.Equal(t, "soho-food-tour", second.Title)
	assert.Empty(t, second.Description)
}

func TestListToursUnsupportedLanguage(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.ListTours(context.Background(), "ru")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestListGuidesFallbackToSlug(t *testing.T) {
	guides := &fakeGuideRepo{
		guides: []*domain.Guide{
			{ID: "g1", Slug: "amelia-hart", LanguagesSpoken: []string{"en", "es"}, Rating: 4.9},
			{ID: "g2", Slug: "tom-finch", LanguagesSpoken: []string{"en"}, Rating: 4.7},
		},
		translations: map[string]*domain.GuideTranslation{
			"g1": {GuideID: "g1", Name: "Amelia", Bio: "Historiadora londinense"},
		},
	}

	svc := newTestService(nil, guides, nil)

	resp, err := svc.ListGuides(context.Background(), "es")
	require.NoError(t, err)
	require.Len(t, resp.Guides, 2)

	assert.Equal(t, "Amelia", resp.Guides[0].Name)
	assert.Equal(t, "tom-finch", resp.Guides[1].Name)
	assert.Empty(t, resp.Guides[1].Bio)
}

func TestListReviewsLimitClamping(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := newTestService(nil, nil, reviews)

	// limit <= 0 заменяется дефолтом
	_, err := svc.ListReviews(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReviewsLimit, reviews.lastLimit)

	// Верхняя граница ограничивается
	_, err = svc.ListReviews(context.Background(), "", 500)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxReviewsLimit, reviews.lastLimit)

	_, err = svc.ListReviews(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, reviews.lastLimit)
}
