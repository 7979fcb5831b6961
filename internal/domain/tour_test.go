package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	tour := &Tour{BasePriceGBP: 45.0}

	assert.Equal(t, 45.0, tour.TotalPrice(1))
	assert.Equal(t, 180.0, tour.TotalPrice(4))
}

func TestValidParticipants(t *testing.T) {
	tour := &Tour{MaxGroupSize: 12}

	assert.False(t, tour.ValidParticipants(0))
	assert.True(t, tour.ValidParticipants(1))
	assert.True(t, tour.ValidParticipants(12))
	assert.False(t, tour.ValidParticipants(13))
}

func TestTourIsActive(t *testing.T) {
	assert.True(t, (&Tour{Status: TourStatusActive}).IsActive())
	assert.False(t, (&Tour{Status: TourStatusInactive}).IsActive())
}

func TestKnownLanguageCode(t *testing.T) {
	for _, code := range []string{"en", "es", "fr", "it", "de", "ja", "zh"} {
		assert.True(t, KnownLanguageCode(code), code)
	}
	for _, code := range []string{"ru", "pt", "EN", "", "english"} {
		assert.False(t, KnownLanguageCode(code), code)
	}
}

func TestGuideSpeaksLanguage(t *testing.T) {
	guide := &Guide{LanguagesSpoken: []string{"en", "es"}}

	assert.True(t, guide.SpeaksLanguage("es"))
	assert.False(t, guide.SpeaksLanguage("ja"))
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}
