package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/citystride/CST-BookingService/pkg/types"
)

func TestCurrencyForLanguage(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"en", "GBP"},
		{"es", "EUR"},
		{"fr", "EUR"},
		{"it", "EUR"},
		{"de", "EUR"},
		{"ja", "JPY"},
		{"zh", "CNY"},
		{"unknown", "GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrencyForLanguage(tt.language))
		})
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "September", NewLocaleContext("en").MonthName(time.September))
	assert.Equal(t, "septiembre", NewLocaleContext("es").MonthName(time.September))
	assert.Equal(t, "9月", NewLocaleContext("ja").MonthName(time.September))
	// Неизвестная локаль откатывается на английский
	assert.Equal(t, "September", NewLocaleContext("xx").MonthName(time.September))
}

func TestDayName(t *testing.T) {
	lc := NewLocaleContext("de")
	assert.Equal(t, "So", lc.DayName(0))
	assert.Equal(t, "Sa", lc.DayName(6))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		language string
		want     string
	}{
		{"en", "September 15, 2026"},
		{"fr", "15 septembre 2026"},
		{"de", "15 September 2026"},
		{"ja", "2026年9月15日"},
		{"zh", "2026年九月15日"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLocaleContext(tt.language).FormatDate(date))
		})
	}
}

func TestFormatTime(t *testing.T) {
	ts := types.TimeString("14:30")

	// 12-часовой формат только для английской локали
	assert.Equal(t, "02:30 PM", NewLocaleContext("en").FormatTime(ts))
	assert.Equal(t, "14:30", NewLocaleContext("fr").FormatTime(ts))
	assert.Equal(t, "10:00 AM", NewLocaleContext("en").FormatTime(types.TimeString("10:00")))
}

func TestPriceConverter(t *testing.T) {
	converter := NewPriceConverter(map[string]float64{
		"EUR": 1.17,
		"JPY": 195.0,
		"CNY": 9.2,
	})

	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"gbp base", 45.0, "GBP", "£45.00"},
		{"eur converted", 45.0, "EUR", "€52.65"},
		{"jpy no decimals", 45.0, "JPY", "¥8775"},
		{"cny no decimals", 50.0, "CNY", "¥460"},
		{"unknown falls back to gbp", 45.0, "CHF", "£45.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, converter.Convert(tt.amount, tt.currency))
		})
	}
}

func TestPriceConverterAlwaysHasGBP(t *testing.T) {
	// GBP работает даже без курсов в конфигурации
	converter := NewPriceConverter(nil)
	assert.Equal(t, "£10.00", converter.Convert(10.0, "GBP"))
}
