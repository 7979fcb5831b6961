package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:30", false},
		{"valid midnight", "00:00", false},
		{"valid evening", "23:59", false},
		{"missing leading zero", "9:30", true},
		{"with seconds", "09:30:00", true},
		{"out of range", "24:00", true},
		{"empty", "", true},
		{"garbage", "morning", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.September, 15, 14, 5, 33, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestTimeStringComparison(t *testing.T) {
	morning := TimeString("09:00")
	evening := TimeString("18:30")

	assert.True(t, morning.IsBefore(evening))
	assert.False(t, evening.IsBefore(morning))
	assert.True(t, evening.IsAfter(morning))
	assert.False(t, morning.IsBefore(morning))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", shifted.String())

	// Переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, "10:30", ts.String())

	// Драйвер может вернуть TIME с секундами
	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, time.January, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
