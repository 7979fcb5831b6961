package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystride/CST-BookingService/internal/domain"
)

func TestBuildCalendarGrid(t *testing.T) {
	today := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	avail := map[string]domain.DateAvailability{
		"2026-09-05": {Date: "2026-09-05", TotalSpots: 10, HasAvailability: true},
		"2026-09-15": {Date: "2026-09-15", TotalSpots: 10, HasAvailability: true},
		"2026-09-16": {Date: "2026-09-16", TotalSpots: 3, HasAvailability: true},
		"2026-09-17": {Date: "2026-09-17", TotalSpots: 0, HasAvailability: false},
	}

	cells := BuildCalendar(2026, time.September, today, "2026-09-15", avail)

	// Сентябрь 2026 начинается во вторник: 2 пустых ячейки + 30 дней
	require.Len(t, cells, 32)
	assert.True(t, cells[0].Blank)
	assert.True(t, cells[1].Blank)
	assert.False(t, cells[2].Blank)
	assert.Equal(t, 1, cells[2].Day)

	byDate := make(map[string]DayCell)
	for _, cell := range cells {
		if !cell.Blank {
			byDate[cell.Date] = cell
		}
	}

	// Прошедший день с доступностью: прошедшесть приоритетнее
	past := byDate["2026-09-05"]
	assert.Equal(t, DayPast, past.Status)
	assert.False(t, past.Selectable)

	// Сегодняшний день не прошедший
	assert.NotEqual(t, DayPast, byDate["2026-09-10"].Status)

	open := byDate["2026-09-15"]
	assert.Equal(t, DayAvailable, open.Status)
	assert.Equal(t, 10, open.TotalSpots)
	assert.True(t, open.Selectable)
	assert.True(t, open.Selected)

	limited := byDate["2026-09-16"]
	assert.Equal(t, DayLimited, limited.Status)
	assert.Equal(t, 3, limited.TotalSpots)
	assert.True(t, limited.Selectable)
	assert.False(t, limited.Selected)

	// Распроданный день и день без слотов выглядят одинаково
	soldOut := byDate["2026-09-17"]
	assert.Equal(t, DayUnavailable, soldOut.Status)
	assert.False(t, soldOut.Selectable)

	noSlots := byDate["2026-09-18"]
	assert.Equal(t, DayUnavailable, noSlots.Status)
	assert.False(t, noSlots.Selectable)
}

func TestBuildCalendarLimitedBoundary(t *testing.T) {
	today := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	avail := map[string]domain.DateAvailability{
		"2026-09-15": {Date: "2026-09-15", TotalSpots: domain.LimitedSpotsThreshold, HasAvailability: true},
		"2026-09-16": {Date: "2026-09-16", TotalSpots: domain.LimitedSpotsThreshold + 1, HasAvailability: true},
	}

	cells := BuildCalendar(2026, time.September, today, "", avail)

	byDate := make(map[string]DayCell)
	for _, cell := range cells {
		if !cell.Blank {
			byDate[cell.Date] = cell
		}
	}

	assert.Equal(t, DayLimited, byDate["2026-09-15"].Status)
	assert.Equal(t, DayAvailable, byDate["2026-09-16"].Status)
}

func TestBuildSlotOptions(t *testing.T) {
	slots := []SlotInfo{
		{SlotID: "slot-1", Time: "10:00", SpotsRemaining: 8, Badge: "open"},
		{SlotID: "slot-2", Time: "14:00", SpotsRemaining: 2, Badge: "limited"},
		{SlotID: "slot-3", Time: "18:00", SpotsRemaining: 0, Badge: "sold_out"},
	}

	options := BuildSlotOptions(slots, 3, "slot-1")
	require.Len(t, options, 3)

	assert.True(t, options[0].Selectable)
	assert.True(t, options[0].Selected)

	// Мест меньше, чем группа - слот остается в списке невыбираемым
	assert.False(t, options[1].Selectable)
	assert.False(t, options[1].Selected)

	assert.False(t, options[2].Selectable)
}

func TestBuildSlotOptionsExactFit(t *testing.T) {
	slots := []SlotInfo{{SlotID: "slot-1", SpotsRemaining: 3}}
	options := BuildSlotOptions(slots, 3, "")
	assert.True(t, options[0].Selectable)
}
