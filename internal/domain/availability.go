package domain

import (
	"time"

	"github.com/citystride/CST-BookingService/pkg/types"
)

// SlotBadge represents the availability badge shown on a time slot
type SlotBadge string

const (
	BadgeSoldOut SlotBadge = "sold_out" // мест не осталось
	BadgeLimited SlotBadge = "limited"  // 1..LimitedSpotsThreshold мест
	BadgeOpen    SlotBadge = "open"     // больше LimitedSpotsThreshold мест
)

// AvailabilitySlot represents one bookable (date, time, guide) unit of capacity.
// Поля Guide* - read-model проекция: гид и слот хранятся отдельно
// и соединяются на чтении, данные гида не дублируются в таблице слотов.
type AvailabilitySlot struct {
	ID           string
	TourID       string
	GuideID      string
	Date         time.Time
	TimeSlot     types.TimeString
	BaseCapacity int
	BookedCount  int

	// Денормализованные данные гида для отображения
	GuideSlug      string
	GuidePhoto     string
	GuideLanguages []string
	GuideRating    float64
}

// SpotsRemaining returns capacity minus booked participants, never negative
func (s *AvailabilitySlot) SpotsRemaining() int {
	remaining := s.BaseCapacity - s.BookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsSoldOut returns true if no spots remain
func (s *AvailabilitySlot) IsSoldOut() bool {
	return s.SpotsRemaining() == 0
}

// Badge returns the availability badge for the slot
func (s *AvailabilitySlot) Badge() SlotBadge {
	remaining := s.SpotsRemaining()
	switch {
	case remaining == 0:
		return BadgeSoldOut
	case remaining <= LimitedSpotsThreshold:
		return BadgeLimited
	default:
		return BadgeOpen
	}
}

// CanAccommodate returns true if the slot has room for the requested group
func (s *AvailabilitySlot) CanAccommodate(participants int) bool {
	return s.SpotsRemaining() >= participants
}

// DateAvailability агрегат доступности по дню: сумма оставшихся мест
// по всем слотам дня и флаг наличия хотя бы одного свободного места.
// Производная структура, не хранится в БД.
type DateAvailability struct {
	Date            string // YYYY-MM-DD
	TotalSpots      int
	HasAvailability bool
}

// AggregateByDate сворачивает слоты в карту дата -> DateAvailability.
// Дни без слотов в карте отсутствуют - потребители трактуют
// отсутствие записи как недоступность, а не как ошибку.
func AggregateByDate(slots []*AvailabilitySlot) map[string]DateAvailability {
	result := make(map[string]DateAvailability, len(slots))

	for _, slot := range slots {
		dateStr := slot.Date.Format(DateFormat)
		remaining := slot.SpotsRemaining()

		existing, ok := result[dateStr]
		if !ok {
			result[dateStr] = DateAvailability{
				Date:            dateStr,
				TotalSpots:      remaining,
				HasAvailability: remaining > 0,
			}
			continue
		}

		existing.TotalSpots += remaining
		existing.HasAvailability = existing.HasAvailability || remaining > 0
		result[dateStr] = existing
	}

	return result
}
