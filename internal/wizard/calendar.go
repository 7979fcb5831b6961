package wizard

import (
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/calendar"
)

// DayStatus represents the display status of a calendar cell
type DayStatus string

const (
	DayPast        DayStatus = "past"        // день раньше сегодняшнего
	DayUnavailable DayStatus = "unavailable" // нет слотов или нет свободных мест
	DayLimited     DayStatus = "limited"     // 1..LimitedSpotsThreshold мест суммарно
	DayAvailable   DayStatus = "available"   // больше LimitedSpotsThreshold мест
)

// DayCell одна ячейка календарной сетки.
// Blank - ведущая пустая ячейка до первого числа месяца
type DayCell struct {
	Blank      bool
	Day        int    // Число месяца, 0 для пустой ячейки
	Date       string // YYYY-MM-DD, пусто для пустой ячейки
	Status     DayStatus
	TotalSpots int
	Selectable bool
	Selected   bool
}

// BuildCalendar строит сетку месяца: ведущие пустые ячейки по дню
// недели первого числа (воскресенье = 0), затем дни 1..n.
// Прошедшесть сравнивается по календарным дням и имеет приоритет
// над доступностью
func BuildCalendar(year int, month time.Month, today time.Time, selected string, avail map[string]domain.DateAvailability) []DayCell {
	days := calendar.MonthDays(year, month)
	cells := make([]DayCell, 0, len(days))

	for _, day := range days {
		if day.IsZero() {
			cells = append(cells, DayCell{Blank: true})
			continue
		}

		date := calendar.FormatDate(day)
		cell := DayCell{
			Day:      day.Day(),
			Date:     date,
			Selected: date == selected,
		}

		dayAvail, ok := avail[date]
		switch {
		case calendar.IsPast(day, today):
			cell.Status = DayPast
		case !ok || !dayAvail.HasAvailability:
			cell.Status = DayUnavailable
		case dayAvail.TotalSpots <= domain.LimitedSpotsThreshold:
			cell.Status = DayLimited
			cell.TotalSpots = dayAvail.TotalSpots
		default:
			cell.Status = DayAvailable
			cell.TotalSpots = dayAvail.TotalSpots
		}

		cell.Selectable = cell.Status == DayLimited || cell.Status == DayAvailable
		cells = append(cells, cell)
	}

	return cells
}
