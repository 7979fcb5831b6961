// Package calendar чистые функции работы с календарными датами.
// Все сравнения выполняются с точностью до календарного дня,
// время суток игнорируется.
package calendar

import "time"

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// DaysInMonth возвращает число дней в месяце
func DaysInMonth(year int, month time.Month) int {
	// Нулевой день следующего месяца - это последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday возвращает день недели первого числа месяца
// Неделя начинается с воскресенья: Sunday = 0, Saturday = 6
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthDays строит сетку месяца: FirstWeekday ведущих пустых ячеек
// (нулевых time.Time) для выравнивания колонок дней недели, затем
// даты 1..DaysInMonth по порядку
func MonthDays(year int, month time.Month) []time.Time {
	leading := FirstWeekday(year, month)
	total := DaysInMonth(year, month)

	days := make([]time.Time, 0, leading+total)
	for i := 0; i < leading; i++ {
		days = append(days, time.Time{})
	}
	for day := 1; day <= total; day++ {
		days = append(days, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	}
	return days
}

// FormatDate форматирует дату как YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate парсит дату из YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// Truncate обнуляет время суток
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast проверяет, что date строго раньше today (по календарным дням)
func IsPast(date, today time.Time) bool {
	return Truncate(date).Before(Truncate(today))
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AddMonths сдвигает пару (год, месяц) на delta месяцев
// Используется для навигации по календарю, нормализация через time.Date
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	shifted := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return shifted.Year(), shifted.Month()
}

// MonthBounds возвращает первый и последний день месяца
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return first, last
}
