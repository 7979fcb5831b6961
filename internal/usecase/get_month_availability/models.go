package get_month_availability

// Request модель запроса месячной доступности тура
type Request struct {
	TourID       string // ID тура
	LanguageCode string // Язык проведения тура (ISO-639-1)
	Year         int    // Год, например 2026
	Month        int    // Месяц, 1..12
}

// DayAvailability агрегат доступности одного дня
type DayAvailability struct {
	Date            string // Дата в формате YYYY-MM-DD
	TotalSpots      int    // Сумма оставшихся мест по всем слотам дня
	HasAvailability bool   // Есть ли хотя бы одно свободное место
}

// Response модель ответа с доступностью по дням месяца.
// Дни без слотов в карте отсутствуют
type Response struct {
	TourID       string
	LanguageCode string
	Year         int
	Month        int
	Days         map[string]DayAvailability
	FromCache    bool // Ответ собран из кэша, не из БД
}
