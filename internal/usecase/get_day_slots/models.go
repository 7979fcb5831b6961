package get_day_slots

import "time"

// Request модель запроса слотов на день
type Request struct {
	TourID       string    // ID тура
	LanguageCode string    // Язык проведения тура (ISO-639-1)
	Date         time.Time // Дата без времени
}

// SlotOption один слот дня с данными гида для отображения
type SlotOption struct {
	SlotID         string   // ID слота
	Time           string   // Время начала в формате HH:MM
	GuideID        string   // ID гида
	GuideName      string   // Локализованное имя, либо slug при отсутствии перевода
	GuidePhoto     string   // URL фотографии гида
	GuideLanguages []string // Языки гида
	GuideRating    float64  // Рейтинг гида
	SpotsRemaining int      // Оставшиеся места
	Badge          string   // sold_out | limited | open
}

// Response модель ответа со слотами дня.
// Слоты отсортированы по времени начала
type Response struct {
	TourID       string
	LanguageCode string
	Date         string // YYYY-MM-DD
	Slots        []SlotOption
}
