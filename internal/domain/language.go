package domain

// Language represents a supported site language
// Набор языков небольшой и фиксированный: en, es, fr, it, de, ja, zh
type Language struct {
	Code      string // ISO-639-1 код
	Name      string
	FlagEmoji string
}

// KnownLanguageCode проверяет, что код входит в поддерживаемый набор
func KnownLanguageCode(code string) bool {
	switch code {
	case "en", "es", "fr", "it", "de", "ja", "zh":
		return true
	default:
		return false
	}
}
