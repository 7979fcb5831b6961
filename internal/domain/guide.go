package domain

// GuideStatus represents the working status of a guide
type GuideStatus string

const (
	GuideStatusActive   GuideStatus = "active"
	GuideStatusInactive GuideStatus = "inactive"
)

// Guide represents a tour guide
type Guide struct {
	ID              string
	Slug            string
	PhotoURL        string
	LanguagesSpoken []string // ISO-639-1 коды языков
	Specialties     []string
	YearsExperience int
	Rating          float64 // 0.0 - 5.0, один знак после запятой
	Status          GuideStatus
}

// IsActive returns true if the guide is currently working
func (g *Guide) IsActive() bool {
	return g.Status == GuideStatusActive
}

// SpeaksLanguage returns true if the guide speaks the given language
func (g *Guide) SpeaksLanguage(code string) bool {
	for _, lang := range g.LanguagesSpoken {
		if lang == code {
			return true
		}
	}
	return false
}

// GuideTranslation localized guide content, keyed by (guide id, language code)
type GuideTranslation struct {
	GuideID      string
	LanguageCode string
	Name         string
	Bio          string
	FunFact      string
}
