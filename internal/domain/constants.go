package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	// MinParticipants минимальный размер группы
	MinParticipants = 1

	// LimitedSpotsThreshold порог, ниже которого день/слот помечается
	// бейджем limited (остаток <= порога)
	LimitedSpotsThreshold = 5

	// MaxSpecialRequestsLength максимальная длина пожеланий клиента
	MaxSpecialRequestsLength = 500

	// MaxCompanyNameLength максимальная длина названия компании в B2B заявке
	MaxCompanyNameLength = 200
)

// Review listing constants
const (
	// DefaultReviewsLimit число отзывов на главной странице
	DefaultReviewsLimit = 6

	// MaxReviewsLimit верхняя граница limit в запросе отзывов
	MaxReviewsLimit = 50
)

// DefaultCurrency валюта по умолчанию, в ней хранятся базовые цены
const DefaultCurrency = "GBP"
