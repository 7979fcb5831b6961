package get_day_slots

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден или неактивен
	ErrTourNotFound = errors.New("get_day_slots: tour not found")

	// ErrUnsupportedLanguage возвращается при неизвестном коде языка
	ErrUnsupportedLanguage = errors.New("get_day_slots: unsupported language")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)
