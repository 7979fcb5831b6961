package get_month_availability

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден или неактивен
	ErrTourNotFound = errors.New("get_month_availability: tour not found")

	// ErrUnsupportedLanguage возвращается при неизвестном коде языка
	ErrUnsupportedLanguage = errors.New("get_month_availability: unsupported language")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_month_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_month_availability: internal error")
)
