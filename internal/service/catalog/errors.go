package catalog

import "errors"

var (
	// ErrUnsupportedLanguage возвращается при неизвестном коде языка
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
