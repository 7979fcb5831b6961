package create_booking

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден или неактивен
	ErrTourNotFound = errors.New("create_booking: tour not found")

	// ErrSlotNotFound возвращается, когда слот (тур, гид, дата, время) не существует
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrCapacityConflict возвращается, когда мест в слоте меньше,
	// чем запрошено: кто-то успел забронировать между просмотром и отправкой
	ErrCapacityConflict = errors.New("create_booking: not enough spots remaining")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooManyParticipants возвращается при превышении размера группы тура
	ErrTooManyParticipants = errors.New("create_booking: group size exceeded")

	// ErrUnsupportedLanguage возвращается при неизвестном коде языка
	ErrUnsupportedLanguage = errors.New("create_booking: unsupported language")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
