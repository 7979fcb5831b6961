package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrStepIncomplete возвращается при попытке перейти дальше
	// с незаполненным текущим шагом
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")

	// ErrSubmitRequired возвращается при Advance с шага review:
	// отправка бронирования - явное действие, не переход
	ErrSubmitRequired = errors.New("wizard: submit is explicit on review step")

	// ErrAlreadySubmitted возвращается при изменении завершенной сессии
	ErrAlreadySubmitted = errors.New("wizard: session already submitted")

	// ErrWrongStep возвращается, когда выбор не относится к текущему шагу
	ErrWrongStep = errors.New("wizard: selection does not belong to current step")

	// ErrUnknownLanguage возвращается при выборе неподдерживаемого языка
	ErrUnknownLanguage = errors.New("wizard: unknown language")

	// ErrDateNotSelectable возвращается при выборе прошедшей или недоступной даты
	ErrDateNotSelectable = errors.New("wizard: date is not selectable")

	// ErrSlotNotSelectable возвращается при выборе слота, в котором
	// не хватает мест на запрошенную группу
	ErrSlotNotSelectable = errors.New("wizard: slot is not selectable")

	// ErrSlotNotFound возвращается при выборе слота не из текущей выдачи дня
	ErrSlotNotFound = errors.New("wizard: slot not found")

	// ErrInvalidParticipants возвращается при количестве участников
	// вне диапазона 1..maxGroupSize
	ErrInvalidParticipants = errors.New("wizard: invalid participants count")

	// ErrInvalidDetails возвращается при некорректных контактных данных
	ErrInvalidDetails = errors.New("wizard: invalid contact details")
)
