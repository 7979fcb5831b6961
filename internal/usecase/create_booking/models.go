package create_booking

import (
	"time"

	"github.com/citystride/CST-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TourID          string           // ID тура
	GuideID         string           // ID гида
	Date            time.Time        // Дата тура (без времени)
	Time            types.TimeString // Время начала слота, например "10:00"
	NumParticipants int              // Количество участников
	LanguageCode    string           // Язык проведения тура (ISO-639-1)
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента
	CustomerPhone   *string          // Телефон клиента (опционально)
	SpecialRequests *string          // Особые пожелания (опционально)
	IsB2B           bool             // Бронирование от турагентства

	// IdempotencyKey - ключ идемпотентности (id сессии мастера).
	// Повторная отправка с тем же ключом возвращает прежнее бронирование
	IdempotencyKey string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	TourID          string           // ID тура
	GuideID         string           // ID гида
	BookingDate     time.Time        // Дата тура
	BookingTime     types.TimeString // Время начала
	NumParticipants int              // Количество участников
	Language        string           // Язык проведения
	Currency        string           // Валюта, выведенная из языка
	TotalAmount     float64          // Итоговая сумма в GBP
	Status          string           // Статус бронирования
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента

	// AlreadyExisted - бронирование не создано сейчас, а найдено
	// по ключу идемпотентности
	AlreadyExisted bool

	CreatedAt time.Time // Время создания
}
