package submit_b2b_application

import "time"

// Request модель заявки на B2B партнерство
type Request struct {
	CompanyName  string  // Название турагентства
	ContactEmail string  // Контактный email
	ContactPhone *string // Контактный телефон (опционально)
}

// Response модель ответа с принятой заявкой
type Response struct {
	ID           int64     // ID заявки
	CompanyName  string    // Название турагентства
	ContactEmail string    // Контактный email
	Status       string    // Статус заявки, всегда pending при приеме
	CreatedAt    time.Time // Время приема
}
