// Package events публикует доменные события в RabbitMQ.
// Потребители (рассылка подтверждений, CRM, аналитика) живут вне
// этого сервиса и читают из durable очередей.
package events

// BookingConfirmedEvent публикуется после успешного создания бронирования
type BookingConfirmedEvent struct {
	BookingID       int64   `json:"booking_id"`
	TourID          string  `json:"tour_id"`
	GuideID         string  `json:"guide_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	BookingDate     string  `json:"booking_date"`
	BookingTime     string  `json:"booking_time"`
	NumParticipants int     `json:"num_participants"`
	Language        string  `json:"language"`
	Currency        string  `json:"currency"`
	TotalAmount     float64 `json:"total_amount"`
	IsB2B           bool    `json:"is_b2b"`
	ConfirmedAt     string  `json:"confirmed_at"`
}

// B2BApplicationReceivedEvent публикуется после приема заявки на партнерство
type B2BApplicationReceivedEvent struct {
	ApplicationID int64  `json:"application_id"`
	CompanyName   string `json:"company_name"`
	ContactEmail  string `json:"contact_email"`
	ReceivedAt    string `json:"received_at"`
}
