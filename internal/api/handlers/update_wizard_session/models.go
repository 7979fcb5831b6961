package update_wizard_session

// ViewMonthRequest запрос загрузки календарного месяца
type ViewMonthRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// DetailsRequest контактные данные клиента
type DetailsRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// UpdateSessionRequest HTTP request model.
// Каждое поле относится к своему шагу мастера; поля применяются
// в порядке шагов, незаполненные игнорируются
type UpdateSessionRequest struct {
	Language     *string           `json:"language,omitempty"`
	ViewMonth    *ViewMonthRequest `json:"viewMonth,omitempty"`
	Date         *string           `json:"date,omitempty"`
	SlotID       *string           `json:"slotId,omitempty"`
	Participants *int              `json:"participants,omitempty"`
	Details      *DetailsRequest   `json:"details,omitempty"`
}
