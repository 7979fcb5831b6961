package wizardview

// DraftView черновик бронирования в ответе сессии
type DraftView struct {
	Language        string `json:"language,omitempty"`
	Date            string `json:"date,omitempty"`
	SlotID          string `json:"slotId,omitempty"`
	SlotTime        string `json:"slotTime,omitempty"`
	GuideID         string `json:"guideId,omitempty"`
	GuideName       string `json:"guideName,omitempty"`
	Participants    int    `json:"participants"`
	CustomerName    string `json:"customerName,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// DayCellView ячейка календарной сетки
type DayCellView struct {
	Blank      bool   `json:"blank,omitempty"`
	Day        int    `json:"day,omitempty"`
	Date       string `json:"date,omitempty"`
	Status     string `json:"status,omitempty"`
	TotalSpots int    `json:"totalSpots,omitempty"`
	Selectable bool   `json:"selectable"`
	Selected   bool   `json:"selected,omitempty"`
}

// CalendarView календарная сетка загруженного месяца
type CalendarView struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	MonthName string        `json:"monthName"`
	Days      []DayCellView `json:"days"`
}

// SlotOptionView слот дня с признаком выбираемости
type SlotOptionView struct {
	SlotID         string  `json:"slotId"`
	Time           string  `json:"time"`
	GuideID        string  `json:"guideId"`
	GuideName      string  `json:"guideName"`
	GuidePhoto     string  `json:"guidePhoto,omitempty"`
	GuideRating    float64 `json:"guideRating"`
	SpotsRemaining int     `json:"spotsRemaining"`
	Badge          string  `json:"badge"`
	Selectable     bool    `json:"selectable"`
	Selected       bool    `json:"selected,omitempty"`
}

// ReviewView сводка бронирования для шага review.
// Дата и время локализованы под выбранный язык, сумма показана
// в валюте языка рядом с точной суммой в GBP
type ReviewView struct {
	TourTitle     string  `json:"tourTitle"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	GuideName     string  `json:"guideName"`
	Participants  int     `json:"participants"`
	TotalGBP      float64 `json:"totalGbp"`
	Currency      string  `json:"currency"`
	TotalDisplay  string  `json:"totalDisplay"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
}

// SessionView ответ всех операций с сессией мастера
type SessionView struct {
	SessionID  string           `json:"sessionId"`
	TourID     string           `json:"tourId"`
	Step       string           `json:"step"`
	Draft      DraftView        `json:"draft"`
	CanAdvance bool             `json:"canAdvance"`
	Calendar   *CalendarView    `json:"calendar,omitempty"`
	Slots      []SlotOptionView `json:"slots,omitempty"`
	Review     *ReviewView      `json:"review,omitempty"`
}
