package wizard

import (
	"regexp"

	"github.com/citystride/CST-BookingService/internal/domain"
)

// emailPattern грубая проверка формата: непустые части вокруг @ и точка в домене
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Draft accumulates the booking selections across wizard steps.
// Данные сохраняются при движении назад и вперед; исключения -
// смена языка сбрасывает дату и слот, смена даты сбрасывает слот
type Draft struct {
	Language string // ISO-639-1 код, пусто пока не выбран
	Date     string // YYYY-MM-DD, пусто пока не выбрана

	SlotID    string // ID выбранного слота
	SlotTime  string // HH:MM, для экрана review
	GuideID   string // ID гида выбранного слота
	GuideName string // Локализованное имя гида, для экрана review

	Participants int // Количество участников, по умолчанию 1

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string // Пусто, если не указан
	SpecialRequests string // Пусто, если не указаны
}

// NewDraft returns an empty draft with the participants default
func NewDraft() Draft {
	return Draft{Participants: domain.MinParticipants}
}

// CanAdvance reports whether the wizard may move past the given step.
// Чистая функция без побочных эффектов, проверяется и на Advance,
// и при отправке
func CanAdvance(step Step, draft Draft, maxGroupSize int) bool {
	switch step {
	case StepLanguage:
		return domain.KnownLanguageCode(draft.Language)
	case StepDate:
		return draft.Date != ""
	case StepTime:
		return draft.SlotID != ""
	case StepParticipants:
		return draft.Participants >= domain.MinParticipants && draft.Participants <= maxGroupSize
	case StepDetails:
		return draft.CustomerName != "" && emailPattern.MatchString(draft.CustomerEmail)
	case StepReview:
		return true
	default:
		return false
	}
}

// clearDate сбрасывает выбранную дату и зависящий от нее слот
func (d *Draft) clearDate() {
	d.Date = ""
	d.clearSlot()
}

// clearSlot сбрасывает выбранный слот
func (d *Draft) clearSlot() {
	d.SlotID = ""
	d.SlotTime = ""
	d.GuideID = ""
	d.GuideName = ""
}
