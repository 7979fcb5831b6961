package wizard

// Step represents one step of the booking wizard
type Step string

const (
	StepLanguage     Step = "language"
	StepDate         Step = "date"
	StepTime         Step = "time"
	StepParticipants Step = "participants"
	StepDetails      Step = "details"
	StepReview       Step = "review"

	// StepSubmitted терминальный шаг, из него нет переходов
	StepSubmitted Step = "submitted"
)

// stepOrder строгий линейный порядок шагов мастера
var stepOrder = []Step{
	StepLanguage,
	StepDate,
	StepTime,
	StepParticipants,
	StepDetails,
	StepReview,
}

// Index returns the position of the step in the wizard, -1 for submitted
func (s Step) Index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// next возвращает следующий шаг, ok=false для review и submitted
func (s Step) next() (Step, bool) {
	idx := s.Index()
	if idx < 0 || idx >= len(stepOrder)-1 {
		return s, false
	}
	return stepOrder[idx+1], true
}

// prev возвращает предыдущий шаг, ok=false для language и submitted
func (s Step) prev() (Step, bool) {
	idx := s.Index()
	if idx <= 0 {
		return s, false
	}
	return stepOrder[idx-1], true
}
