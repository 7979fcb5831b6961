package wizard

// SlotInfo один слот дня, как его хранит сессия мастера.
// Заполняется из выдачи get_day_slots через ApplyDaySlots
type SlotInfo struct {
	SlotID         string
	Time           string // HH:MM
	GuideID        string
	GuideName      string
	GuidePhoto     string
	GuideRating    float64
	SpotsRemaining int
	Badge          string // sold_out | limited | open
}

// SlotOption слот с признаком выбираемости для конкретной группы
type SlotOption struct {
	SlotInfo
	Selectable bool
	Selected   bool
}

// BuildSlotOptions размечает слоты дня выбираемостью: слот выбираем,
// когда оставшихся мест хватает на запрошенную группу. Распроданные
// и тесные слоты остаются в списке невыбираемыми
func BuildSlotOptions(slots []SlotInfo, requestedParticipants int, selectedSlotID string) []SlotOption {
	options := make([]SlotOption, 0, len(slots))
	for _, slot := range slots {
		options = append(options, SlotOption{
			SlotInfo:   slot,
			Selectable: slot.SpotsRemaining >= requestedParticipants,
			Selected:   slot.SlotID == selectedSlotID,
		})
	}
	return options
}
