package wizard

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/citystride/CST-BookingService/internal/domain"
	"github.com/citystride/CST-BookingService/pkg/calendar"
)

// Session серверная сессия мастера бронирования. Принадлежит одному
// клиенту; все методы берут мьютекс сессии, параллельные запросы
// одной сессии сериализуются.
//
// Счетчики поколений защищают от устаревших загрузок: клиент
// пролистал календарь на два месяца вперед, ответы пришли не по
// порядку. Begin*Fetch выдает поколение, Apply* молча отбрасывает
// результат с чужим поколением
type Session struct {
	mu sync.Mutex

	id           string
	tourID       string
	maxGroupSize int

	step  Step
	draft Draft

	monthGen  uint64
	dayGen    uint64
	viewYear  int
	viewMonth time.Month
	monthDays map[string]domain.DateAvailability
	daySlots  []SlotInfo

	createdAt time.Time
	expiresAt time.Time
}

// newSession создает сессию на шаге выбора языка
func newSession(id, tourID string, maxGroupSize int, now time.Time, ttl time.Duration) *Session {
	return &Session{
		id:           id,
		tourID:       tourID,
		maxGroupSize: maxGroupSize,
		step:         StepLanguage,
		draft:        NewDraft(),
		createdAt:    now,
		expiresAt:    now.Add(ttl),
	}
}

// ID returns the session identifier, also used as the idempotency key
func (s *Session) ID() string { return s.id }

// TourID returns the tour this session books
func (s *Session) TourID() string { return s.tourID }

// MaxGroupSize returns the participant limit of the tour
func (s *Session) MaxGroupSize() int { return s.maxGroupSize }

// Snapshot атомарно снимает текущее состояние для ответа клиенту
func (s *Session) Snapshot() (Step, Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step, s.draft
}

// Advance moves the wizard one step forward.
// Возвращает ErrStepIncomplete, если текущий шаг не заполнен,
// и ErrSubmitRequired с шага review: отправка - явное действие
func (s *Session) Advance() (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == StepSubmitted {
		return s.step, ErrAlreadySubmitted
	}
	if s.step == StepReview {
		return s.step, ErrSubmitRequired
	}
	if !CanAdvance(s.step, s.draft, s.maxGroupSize) {
		return s.step, fmt.Errorf("%w: step %s", ErrStepIncomplete, s.step)
	}

	next, ok := s.step.next()
	if !ok {
		return s.step, ErrSubmitRequired
	}
	s.step = next
	return s.step, nil
}

// Retreat moves the wizard one step back, unconditionally.
// exited=true с шага language: мастер покидается, сессию можно бросить
func (s *Session) Retreat() (Step, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == StepSubmitted {
		return s.step, false, ErrAlreadySubmitted
	}

	prev, ok := s.step.prev()
	if !ok {
		return s.step, true, nil
	}
	s.step = prev
	return s.step, false, nil
}

// SelectLanguage выбирает язык проведения тура.
// Смена языка инвалидирует выбранные дату и слот вместе с
// загруженными данными: доступность зависит от языка гида
func (s *Session) SelectLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStep(StepLanguage); err != nil {
		return err
	}
	if !domain.KnownLanguageCode(code) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}

	if s.draft.Language != code {
		s.draft.clearDate()
		s.monthDays = nil
		s.daySlots = nil
		s.monthGen++
		s.dayGen++
	}
	s.draft.Language = code
	return nil
}

// SelectDate выбирает дату тура из загруженного месяца.
// Прошедшие и недоступные даты отклоняются без изменения состояния.
// Смена даты инвалидирует выбранный слот
func (s *Session) SelectDate(date string, today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStep(StepDate); err != nil {
		return err
	}

	day, err := calendar.ParseDate(date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrDateNotSelectable, date)
	}
	if calendar.IsPast(day, today) {
		return fmt.Errorf("%w: %s is in the past", ErrDateNotSelectable, date)
	}
	avail, ok := s.monthDays[date]
	if !ok || !avail.HasAvailability {
		return fmt.Errorf("%w: %s has no availability", ErrDateNotSelectable, date)
	}

	if s.draft.Date != date {
		s.draft.clearSlot()
		s.daySlots = nil
		s.dayGen++
	}
	s.draft.Date = date
	return nil
}

// SelectSlot выбирает слот из загруженной выдачи дня.
// Слот с нехваткой мест отклоняется без изменения состояния,
// ошибка несет оставшееся количество мест
func (s *Session) SelectSlot(slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStep(StepTime); err != nil {
		return err
	}

	for _, slot := range s.daySlots {
		if slot.SlotID != slotID {
			continue
		}
		if slot.SpotsRemaining < s.draft.Participants {
			return fmt.Errorf("%w: %d spots remaining, %d requested",
				ErrSlotNotSelectable, slot.SpotsRemaining, s.draft.Participants)
		}
		s.draft.SlotID = slot.SlotID
		s.draft.SlotTime = slot.Time
		s.draft.GuideID = slot.GuideID
		s.draft.GuideName = slot.GuideName
		return nil
	}

	return fmt.Errorf("%w: %q", ErrSlotNotFound, slotID)
}

// SetParticipants задает размер группы в пределах лимита тура
func (s *Session) SetParticipants(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStep(StepParticipants); err != nil {
		return err
	}
	if count < domain.MinParticipants || count > s.maxGroupSize {
		return fmt.Errorf("%w: %d is out of range 1..%d", ErrInvalidParticipants, count, s.maxGroupSize)
	}

	s.draft.Participants = count
	return nil
}

// SetDetails задает контактные данные клиента
func (s *Session) SetDetails(name, email, phone, specialRequests string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStep(StepDetails); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDetails)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidDetails)
	}
	if len(specialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests exceed %d characters", ErrInvalidDetails, domain.MaxSpecialRequestsLength)
	}

	s.draft.CustomerName = name
	s.draft.CustomerEmail = email
	s.draft.CustomerPhone = strings.TrimSpace(phone)
	s.draft.SpecialRequests = specialRequests
	return nil
}

// BeginMonthFetch начинает загрузку месяца и возвращает ее поколение.
// Запомненный месяц нужен для перестроения календаря при чтении сессии
func (s *Session) BeginMonthFetch(year int, month time.Month) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monthGen++
	s.viewYear = year
	s.viewMonth = month
	return s.monthGen
}

// ViewMonth возвращает последний запрошенный месяц календаря,
// ok=false пока месяц ни разу не загружался
func (s *Session) ViewMonth() (int, time.Month, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewYear, s.viewMonth, s.viewYear != 0
}

// ApplyMonthAvailability применяет загруженный месяц.
// Результат с устаревшим поколением отбрасывается, applied=false
func (s *Session) ApplyMonthAvailability(gen uint64, days map[string]domain.DateAvailability) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.monthGen {
		return false
	}
	s.monthDays = days
	return true
}

// BeginDayFetch начинает загрузку слотов дня и возвращает ее поколение
func (s *Session) BeginDayFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dayGen++
	return s.dayGen
}

// ApplyDaySlots применяет загруженные слоты дня.
// Результат с устаревшим поколением отбрасывается, applied=false
func (s *Session) ApplyDaySlots(gen uint64, slots []SlotInfo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.dayGen {
		return false
	}
	s.daySlots = slots
	return true
}

// MonthAvailability возвращает загруженный месяц для построения календаря
func (s *Session) MonthAvailability() map[string]domain.DateAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monthDays
}

// DaySlots возвращает загруженные слоты дня
func (s *Session) DaySlots() []SlotInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.daySlots
}

// MarkSubmitted переводит сессию в терминальный шаг после успешной
// отправки бронирования
func (s *Session) MarkSubmitted() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if s.step != StepReview {
		return fmt.Errorf("%w: submit allowed only from review, current step %s", ErrWrongStep, s.step)
	}
	s.step = StepSubmitted
	return nil
}

// ensureStep проверяет, что выбор относится к текущему шагу
func (s *Session) ensureStep(want Step) error {
	if s.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if s.step != want {
		return fmt.Errorf("%w: on step %s, selection is for %s", ErrWrongStep, s.step, want)
	}
	return nil
}

// expired проверяет истечение сессии
func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

// touch продлевает сессию при обращении
func (s *Session) touch(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = now.Add(ttl)
}
