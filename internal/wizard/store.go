package wizard

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Store хранит сессии мастера в памяти с TTL. Каждое обращение
// продлевает сессию; фоновый janitor удаляет истекшие.
//
// Сессии намеренно не переживают рестарт сервиса: мастер - короткий
// интерактивный сценарий, клиент просто начнет заново
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewStore создает хранилище сессий и запускает janitor
func NewStore(ttl time.Duration) *Store {
	store := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}

	go store.janitor()

	return store
}

// Create создает сессию мастера для тура
func (st *Store) Create(tourID string, maxGroupSize int) (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("wizard: generate session id: %w", err)
	}

	session := newSession(id, tourID, maxGroupSize, time.Now(), st.ttl)

	st.mu.Lock()
	st.sessions[id] = session
	st.mu.Unlock()

	return session, nil
}

// Get возвращает живую сессию и продлевает ее TTL
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	now := time.Now()
	if session.expired(now) {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	session.touch(now, st.ttl)
	return session, nil
}

// Close останавливает janitor
func (st *Store) Close() {
	st.stopOnce.Do(func() {
		close(st.stopCh)
	})
}

// janitor периодически удаляет истекшие сессии
func (st *Store) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-st.stopCh:
			return
		case now := <-ticker.C:
			st.sweep(now)
		}
	}
}

// sweep удаляет сессии, истекшие к моменту now
func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, session := range st.sessions {
		if session.expired(now) {
			delete(st.sessions, id)
		}
	}
}

// newSessionID возвращает 32 hex символа криптографической случайности
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
