package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lalibela_manager/model"
)

// Store keeps live sessions behind a mutex. Sessions are advisory state for
// one guest's modal; abandoning the flow just lets the sweep reclaim it,
// no compensating action needed.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Start() Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Step:      StepArrival,
		Guests:    "2",
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.sessions[sess.ID] = sess
	return *sess
}

func (st *Store) Get(id string) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *sess, nil
}

// apply runs a mutation under the lock, bumping UpdatedAt on success.
func (st *Store) apply(id string, fn func(*Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return *sess, err
	}
	sess.UpdatedAt = time.Now()
	return *sess, nil
}

func (st *Store) Arrival(id string, in ArrivalInput) (Session, error) {
	today := time.Now().Format("2006-01-02")
	return st.apply(id, func(s *Session) error {
		return s.arrival(in, today)
	})
}

func (st *Store) Atmosphere(id, zone string, zoneOpen func(string) bool) (Session, error) {
	return st.apply(id, func(s *Session) error {
		return s.atmosphere(zone, zoneOpen)
	})
}

func (st *Store) Table(id, tableId string, reservations []model.Reservation) (Session, error) {
	return st.apply(id, func(s *Session) error {
		return s.table(tableId, reservations)
	})
}

func (st *Store) Contact(id string, in ContactInput, create func(*model.Reservation) error, autoConfirm bool) (Session, error) {
	return st.apply(id, func(s *Session) error {
		return s.contact(in, create, autoConfirm)
	})
}

func (st *Store) Back(id string) (Session, error) {
	return st.apply(id, func(s *Session) error {
		return s.back()
	})
}

// Sweep drops sessions idle past the TTL. Completed sessions linger the same
// window so the success screen can still be re-read.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, sess := range st.sessions {
		if now.Sub(sess.UpdatedAt) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
