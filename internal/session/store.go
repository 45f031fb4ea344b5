// Package session keeps wizard state alive between requests. Sessions are
// anonymous, keyed by opaque IDs, and expire after a period of inactivity.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zekroTJA/timedmap"

	"github.com/ecoharmony/park-registration/internal/domain"
)

// State is one user's wizard plus the in-flight submission flag that blocks
// duplicate confirmations. Callers must hold Mu while touching either.
type State struct {
	Mu         sync.Mutex
	Wizard     *domain.Wizard
	Submitting bool
}

type Store struct {
	entries *timedmap.TimedMap
	ttl     time.Duration
}

func NewStore(ttl time.Duration) *Store {
	cleanup := ttl / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &Store{
		entries: timedmap.New(cleanup),
		ttl:     ttl,
	}
}

// Create registers a fresh wizard and returns its session ID.
func (s *Store) Create() (string, *State) {
	id := uuid.NewString()
	state := &State{Wizard: domain.NewWizard()}
	s.entries.Set(id, state, s.ttl)
	return id, state
}

// Get looks up a session and slides its expiry on every hit.
func (s *Store) Get(id string) (*State, bool) {
	v := s.entries.GetValue(id)
	if v == nil {
		return nil, false
	}
	_ = s.entries.Refresh(id, s.ttl)
	return v.(*State), true
}

func (s *Store) Remove(id string) {
	s.entries.Remove(id)
}
