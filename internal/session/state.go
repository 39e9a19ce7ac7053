// Package session holds the client's authenticated-user state and the
// flows that mutate it: login, register, logout, and startup restore.
package session

import (
	"sync"

	"github.com/smartshop/shopdeck/pkg/domain"
)

// Status is the lifecycle phase of the session state machine.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// State is a snapshot of the current session. Succeeded always carries a
// user; failed never does.
type State struct {
	User   *domain.User
	Shop   *domain.ShopRef
	Status Status
	Err    string
}

// Authenticated reports whether a signed-in user is present.
func (s State) Authenticated() bool {
	return s.User != nil && s.User.Token != ""
}

// Store is the process-wide session container. The Manager is its only
// writer; views read snapshots through State. When two flows overlap the
// last one to finish wins, which matches the unguarded race in the UI.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates an idle session store.
func NewStore() *Store {
	return &Store{}
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Begin marks a flow as in flight.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = StatusLoading
	s.state.Err = ""
}

// Succeed installs the signed-in user. A nil user is downgraded to a
// failure so the succeeded-implies-user invariant cannot break.
func (s *Store) Succeed(u *domain.User) {
	if u == nil {
		s.Fail("session completed without a user")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = u
	s.state.Status = StatusSucceeded
	s.state.Err = ""
}

// Fail clears the user and records the error message.
func (s *Store) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = nil
	s.state.Status = StatusFailed
	s.state.Err = msg
}

// Reset returns the store to its initial state, dropping the user and
// the shop context.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

// SetShop scopes the session to a shop. The shop context has its own
// lifecycle, independent of the user.
func (s *Store) SetShop(shop *domain.ShopRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Shop = shop
}

// ClearShop drops the shop context without touching the user.
func (s *Store) ClearShop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Shop = nil
}
