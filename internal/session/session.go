package session

import (
	"sync"

	"applicant-bot/internal/users"
)

// PendingVideo is the not-yet-confirmed candidate submission. A session holds
// at most one; accepting a new video replaces the previous candidate.
type PendingVideo struct {
	FileID   string
	Kind     string
	Duration int
}

type state struct {
	collected  users.User
	hasUser    bool
	pending    PendingVideo
	hasPending bool
}

// Store holds per-chat conversation state. Sessions are created implicitly on
// first write and live until Remove. Handler execution for one chat is
// serialized by the update loop; the store lock only guards the map against
// turns of different chats running concurrently.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*state
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*state)}
}

// SetCollected snapshots the user record for the session.
func (s *Store) SetCollected(chatID int64, u users.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.getOrCreate(chatID)
	st.collected = u
	st.hasUser = true
}

// Collected reports the snapshot captured at first contact, if any. Presence
// distinguishes a restarted session from a first contact.
func (s *Store) Collected(chatID int64) (users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[chatID]
	if !ok || !st.hasUser {
		return users.User{}, false
	}
	return st.collected, true
}

// SetPending stages a candidate submission, silently replacing any
// unconfirmed previous one.
func (s *Store) SetPending(chatID int64, p PendingVideo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.getOrCreate(chatID)
	st.pending = p
	st.hasPending = true
}

func (s *Store) Pending(chatID int64) (PendingVideo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[chatID]
	if !ok || !st.hasPending {
		return PendingVideo{}, false
	}
	return st.pending, true
}

// ClearPending empties the candidate slot after a confirm or reject.
func (s *Store) ClearPending(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.sessions[chatID]; ok {
		st.pending = PendingVideo{}
		st.hasPending = false
	}
}

// Remove discards the whole session.
func (s *Store) Remove(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

func (s *Store) getOrCreate(chatID int64) *state {
	st, ok := s.sessions[chatID]
	if !ok {
		st = &state{}
		s.sessions[chatID] = st
	}
	return st
}
