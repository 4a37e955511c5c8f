package cart

import "sync"

// Store keeps one cart per POS session, keyed by session ID. Carts live only
// between the first add and checkout or clear.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewStore() *Store {
	return &Store{sessions: map[string]State{}}
}

// Get returns the session's cart, or an empty cart for unknown sessions.
func (s *Store) Get(sessionID string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.sessions[sessionID]; ok {
		return state
	}
	return Empty()
}

// Apply runs a transition against the session's cart and stores the result.
func (s *Store) Apply(sessionID string, transition func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		state = Empty()
	}
	state = transition(state)
	s.sessions[sessionID] = state
	return state
}

// Drop destroys the session's cart, typically after checkout.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}
