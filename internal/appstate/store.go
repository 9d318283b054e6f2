package appstate

import "sync"

// Subscriber receives every new state snapshot, synchronously and in action
// application order.
type Subscriber func(AppState)

// Store serializes action application over a single AppState. Concurrent
// dispatches are applied one at a time in arrival order.
type Store struct {
	mtx         sync.Mutex
	state       AppState
	maxLogs     int
	subscribers []Subscriber
}

// NewStore returns a store with an empty state and the given log backlog cap.
func NewStore(maxLogs int) *Store {
	return &Store{maxLogs: maxLogs}
}

// Dispatch applies the action and notifies every subscriber with the
// resulting snapshot before returning.
func (s *Store) Dispatch(action Action) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.state = Reduce(s.state, action, s.maxLogs)
	for _, subscriber := range s.subscribers {
		subscriber(s.state)
	}
}

// Subscribe registers a subscriber for all future snapshots.
func (s *Store) Subscribe(subscriber Subscriber) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.subscribers = append(s.subscribers, subscriber)
}

// State returns the current snapshot.
func (s *Store) State() AppState {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state
}
