package models

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

const joinDateLayout = "Jan 2, 2006"

// RosterStore holds the crew and event collections behind a single mutex.
// Identifiers are unix-millisecond creation timestamps; when two creations
// land in the same millisecond the id is bumped past the previous one, so
// ids stay strictly increasing for the lifetime of the store.
type RosterStore struct {
	mu     sync.RWMutex
	clock  clockwork.Clock
	lastID int64
	crew   []CrewMember
	events []Event
}

func NewRosterStore(clock clockwork.Clock) *RosterStore {
	return &RosterStore{
		clock:  clock,
		crew:   make([]CrewMember, 0),
		events: make([]Event, 0),
	}
}

// nextID must be called with the write lock held.
func (s *RosterStore) nextID() int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *RosterStore) AddCrewMember(name, role, avatar string) CrewMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := CrewMember{
		ID:       s.nextID(),
		Name:     name,
		Role:     role,
		Avatar:   avatar,
		JoinedAt: s.clock.Now().Format(joinDateLayout),
	}
	s.crew = append(s.crew, member)
	return member
}

// RemoveCrewMember removes the member with the given id. Returns false when
// the id is absent, leaving the collection unchanged.
func (s *RosterStore) RemoveCrewMember(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.crew {
		if m.ID == id {
			s.crew = append(s.crew[:i], s.crew[i+1:]...)
			return true
		}
	}
	return false
}

func (s *RosterStore) AddEvent(title, date, location, description string) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := Event{
		ID:           s.nextID(),
		Title:        title,
		Date:         date,
		Location:     location,
		Description:  description,
		Participants: len(s.crew),
	}
	s.events = append(s.events, event)
	return event
}

func (s *RosterStore) RemoveEvent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Crew returns a copy of the crew collection in insertion order.
func (s *RosterStore) Crew() []CrewMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CrewMember, len(s.crew))
	copy(out, s.crew)
	return out
}

// Events returns a copy of the event collection in insertion order.
func (s *RosterStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *RosterStore) Counts() (crew int, events int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.crew), len(s.events)
}

// Snapshot returns the persistence envelope for the current collections.
func (s *RosterStore) Snapshot() *StateV2 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	crew := make([]CrewMember, len(s.crew))
	copy(crew, s.crew)
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return &StateV2{Version: 2, Crew: crew, Events: events}
}

// PutState replaces both collections, e.g. when hydrating from disk.
// lastID is advanced past the highest restored id so new creations cannot
// collide with restored ones.
func (s *RosterStore) PutState(crew []CrewMember, events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if crew == nil {
		crew = make([]CrewMember, 0)
	}
	if events == nil {
		events = make([]Event, 0)
	}
	s.crew = crew
	s.events = events

	for _, m := range s.crew {
		if m.ID > s.lastID {
			s.lastID = m.ID
		}
	}
	for _, e := range s.events {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
}
