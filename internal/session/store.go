package session

import (
	"slices"

	"github.com/sandeepkv93/tasklog/internal/model"
)

// Store is the ordered event collection. Events returns a copy, so callers
// cannot reach the stored slice.
type Store struct {
	events []model.CalendarEvent
}

func NewStore(events []model.CalendarEvent) *Store {
	s := &Store{}
	s.Replace(events)
	return s
}

func (s *Store) Events() []model.CalendarEvent {
	return slices.Clone(s.events)
}

func (s *Store) Len() int {
	return len(s.events)
}

func (s *Store) Replace(events []model.CalendarEvent) {
	next := make([]model.CalendarEvent, len(events))
	copy(next, events)
	s.events = next
}

func (s *Store) Get(id string) (model.CalendarEvent, bool) {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.CalendarEvent{}, false
}

func (s *Store) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

func (s *Store) Delete(id string) bool {
	next := make([]model.CalendarEvent, 0, len(s.events))
	found := false
	for _, ev := range s.events {
		if ev.ID == id {
			found = true
			continue
		}
		next = append(next, ev)
	}
	if found {
		s.events = next
	}
	return found
}

// OnDate lists events covering d in store order.
func (s *Store) OnDate(d model.Date) []model.CalendarEvent {
	out := make([]model.CalendarEvent, 0)
	for _, ev := range s.events {
		if ev.Covers(d) {
			out = append(out, ev)
		}
	}
	return out
}
