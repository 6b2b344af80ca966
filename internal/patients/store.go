package patients

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Store owns the patient roster in memory. Reads dominate; the only
// mutation is appending a logged session. Every accessor returns a copy
// taken under the lock, so callers can hold or encode the result without
// racing a concurrent append.
type Store struct {
	mu     sync.RWMutex
	roster []*Patient
	byID   map[int]*Patient
}

// NewStore creates a store holding the given roster in order.
func NewStore(roster []*Patient) *Store {
	s := &Store{
		roster: make([]*Patient, 0, len(roster)),
		byID:   make(map[int]*Patient, len(roster)),
	}
	for _, p := range roster {
		s.roster = append(s.roster, p)
		s.byID[p.ID] = p
	}
	return s
}

// GetAll returns the full roster in insertion order.
func (s *Store) GetAll(ctx context.Context) []*Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Patient, 0, len(s.roster))
	for _, p := range s.roster {
		out = append(out, p.clone())
	}
	return out
}

// FindByID returns the patient with the given id.
func (s *Store) FindByID(ctx context.Context, id int) (*Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return p.clone(), nil
}

// Search matches the query case-insensitively against any part of the
// patient name. An empty query returns the whole roster. Results keep
// roster order.
func (s *Store) Search(ctx context.Context, query string) []*Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	out := make([]*Patient, 0, len(s.roster))
	for _, p := range s.roster {
		if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p.clone())
		}
	}
	return out
}

// AppendSession adds a logged session to the end of the patient's history.
// Sessions are not required to be chronologically ordered, so the date is
// not checked against earlier entries.
func (s *Store) AppendSession(ctx context.Context, patientID int, draft SessionDraft) (*Patient, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[patientID]
	if !ok {
		return nil, ErrPatientNotFound
	}
	p.Sessions = append(p.Sessions, draft.toSession())
	return p.clone(), nil
}

// Upcoming flattens future sessions across the roster, or a single
// patient's when patientID is non-zero, sorted ascending by date. The sort
// is stable so ties keep roster and history order.
func (s *Store) Upcoming(ctx context.Context, patientID int) ([]UpcomingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var scope []*Patient
	if patientID != 0 {
		p, ok := s.byID[patientID]
		if !ok {
			return nil, ErrPatientNotFound
		}
		scope = []*Patient{p}
	} else {
		scope = s.roster
	}

	out := make([]UpcomingSession, 0)
	for _, p := range scope {
		for _, sess := range p.Sessions {
			if sess.Status == StatusFuture {
				out = append(out, UpcomingSession{
					PatientID:   p.ID,
					PatientName: p.Name,
					Session:     sess.clone(),
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Count returns the roster size.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roster)
}

// CountByStatus returns how many sessions across the roster carry the status.
func (s *Store) CountByStatus(ctx context.Context, status SessionStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.roster {
		for _, sess := range p.Sessions {
			if sess.Status == status {
				n++
			}
		}
	}
	return n
}

// PatientName resolves an id to a display name. It satisfies the
// schedule.PatientDirectory interface.
func (s *Store) PatientName(id int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return p.Name, true
}
