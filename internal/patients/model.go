package patients

import (
	"time"

	"github.com/vedicure/vedacare/internal/therapy"
)

// SessionStatus tags where a therapy session sits in its lifecycle.
// Sessions do not transition between statuses here; the tag is set when
// the session is recorded.
type SessionStatus string

const (
	StatusPast    SessionStatus = "Past"
	StatusOngoing SessionStatus = "Ongoing"
	StatusFuture  SessionStatus = "Future"
)

func validStatus(s SessionStatus) bool {
	switch s {
	case StatusPast, StatusOngoing, StatusFuture:
		return true
	}
	return false
}

// Feedback is the patient's review of a completed session.
type Feedback struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

// Session is a single therapy encounter in a patient's history. Feedback is
// only present on past sessions; ongoing and future sessions never carry it.
type Session struct {
	Status      SessionStatus `json:"status"`
	TherapyType therapy.Type  `json:"therapy_type"`
	Date        time.Time     `json:"date"`
	Feedback    *Feedback     `json:"feedback,omitempty"`
}

// Milestone is a recovery checkpoint with a completion flag.
type Milestone struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Patient is one roster entry. Sessions are kept in the order they were
// entered, which is the chronological narrative order and not necessarily
// sorted by date.
type Patient struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Condition     string      `json:"condition"`
	WellnessScore int         `json:"wellness_score"`
	RegisteredOn  time.Time   `json:"registered_on"`
	Milestones    []Milestone `json:"milestones"`
	Sessions      []Session   `json:"sessions"`
}

// clone returns a deep copy safe to use outside the store's lock.
func (p *Patient) clone() *Patient {
	out := *p
	out.Milestones = append([]Milestone(nil), p.Milestones...)
	out.Sessions = make([]Session, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		out.Sessions = append(out.Sessions, s.clone())
	}
	return &out
}

func (s Session) clone() Session {
	if s.Feedback != nil {
		fb := *s.Feedback
		s.Feedback = &fb
	}
	return s
}

// SessionDraft is the log-session form input. Status defaults to Ongoing
// when empty. Review and Rating are only kept when the draft is Past.
type SessionDraft struct {
	Status      SessionStatus `json:"status"`
	TherapyType therapy.Type  `json:"therapy_type"`
	Date        time.Time     `json:"date"`
	Review      string        `json:"review"`
	Rating      int           `json:"rating"`
}

// Validate checks the draft's enumerated fields.
func (d *SessionDraft) Validate() error {
	if !therapy.Valid(d.TherapyType) {
		return ErrInvalidTherapyType
	}
	if d.Status != "" && !validStatus(d.Status) {
		return ErrInvalidStatus
	}
	if d.Rating != 0 && (d.Rating < 1 || d.Rating > 5) {
		return ErrInvalidRating
	}
	return nil
}

// toSession builds the stored session. Feedback attaches only to past
// sessions, keeping the past-only invariant structural.
func (d *SessionDraft) toSession() Session {
	status := d.Status
	if status == "" {
		status = StatusOngoing
	}
	s := Session{
		Status:      status,
		TherapyType: d.TherapyType,
		Date:        d.Date,
	}
	if status == StatusPast && (d.Review != "" || d.Rating != 0) {
		s.Feedback = &Feedback{Review: d.Review, Rating: d.Rating}
	}
	return s
}

// UpcomingSession is a future session joined with its patient for agenda views.
type UpcomingSession struct {
	PatientID   int    `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Session
}
