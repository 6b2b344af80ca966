package schedule

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vedicure/vedacare/internal/therapy"
)

// PatientDirectory resolves patient ids to display names. The patient
// store implements it; the book only needs the name for the event title.
type PatientDirectory interface {
	PatientName(id int) (string, bool)
}

// BookConfig configures an appointment book.
type BookConfig struct {
	Patients      PatientDirectory
	Practitioners []Practitioner
	Seed          []*Appointment

	// DefaultDuration is applied when a draft has no end time. Zero means
	// one hour, the clinic's standard session length.
	DefaultDuration time.Duration

	// Location is the calendar convention for day-equality checks. Zero
	// means the process-local timezone.
	Location *time.Location

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Book owns the flat list of scheduled appointments and answers the
// calendar queries derived from it. Ids are allocated from a monotonic
// counter and never reused.
type Book struct {
	mu            sync.RWMutex
	appointments  []*Appointment
	byID          map[int64]*Appointment
	nextID        int64
	practitioners []Practitioner
	practByID     map[int]Practitioner
	patients      PatientDirectory
	duration      time.Duration
	loc           *time.Location
	now           func() time.Time
}

// NewBook creates an appointment book over the given reference data.
func NewBook(cfg BookConfig) *Book {
	b := &Book{
		byID:          make(map[int64]*Appointment),
		practitioners: cfg.Practitioners,
		practByID:     make(map[int]Practitioner, len(cfg.Practitioners)),
		patients:      cfg.Patients,
		duration:      cfg.DefaultDuration,
		loc:           cfg.Location,
		now:           cfg.Now,
		nextID:        1,
	}
	if b.duration <= 0 {
		b.duration = time.Hour
	}
	if b.loc == nil {
		b.loc = time.Local
	}
	if b.now == nil {
		b.now = time.Now
	}
	for _, p := range cfg.Practitioners {
		b.practByID[p.ID] = p
	}
	for _, a := range cfg.Seed {
		b.appointments = append(b.appointments, a)
		b.byID[a.ID] = a
		if a.ID >= b.nextID {
			b.nextID = a.ID + 1
		}
	}
	return b
}

// validateDraft checks references and the time range and resolves the
// effective end time. It only touches reference data fixed at construction,
// so it needs no lock.
func (b *Book) validateDraft(draft AppointmentDraft) (name string, end time.Time, err error) {
	if !therapy.Valid(draft.TherapyType) {
		return "", time.Time{}, ErrInvalidTherapyType
	}
	name, ok := b.patients.PatientName(draft.PatientID)
	if !ok {
		return "", time.Time{}, fmt.Errorf("patient %d: %w", draft.PatientID, ErrUnknownPatient)
	}
	if _, ok := b.practByID[draft.PractitionerID]; !ok {
		return "", time.Time{}, fmt.Errorf("practitioner %d: %w", draft.PractitionerID, ErrUnknownPractitioner)
	}
	if draft.Start.IsZero() {
		return "", time.Time{}, ErrMissingStart
	}
	end = draft.End
	if end.IsZero() {
		end = draft.Start.Add(b.duration)
	}
	if !end.After(draft.Start) {
		return "", time.Time{}, ErrInvalidTimeRange
	}
	return name, end, nil
}

func (b *Book) appendLocked(draft AppointmentDraft, name string, end time.Time) *Appointment {
	appt := &Appointment{
		ID:             b.nextID,
		Title:          fmt.Sprintf("%s - %s", name, draft.TherapyType),
		TherapyType:    draft.TherapyType,
		Start:          draft.Start,
		End:            end,
		PatientID:      draft.PatientID,
		PractitionerID: draft.PractitionerID,
	}
	b.nextID++
	b.appointments = append(b.appointments, appt)
	b.byID[appt.ID] = appt
	return appt
}

// Add validates the draft, assigns the next id, and appends the event.
// Overlapping bookings are not rejected; use AddWithConflicts to warn the
// caller.
func (b *Book) Add(ctx context.Context, draft AppointmentDraft) (*Appointment, error) {
	name, end, err := b.validateDraft(draft)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appendLocked(draft, name, end), nil
}

// AddWithConflicts books the draft and reports the overlapping appointments
// that existed at the moment of booking. Both happen under one lock
// acquisition, so the report is exact even with concurrent bookings, and it
// never includes the appointment being created.
func (b *Book) AddWithConflicts(ctx context.Context, draft AppointmentDraft) (*Appointment, []*Appointment, error) {
	name, end, err := b.validateDraft(draft)
	if err != nil {
		return nil, nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	conflicts := b.conflictsLocked(draft, end)
	return b.appendLocked(draft, name, end), conflicts, nil
}

// ByID returns the appointment with the given id.
func (b *Book) ByID(ctx context.Context, id int64) (*Appointment, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	a, ok := b.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

// OnDate returns every appointment whose start falls on the given calendar
// day, in list order. Day equality ignores time of day and uses the book's
// location.
func (b *Book) OnDate(ctx context.Context, date time.Time) []*Appointment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.onDateLocked(date)
}

func (b *Book) onDateLocked(date time.Time) []*Appointment {
	out := make([]*Appointment, 0)
	for _, a := range b.appointments {
		if b.sameDay(a.Start, date) {
			out = append(out, a)
		}
	}
	return out
}

// Today returns the current day's agenda sorted ascending by start time.
func (b *Book) Today(ctx context.Context) []*Appointment {
	agenda := b.OnDate(ctx, b.now())
	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].Start.Before(agenda[j].Start)
	})
	return agenda
}

// Conflicts reports existing appointments that overlap the draft's time
// range for the same practitioner or patient. Double-booking is allowed;
// this exists so the caller can warn.
func (b *Book) Conflicts(ctx context.Context, draft AppointmentDraft) []*Appointment {
	end := draft.End
	if end.IsZero() {
		end = draft.Start.Add(b.duration)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.conflictsLocked(draft, end)
}

func (b *Book) conflictsLocked(draft AppointmentDraft, end time.Time) []*Appointment {
	out := make([]*Appointment, 0)
	for _, a := range b.appointments {
		if a.PatientID != draft.PatientID && a.PractitionerID != draft.PractitionerID {
			continue
		}
		if draft.Start.Before(a.End) && a.Start.Before(end) {
			out = append(out, a)
		}
	}
	return out
}

// Practitioners returns the clinic staff reference list.
func (b *Book) Practitioners(ctx context.Context) []Practitioner {
	out := make([]Practitioner, len(b.practitioners))
	copy(out, b.practitioners)
	return out
}

// Count returns the number of booked appointments.
func (b *Book) Count(ctx context.Context) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.appointments)
}

// CountByTherapy returns booked appointment counts keyed by therapy name.
func (b *Book) CountByTherapy(ctx context.Context) map[string]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]int)
	for _, a := range b.appointments {
		out[string(a.TherapyType)]++
	}
	return out
}

func (b *Book) sameDay(a, c time.Time) bool {
	a, c = a.In(b.loc), c.In(b.loc)
	ay, am, ad := a.Date()
	cy, cm, cd := c.Date()
	return ay == cy && am == cm && ad == cd
}
