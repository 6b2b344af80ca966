package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedicure/vedacare/internal/therapy"
)

type stubDirectory map[int]string

func (d stubDirectory) PatientName(id int) (string, bool) {
	name, ok := d[id]
	return name, ok
}

var testDirectory = stubDirectory{
	1: "Aarav Sharma",
	2: "Priya Patel",
	3: "Rohan Desai",
	4: "Sunita Nair",
	5: "Vikram Mehta",
}

func newTestBook(now time.Time) *Book {
	return NewBook(BookConfig{
		Patients:      testDirectory,
		Practitioners: SeedPractitioners(),
		Seed:          SeedAppointments(time.UTC),
		Location:      time.UTC,
		Now:           func() time.Time { return now },
	})
}

func TestAddScenario(t *testing.T) {
	book := newTestBook(time.Date(2025, time.September, 26, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	appt, err := book.Add(ctx, AppointmentDraft{
		PatientID:      1,
		PractitionerID: 1,
		TherapyType:    therapy.Abhyanga,
		Start:          time.Date(2025, time.October, 3, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Aarav Sharma - Abhyanga", appt.Title)
	assert.Equal(t, time.Date(2025, time.October, 3, 11, 0, 0, 0, time.UTC), appt.End, "end defaults to start plus one hour")
	assert.Equal(t, int64(8), appt.ID, "ids continue past the seed")
}

func TestAddValidation(t *testing.T) {
	book := newTestBook(time.Now())
	ctx := context.Background()
	start := time.Date(2025, time.October, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		draft   AppointmentDraft
		wantErr error
	}{
		{"unknown therapy", AppointmentDraft{PatientID: 1, PractitionerID: 1, TherapyType: "Hot Stone", Start: start}, ErrInvalidTherapyType},
		{"unknown patient", AppointmentDraft{PatientID: 99, PractitionerID: 1, TherapyType: therapy.Nasya, Start: start}, ErrUnknownPatient},
		{"unknown practitioner", AppointmentDraft{PatientID: 1, PractitionerID: 99, TherapyType: therapy.Nasya, Start: start}, ErrUnknownPractitioner},
		{"missing start", AppointmentDraft{PatientID: 1, PractitionerID: 1, TherapyType: therapy.Nasya}, ErrMissingStart},
		{"end before start", AppointmentDraft{PatientID: 1, PractitionerID: 1, TherapyType: therapy.Nasya, Start: start, End: start.Add(-time.Hour)}, ErrInvalidTimeRange},
		{"end equals start", AppointmentDraft{PatientID: 1, PractitionerID: 1, TherapyType: therapy.Nasya, Start: start, End: start}, ErrInvalidTimeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := book.Count(ctx)
			_, err := book.Add(ctx, tt.draft)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, book.Count(ctx), "failed add must not grow the event list")
		})
	}
}

func TestAddRoundTrip(t *testing.T) {
	book := newTestBook(time.Now())
	ctx := context.Background()
	start := time.Date(2025, time.October, 9, 15, 0, 0, 0, time.UTC)

	created, err := book.Add(ctx, AppointmentDraft{
		PatientID:      4,
		PractitionerID: 3,
		TherapyType:    therapy.Pizhichil,
		Start:          start,
	})
	require.NoError(t, err)

	got, err := book.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	onDay := book.OnDate(ctx, start)
	require.Len(t, onDay, 1)
	assert.Equal(t, created.ID, onDay[0].ID)
}

func TestByIDNotFound(t *testing.T) {
	book := newTestBook(time.Now())
	_, err := book.ByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestOnDateKeepsListOrder(t *testing.T) {
	book := newTestBook(time.Now())

	onSept26 := book.OnDate(context.Background(), time.Date(2025, time.September, 26, 23, 0, 0, 0, time.UTC))
	require.Len(t, onSept26, 2)
	assert.Equal(t, int64(1), onSept26[0].ID)
	assert.Equal(t, int64(2), onSept26[1].ID)
}

func TestTodaySortedByStart(t *testing.T) {
	today := time.Date(2025, time.November, 3, 7, 30, 0, 0, time.UTC)
	book := newTestBook(today)
	ctx := context.Background()

	// Booked out of order: 14:00, 09:00, 11:00.
	for _, hour := range []int{14, 9, 11} {
		_, err := book.Add(ctx, AppointmentDraft{
			PatientID:      2,
			PractitionerID: 2,
			TherapyType:    therapy.Shirodhara,
			Start:          time.Date(2025, time.November, 3, hour, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	agenda := book.Today(ctx)
	require.Len(t, agenda, 3)
	assert.Equal(t, 9, agenda[0].Start.Hour())
	assert.Equal(t, 11, agenda[1].Start.Hour())
	assert.Equal(t, 14, agenda[2].Start.Hour())
}

func TestConflictsWarnsWithoutRejecting(t *testing.T) {
	book := newTestBook(time.Now())
	ctx := context.Background()

	// Seed appointment 1 is Aarav with Dr. Verma, 2025-09-26 10:00-11:00.
	draft := AppointmentDraft{
		PatientID:      5,
		PractitionerID: 1,
		TherapyType:    therapy.Abhyanga,
		Start:          time.Date(2025, time.September, 26, 10, 30, 0, 0, time.UTC),
	}

	conflicts := book.Conflicts(ctx, draft)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(1), conflicts[0].ID)

	_, err := book.Add(ctx, draft)
	assert.NoError(t, err, "overlaps are reported, not rejected")
}

func TestAddWithConflictsReportsAtomically(t *testing.T) {
	book := newTestBook(time.Now())
	ctx := context.Background()

	// Same slot as seed appointment 1 (Aarav with Dr. Verma, 10:00-11:00).
	draft := AppointmentDraft{
		PatientID:      5,
		PractitionerID: 1,
		TherapyType:    therapy.Abhyanga,
		Start:          time.Date(2025, time.September, 26, 10, 30, 0, 0, time.UTC),
	}

	first, conflicts, err := book.AddWithConflicts(ctx, draft)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(1), conflicts[0].ID)
	for _, c := range conflicts {
		assert.NotEqual(t, first.ID, c.ID, "the created appointment must not report itself")
	}

	// A second identical booking sees both earlier events in one report.
	_, conflicts, err = book.AddWithConflicts(ctx, draft)
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, first.ID, conflicts[1].ID)
}

func TestAddWithConflictsValidation(t *testing.T) {
	book := newTestBook(time.Now())

	_, _, err := book.AddWithConflicts(context.Background(), AppointmentDraft{
		PatientID:      99,
		PractitionerID: 1,
		TherapyType:    therapy.Nasya,
		Start:          time.Date(2025, time.October, 10, 10, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrUnknownPatient)
	assert.Equal(t, 7, book.Count(context.Background()), "failed add must not grow the event list")
}

func TestConflictsIgnoresAdjacentBookings(t *testing.T) {
	book := newTestBook(time.Now())

	// Back-to-back with seed appointment 1 (ends 11:00).
	draft := AppointmentDraft{
		PatientID:      1,
		PractitionerID: 1,
		TherapyType:    therapy.KatiVasti,
		Start:          time.Date(2025, time.September, 26, 11, 0, 0, 0, time.UTC),
	}
	assert.Empty(t, book.Conflicts(context.Background(), draft))
}

func TestCountByTherapy(t *testing.T) {
	book := newTestBook(time.Now())

	dist := book.CountByTherapy(context.Background())
	assert.Equal(t, 2, dist["Abhyanga"])
	assert.Equal(t, 2, dist["Shirodhara"])
	assert.Equal(t, 1, dist["Pizhichil"])
	assert.Equal(t, 1, dist["Kati Vasti"])
	assert.Equal(t, 1, dist["Nasya"])
}
