package schedule

import (
	"time"

	"github.com/vedicure/vedacare/internal/therapy"
)

// SeedPractitioners returns the clinic's demo staff list.
func SeedPractitioners() []Practitioner {
	return []Practitioner{
		{ID: 1, Name: "Dr. Anjali Verma"},
		{ID: 2, Name: "Dr. Vikram Singh"},
		{ID: 3, Name: "Dr. Sunita Rao"},
	}
}

// SeedAppointments returns the demo event list in the given calendar
// location. Ids 1-7 are taken, so the book allocates from 8.
func SeedAppointments(loc *time.Location) []*Appointment {
	if loc == nil {
		loc = time.Local
	}
	at := func(y int, m time.Month, d, hour int) time.Time {
		return time.Date(y, m, d, hour, 0, 0, 0, loc)
	}
	appt := func(id int64, name string, t therapy.Type, start time.Time, patientID, practitionerID int) *Appointment {
		return &Appointment{
			ID:             id,
			Title:          name + " - " + string(t),
			TherapyType:    t,
			Start:          start,
			End:            start.Add(time.Hour),
			PatientID:      patientID,
			PractitionerID: practitionerID,
		}
	}
	return []*Appointment{
		appt(1, "Aarav Sharma", therapy.Pizhichil, at(2025, time.September, 26, 10), 1, 1),
		appt(2, "Priya Patel", therapy.Shirodhara, at(2025, time.September, 26, 12), 2, 2),
		appt(3, "Aarav Sharma", therapy.Abhyanga, at(2025, time.October, 3, 10), 1, 1),
		appt(4, "Priya Patel", therapy.Nasya, at(2025, time.October, 4, 11), 2, 2),
		appt(5, "Rohan Desai", therapy.Abhyanga, at(2025, time.October, 5, 14), 3, 3),
		appt(6, "Vikram Mehta", therapy.Shirodhara, at(2025, time.October, 6, 9), 5, 1),
		appt(7, "Sunita Nair", therapy.KatiVasti, at(2025, time.September, 28, 16), 4, 2),
	}
}
