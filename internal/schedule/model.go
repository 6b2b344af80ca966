package schedule

import (
	"time"

	"github.com/vedicure/vedacare/internal/therapy"
)

// Practitioner is static reference data for the clinic staff.
type Practitioner struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Appointment is a scheduled calendar event. It references its patient and
// practitioner by id only; it does not own them, and it is never linked
// back to the session the patient may log for the same visit.
type Appointment struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	TherapyType    therapy.Type `json:"therapy_type"`
	Start          time.Time    `json:"start"`
	End            time.Time    `json:"end"`
	PatientID      int          `json:"patient_id"`
	PractitionerID int          `json:"practitioner_id"`
}

// AppointmentDraft is the scheduling-form input. End is optional; when
// zero, the book applies its default session duration.
type AppointmentDraft struct {
	PatientID      int          `json:"patient_id"`
	PractitionerID int          `json:"practitioner_id"`
	TherapyType    therapy.Type `json:"therapy_type"`
	Start          time.Time    `json:"start"`
	End            time.Time    `json:"end"`
}

// DayCell is one cell of the 6x7 month grid. Outside marks cells that pad
// the grid before the 1st or after the last day of the target month.
type DayCell struct {
	Date         time.Time      `json:"date"`
	Outside      bool           `json:"outside"`
	Appointments []*Appointment `json:"appointments"`
}

// MonthGrid is a fixed 42-cell calendar layout for month-view rendering.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []DayCell  `json:"cells"`
}
