package schedule

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment has the requested id
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrUnknownPatient is returned when a draft references a patient id that does not resolve
	ErrUnknownPatient = errors.New("unknown patient reference")

	// ErrUnknownPractitioner is returned when a draft references a practitioner id that does not resolve
	ErrUnknownPractitioner = errors.New("unknown practitioner reference")

	// ErrInvalidTherapyType is returned when a draft names a therapy outside the clinic menu
	ErrInvalidTherapyType = errors.New("unknown therapy type")

	// ErrMissingStart is returned when a draft has no start time
	ErrMissingStart = errors.New("start time is required")

	// ErrInvalidTimeRange is returned when a supplied end does not fall after the start
	ErrInvalidTimeRange = errors.New("end must be after start")
)
