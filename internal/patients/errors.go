package patients

import "errors"

var (
	// ErrPatientNotFound is returned when no patient has the requested id
	ErrPatientNotFound = errors.New("patient not found")

	// ErrInvalidTherapyType is returned when a session draft names a therapy the clinic does not offer
	ErrInvalidTherapyType = errors.New("unknown therapy type")

	// ErrInvalidStatus is returned when a session draft carries an unrecognized status tag
	ErrInvalidStatus = errors.New("invalid session status")

	// ErrInvalidRating is returned when a session rating falls outside 1-5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
