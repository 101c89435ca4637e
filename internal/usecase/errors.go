package usecase

import "errors"

// Failure taxonomy for the reservation workflows. Every error leaving a
// service wraps exactly one of these so handlers can map it to a status
// code with errors.Is. All of them are terminal for the current
// operation: nothing in this layer retries.
var (
	// ErrValidation: bad or missing input, caught before any external
	// call. The user fixes the form and resubmits.
	ErrValidation = errors.New("validation failed")

	// ErrConflict: the requested time slot overlaps an existing
	// confirmed or paid reservation on the same date.
	ErrConflict = errors.New("time slot already booked")

	// ErrNotFound: the referenced record does not exist (or belongs to
	// another user).
	ErrNotFound = errors.New("not found")

	// ErrPersistence: the store rejected a write or was unreachable.
	// Surfaced with a retry suggestion, never swallowed.
	ErrPersistence = errors.New("storage operation failed")

	// ErrUpload: the file store failed while saving a payment
	// screenshot. Distinct from ErrPersistence so the user knows
	// whether to retry the upload or only the metadata update.
	ErrUpload = errors.New("file upload failed")
)
