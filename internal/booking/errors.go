package booking

import "errors"

var (
	// ErrInvalidSelection is returned when an option id does not belong
	// to the selected group of the draft's service.
	ErrInvalidSelection = errors.New("invalid option selection")

	// ErrInvalidTimeSlot is returned when a time string is not an
	// offered slot.
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrMissingRequiredField is returned when a step guard or the
	// submission gate fails.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrDraftNotFound is returned when a draft id has no stored draft
	// (expired or never created).
	ErrDraftNotFound = errors.New("draft not found")

	// ErrSubmissionFailed wraps persistence errors at submit time. The
	// draft is preserved so the client can retry.
	ErrSubmissionFailed = errors.New("submission failed")

	// ErrUnknownEvent is returned for an event type the machine does
	// not recognize.
	ErrUnknownEvent = errors.New("unknown event")
)
