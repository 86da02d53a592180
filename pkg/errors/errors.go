package errors

import (
	"errors"
	"fmt"
)

var (
	// validation errors; user correctable, reported per entry where possible
	ErrBadSchema    = fmt.Errorf("manifest schema version not supported")
	ErrBadTuple     = fmt.Errorf("malformed tuple")
	ErrBadTrigger   = fmt.Errorf("unknown trigger kind")
	ErrNoEntries    = fmt.Errorf("no entries specified")
	ErrMaxExceeded  = fmt.Errorf("max length exceeded")
	ErrInvalidArg   = fmt.Errorf("invalid arg")
	ErrNotSupported = fmt.Errorf("not supported")

	// conflict errors; rejected outright, no partial mutation
	ErrRunClosed         = fmt.Errorf("run is closed")
	ErrInvalidTransition = fmt.Errorf("job terminal status is not revisable")

	// not found
	ErrNotFound = fmt.Errorf("not found")

	// ErrSubmission means the compute substrate rejected a work item; the
	// tuple's job is recorded in FAIL with this as its message.
	ErrSubmission = fmt.Errorf("substrate rejected work item")

	// ErrLogUnavailable is surfaced when the substrate's log stream stayed
	// unavailable past the retry budget. Logs are not guaranteed retained, so
	// callers should treat this as the log not existing.
	ErrLogUnavailable = fmt.Errorf("%w: log stream unavailable", ErrNotFound)
)

// IsValidation reports whether err is user-correctable input.
func IsValidation(err error) bool {
	for _, e := range []error{ErrBadSchema, ErrBadTuple, ErrBadTrigger, ErrNoEntries, ErrMaxExceeded, ErrInvalidArg, ErrNotSupported} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err rejects a state-changing call outright.
func IsConflict(err error) bool {
	return errors.Is(err, ErrRunClosed) || errors.Is(err, ErrInvalidTransition)
}

// IsNotFound reports whether err means an unknown run / job / result / collection.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
