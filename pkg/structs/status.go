package structs

import (
	"strings"
)

type Status string

const (
	// PENDING is the only non-terminal state; every job starts here.
	PENDING Status = "PENDING"

	// end states
	SUCCESS Status = "SUCCESS"
	FAIL    Status = "FAIL"
	WARN    Status = "WARN"
)

// Transition is the outcome of asking "may a job move from A to B?"
type Transition int

const (
	// TransitionApply means the new status should be written.
	TransitionApply Transition = iota

	// TransitionNoop means the job is already in the reported state; at-least-once
	// delivery of completion reports makes this common and it is not an error.
	TransitionNoop

	// TransitionConflict means the job is in a different terminal state; terminal
	// outcomes are not revisable in place.
	TransitionConflict
)

func IsTerminalStatus(status Status) bool {
	switch status {
	case SUCCESS, FAIL, WARN:
		return true
	default:
		return false
	}
}

// CheckTransition applies the job status transition table.
func CheckTransition(current, next Status) Transition {
	if current == next {
		return TransitionNoop
	}
	if current == PENDING {
		return TransitionApply
	}
	return TransitionConflict
}

func ToStatus(s string) Status {
	switch strings.ToUpper(s) {
	case "PENDING":
		return PENDING
	case "SUCCESS":
		return SUCCESS
	case "FAIL":
		return FAIL
	case "WARN":
		return WARN
	default:
		return ""
	}
}
