package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  Status
		Expect bool
	}{
		{"StatusUndefined", "x", false},
		{"StatusPending", PENDING, false},
		{"StatusSuccess", SUCCESS, true},
		{"StatusFail", FAIL, true},
		{"StatusWarn", WARN, true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, IsTerminalStatus(c.Given))
		})
	}
}

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		Name    string
		Current Status
		Next    Status
		Expect  Transition
	}{
		{"PendingToSuccess", PENDING, SUCCESS, TransitionApply},
		{"PendingToFail", PENDING, FAIL, TransitionApply},
		{"PendingToWarn", PENDING, WARN, TransitionApply},
		{"PendingToPending", PENDING, PENDING, TransitionNoop},
		{"SuccessToSuccess", SUCCESS, SUCCESS, TransitionNoop},
		{"FailToFail", FAIL, FAIL, TransitionNoop},
		{"SuccessToFail", SUCCESS, FAIL, TransitionConflict},
		{"FailToSuccess", FAIL, SUCCESS, TransitionConflict},
		{"WarnToSuccess", WARN, SUCCESS, TransitionConflict},
		{"SuccessToPending", SUCCESS, PENDING, TransitionConflict},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, CheckTransition(c.Current, c.Next))
		})
	}
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect Status
	}{
		{"StatusUndefined", "x", ""},
		{"StatusPending", "PENDING", PENDING},
		{"StatusSuccess", "Success", SUCCESS},
		{"StatusFail", "fail", FAIL},
		{"StatusWarn", "WARN", WARN},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, ToStatus(c.Given))
		})
	}
}
