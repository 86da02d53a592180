package server

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		Name   string
		In     error
		Expect int
	}{
		{Name: "Nil", In: nil, Expect: 200},
		{Name: "Validation", In: errors.ErrNoEntries, Expect: 400},
		{Name: "WrappedValidation", In: fmt.Errorf("%w: entry missing source", errors.ErrBadTuple), Expect: 400},
		{Name: "RunClosed", In: errors.ErrRunClosed, Expect: 409},
		{Name: "TerminalConflict", In: errors.ErrInvalidTransition, Expect: 409},
		{Name: "NotFound", In: errors.ErrNotFound, Expect: 404},
		{Name: "LogUnavailableIsNotFound", In: errors.ErrLogUnavailable, Expect: 404},
		{Name: "Unknown", In: fmt.Errorf("boom"), Expect: 500},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, mapError(c.In))
		})
	}
}

func TestUnmarshalQuery(t *testing.T) {
	id := "25c9fc85-337f-4b14-ab94-f49ea17edc78"

	r := httptest.NewRequest("GET", "/api/v1/jobs?limit=5&job_ids="+id+"&sources=us&statuses=SUCCESS&live=true&created_after=100", nil)
	w := httptest.NewRecorder()

	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)

	assert.Nil(t, err)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, []string{id}, q.JobIDs)
	assert.Equal(t, []string{"us"}, q.Sources)
	assert.Equal(t, []structs.Status{structs.SUCCESS}, q.Statuses)
	if assert.NotNil(t, q.Live) {
		assert.True(t, *q.Live)
	}
	assert.Nil(t, q.Closed)
	assert.Equal(t, int64(100), q.CreatedAfter)
}

func TestUnmarshalQueryRejectsBadInput(t *testing.T) {
	cases := []struct {
		Name string
		In   string
	}{
		{Name: "BadLimit", In: "limit=nope"},
		{Name: "BadID", In: "run_ids=not-a-uuid"},
		{Name: "BadStatus", In: "statuses=EXPLODED"},
		{Name: "BadBool", In: "live=perhaps"},
		{Name: "BadTimestamp", In: "created_before=yesterday"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/runs?"+c.In, nil)
			w := httptest.NewRecorder()

			err := unmarshalQuery(w, r, &structs.Query{})

			assert.NotNil(t, err)
			assert.Equal(t, 400, w.Code)
		})
	}
}
