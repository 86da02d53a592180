package compute

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geofabric/batch/pkg/errors"
)

func TestLogStreamFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("line one\nline two\n"))
	}))
	defer srv.Close()

	ls := NewHTTPLogStream()

	result, err := ls.Fetch(srv.URL)

	assert.Nil(t, err)
	assert.Equal(t, "line one\nline two\n", result)
}

func TestLogStreamFetchGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ls := NewHTTPLogStream()

	_, err := ls.Fetch(srv.URL)

	assert.ErrorIs(t, err, errors.ErrLogUnavailable)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestLogStreamFetchNoLink(t *testing.T) {
	ls := NewHTTPLogStream()

	_, err := ls.Fetch("")

	assert.ErrorIs(t, err, errors.ErrLogUnavailable)
}
