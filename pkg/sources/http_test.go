package sources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geofabric/batch/pkg/errors"
)

func TestManifestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"schema": 2, "layers": {"roads": [{"name": "ca"}, {"name": "wa"}]}}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()

	man, err := f.Manifest(srv.URL)

	assert.Nil(t, err)
	assert.Equal(t, 2, man.Schema)
	assert.Equal(t, 2, len(man.Layers["roads"]))
}

func TestManifestFetchBadSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"schema": 1, "layers": {}}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()

	_, err := f.Manifest(srv.URL)

	assert.ErrorIs(t, err, errors.ErrBadSchema)
}

func TestManifestFetchNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()

	_, err := f.Manifest(srv.URL)

	assert.ErrorIs(t, err, errors.ErrBadSchema)
}

func TestManifestFetchMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher()

	_, err := f.Manifest(srv.URL)

	assert.ErrorIs(t, err, errors.ErrNotFound)
}
