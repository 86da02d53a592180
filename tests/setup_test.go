package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/geofabric/batch/pkg/api/http/client"
	"github.com/geofabric/batch/pkg/database"
	"github.com/geofabric/batch/pkg/structs"
)

var (
	setup = &Setup{}
)

type Setup struct {
	client *client.Client
	db     database.Database
}

// requireHarness connects to the coordinator under test, or skips the test
// when no harness is running. The URL is set by the run.sh test script.
func requireHarness(t *testing.T) {
	addr := os.Getenv("BATCH_TEST_API_URL")
	if addr == "" {
		t.Skip("BATCH_TEST_API_URL not set, skipping end to end tests")
	}
	if setup.client == nil {
		fmt.Println("Test API Location:", addr)
		cli, err := client.New(addr)
		if err != nil {
			t.Fatal(err)
		}
		setup.client = cli
	}
}

// requireDatabase connects directly to the harness database, or skips the
// test when none is running. The URL is set by the run.sh test script.
func requireDatabase(t *testing.T) database.Database {
	url := os.Getenv("BATCH_TEST_PG_URL")
	if url == "" {
		t.Skip("BATCH_TEST_PG_URL not set, skipping database tests")
	}
	if setup.db == nil {
		fmt.Println("Test Postgres Location:", url)
		db, err := database.NewPostgres(&database.Options{URL: url})
		if err != nil {
			t.Fatal(err)
		}
		setup.db = db
	}
	return setup.db
}

// serveManifest stands up a local source serving the given manifest. The
// coordinator fetches it over HTTP like any real source.
func serveManifest(t *testing.T, man *structs.SourceManifest) *httptest.Server {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewEncoder(w).Encode(man)
		if err != nil {
			t.Error(err)
		}
	}))
	t.Cleanup(svr.Close)
	return svr
}

// waitFor polls fn until it returns true or the deadline lapses.
func waitFor(t *testing.T, what string, fn func() bool) {
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
