package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

const maxManifestBytes = 16 << 20

type httpFetcher struct {
	cli *retryablehttp.Client
}

// NewHTTPFetcher returns a Fetcher that GETs manifests over HTTP with
// bounded retries.
func NewHTTPFetcher() Fetcher {
	cli := retryablehttp.NewClient()
	cli.RetryMax = 3
	cli.RetryWaitMin = 250 * time.Millisecond
	cli.RetryWaitMax = 4 * time.Second
	cli.Logger = nil
	return &httpFetcher{cli: cli}
}

func (f *httpFetcher) Manifest(url string) (*structs.SourceManifest, error) {
	resp, err := f.cli.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: manifest %s returned %d", errors.ErrNotFound, url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestBytes))
	if err != nil {
		return nil, err
	}

	man := &structs.SourceManifest{}
	if err := json.Unmarshal(data, man); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrBadSchema, err)
	}
	if man.Schema != structs.SourceManifestSchema {
		return nil, fmt.Errorf("%w: got %d want %d", errors.ErrBadSchema, man.Schema, structs.SourceManifestSchema)
	}
	return man, nil
}
