package compute

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/geofabric/batch/pkg/errors"
)

const maxLogBytes = 4 << 20

// LogStream fetches worker logs by link.
//
// Log storage is external and best effort; links can dangle after
// retention kicks in, which surfaces as ErrLogUnavailable.
type LogStream interface {
	Fetch(link string) (string, error)
}

type httpLogStream struct {
	cli *retryablehttp.Client
}

func NewHTTPLogStream() LogStream {
	cli := retryablehttp.NewClient()
	cli.RetryMax = 4
	cli.RetryWaitMin = 250 * time.Millisecond
	cli.RetryWaitMax = 4 * time.Second
	cli.Logger = nil
	return &httpLogStream{cli: cli}
}

func (l *httpLogStream) Fetch(link string) (string, error) {
	if link == "" {
		return "", errors.ErrLogUnavailable
	}
	resp, err := l.cli.Get(link)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrLogUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: upstream returned %d", errors.ErrLogUnavailable, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrLogUnavailable, err)
	}
	return string(data), nil
}
