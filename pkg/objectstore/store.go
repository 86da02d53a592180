package objectstore

import (
	"fmt"

	pkgerrors "github.com/geofabric/batch/pkg/errors"
)

// New returns the configured store backend.
func New(opts *Options) (ObjectStore, error) {
	opts.SetDefaults()
	switch opts.Backend {
	case BackendS3:
		return NewS3Store(opts)
	case BackendCDN:
		return NewCDNStore(opts)
	}
	return nil, fmt.Errorf("%w: unknown store backend %q", pkgerrors.ErrNotSupported, opts.Backend)
}
