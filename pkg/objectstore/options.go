package objectstore

import (
	"time"
)

const (
	BackendS3  = "s3"
	BackendCDN = "cdn"
)

// Options are options for artifact storage.
type Options struct {
	// Backend selects the store implementation (BackendS3 or BackendCDN).
	Backend string

	// Bucket artifacts live in (s3 backend).
	Bucket string

	// Endpoint overrides the s3 endpoint (optional, for s3 compatible stores).
	Endpoint string

	// Region of the bucket (optional).
	Region string

	// Host serving artifacts (cdn backend), eg. "https://cdn.example.com".
	Host string

	// Secret used to sign cdn URLs.
	Secret string

	// Expiry of signed URLs.
	Expiry time.Duration
}

func (o *Options) SetDefaults() {
	if o.Backend == "" {
		o.Backend = BackendS3
	}
	if o.Expiry <= 0 {
		o.Expiry = 1 * time.Hour
	}
}
