package compute

import (
	"crypto/tls"
)

// Options are options for the substrate connection.
type Options struct {
	// URL encodes how we'll connect to the substrate broker.
	URL string

	// TLSConfig needed to connect (optional).
	TLSConfig *tls.Config
}
