package sources

import (
	"github.com/geofabric/batch/pkg/structs"
)

// Fetcher retrieves & validates source manifests by URL.
type Fetcher interface {
	Manifest(url string) (*structs.SourceManifest, error)
}
