package compute

import (
	"github.com/geofabric/batch/pkg/structs"
)

// Substrate is the external compute system jobs are submitted to.
//
// Submission hands over a WorkItem and returns a substrate side handle
// for the spawned work; completion is reported back over the API, not
// through the substrate.
type Substrate interface {
	// Submit a single work item, returning a handle we can later use
	// to Kill it.
	Submit(item *structs.WorkItem) (string, error)

	// Register a handler to process work items. Handlers may receive
	// items in batches if the underlying transport supports it.
	Register(handler func(items []*structs.WorkItem) error) error

	// Run the substrate worker, processing items via Register funcs.
	// Blocks until Close() is called.
	Run() error

	// Kill a submitted item with the handle given to us by Submit.
	Kill(handle string) error

	// Close & shutdown the substrate connection.
	Close() error
}
