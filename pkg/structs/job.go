package structs

import (
	"encoding/json"
)

// Output artifact names. Each is optionally present on a finished job; the
// values are opaque locators understood by the object store.
const (
	OutputRaw       = "output"
	OutputCache     = "cache"
	OutputPreview   = "preview"
	OutputValidated = "validated"
)

// Job is one processing attempt for a single (source, layer, name) tuple.
//
// Jobs are never deleted and never re-executed in place; a rerun creates a
// new Job row for the same tuple.
type Job struct {
	// ID is a unique identifier for this job
	ID string `json:"id"`

	// RunID is the ID of the run this job belongs to
	RunID string `json:"run_id"`

	// Source is the URL describing how to fetch / convert the dataset
	Source string `json:"source"`

	// SourceName is the short name of the source derived from its URL (eg. "us")
	SourceName string `json:"source_name"`

	// Layer within the source this job processes
	Layer string `json:"layer"`

	// Name of the dataset within the layer
	Name string `json:"name"`

	// Status is the current status of this job
	Status Status `json:"status"`

	// Output maps artifact names to opaque locators (raw data, cache archive,
	// preview image, validated data). Each is optionally present.
	Output map[string]string `json:"output,omitempty"`

	// Stats is opaque per-layer metrics reported by the substrate
	Stats json.RawMessage `json:"stats,omitempty"`

	// Count is the number of features processed
	Count int64 `json:"count"`

	// Bounds is the geometry envelope [minx, miny, maxx, maxy]
	Bounds []float64 `json:"bounds,omitempty"`

	// Size of the output in bytes
	Size int64 `json:"size"`

	// Version of the conversion pipeline that produced the output
	Version string `json:"version,omitempty"`

	// LogLink locates the substrate's log stream for this job, if retained
	LogLink string `json:"loglink,omitempty"`

	// SubstrateID is the handle returned by the compute substrate on submission
	SubstrateID string `json:"substrate_id,omitempty"`

	// Message carries a completion or submission-failure message
	Message string `json:"message,omitempty"`

	// CreatedAt is the submission time unix seconds; promotion compares this,
	// not completion time.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the time this job was last updated unix time in seconds
	UpdatedAt int64 `json:"updated_at"`
}

// StatusUpdate carries the fields a completion report may set alongside the
// new status.
type StatusUpdate struct {
	Output  map[string]string `json:"output,omitempty"`
	Stats   json.RawMessage   `json:"stats,omitempty"`
	Count   int64             `json:"count,omitempty"`
	Bounds  []float64         `json:"bounds,omitempty"`
	Size    int64             `json:"size,omitempty"`
	Version string            `json:"version,omitempty"`
	LogLink string            `json:"loglink,omitempty"`
	Message string            `json:"message,omitempty"`
}
