package structs

import (
	"strings"
)

// Result is the current authoritative successful job for a tuple.
//
// At most one Result row exists per (source, layer, name); promotion replaces
// the row, it never appends.
type Result struct {
	// ID is a unique identifier for this result
	ID string `json:"id"`

	// Source is the short name of the source (eg. "us"), derived from its
	// URL. Together with Layer and Name it forms the unique tuple key.
	Source string `json:"source"`

	// Layer within the source
	Layer string `json:"layer"`

	// Name of the dataset within the layer
	Name string `json:"name"`

	// JobID references the job currently considered authoritative for this
	// tuple. It always points at a job with status SUCCESS.
	JobID string `json:"job"`

	// Updated is the CreatedAt (submission time) of the promoted job, unix
	// seconds. Promotion comparisons use this value.
	Updated int64 `json:"updated"`

	// Fabric marks this result for inclusion in the derived tiled dataset.
	Fabric bool `json:"fabric"`
}

// Path returns the "source/layer/name" string collection patterns match against.
func (r *Result) Path() string {
	return strings.Join([]string{r.Source, r.Layer, r.Name}, "/")
}
