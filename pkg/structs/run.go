package structs

import (
	"encoding/json"
)

// Run is a batch of jobs submitted together, either a live production rebuild
// or an ad hoc set.
type Run struct {
	// ID is a unique identifier for this run
	ID string `json:"id"`

	// Live marks a scheduled production rebuild; only live runs promote results.
	Live bool `json:"live"`

	// GitHub is opaque CI callback metadata, stored but never interpreted here.
	GitHub json.RawMessage `json:"github,omitempty"`

	// Closed runs accept no further jobs.
	Closed bool `json:"closed"`

	// CreatedAt is the time this run was created unix time in seconds
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the time this run was last updated unix time in seconds
	UpdatedAt int64 `json:"updated_at"`
}
