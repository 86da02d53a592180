package structs

import (
	"encoding/json"
)

// CreateRunRequest asks the registry to open a new run.
type CreateRunRequest struct {
	// Live marks a scheduled production rebuild
	Live bool `json:"live"`

	// GitHub is opaque CI callback metadata (optional)
	GitHub json.RawMessage `json:"github,omitempty"`
}

// AttachEntry is one entry in an attach call; either a bare source URL, or an
// explicit {source, layer, name} triple that pins the tuple without a
// manifest fetch.
type AttachEntry struct {
	// Source URL. Required.
	Source string `json:"source"`

	// Layer pins the layer; when empty the manifest's layers are exploded.
	Layer string `json:"layer,omitempty"`

	// Name pins the dataset name; when empty the layer's names are exploded.
	Name string `json:"name,omitempty"`
}

// AttachJobsRequest attaches entries to an open run.
type AttachJobsRequest struct {
	RunID   string         `json:"run_id"`
	Entries []*AttachEntry `json:"entries"`
}

// AttachError is a per-entry failure; failed entries do not abort siblings.
type AttachError struct {
	Source string `json:"source"`
	Layer  string `json:"layer,omitempty"`
	Name   string `json:"name,omitempty"`
	Error  string `json:"error"`
}

// AttachReport lists the jobs created by an attach call and any per-entry
// errors. The run is closed by the time the report is returned.
type AttachReport struct {
	RunID  string         `json:"run_id"`
	JobIDs []string       `json:"job_ids"`
	Errors []*AttachError `json:"errors,omitempty"`
}

// UpdateJobStatusRequest is a completion report from the substrate or an
// administrator.
type UpdateJobStatusRequest struct {
	JobID  string        `json:"job_id"`
	Status Status        `json:"status"`
	Update *StatusUpdate `json:"update,omitempty"`
}

// CreateJobErrorRequest appends a row to the review ledger.
type CreateJobErrorRequest struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// CreateCollectionRequest creates or updates a collection definition.
type CreateCollectionRequest struct {
	Name    string   `json:"name"`
	Human   string   `json:"human"`
	Sources []string `json:"sources"`
}

// RerunResponse returns the id of the replacement job and the run it was
// attached to.
type RerunResponse struct {
	JobID string `json:"job_id"`
	RunID string `json:"run_id"`
}
