package structs

// Collection is a named aggregate of results selected by glob patterns.
//
// Membership is computed, not stored; only the aggregate byte size is cached
// on the row.
type Collection struct {
	// ID is a unique identifier for this collection
	ID string `json:"id"`

	// Name is the machine name of this collection
	Name string `json:"name"`

	// Human is the display label
	Human string `json:"human"`

	// Sources is an ordered list of glob patterns over "source/layer/name".
	// Order matters for display only; membership is order independent.
	Sources []string `json:"sources"`

	// Size is the cached aggregate byte size of the member results
	Size int64 `json:"size"`

	// CreatedAt is the time this collection was created unix time in seconds
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the time this collection was last updated unix time in seconds
	UpdatedAt int64 `json:"updated_at"`
}

// CollectionManifest is what the builder emits for the external archive
// creation collaborator.
type CollectionManifest struct {
	// CollectionID the manifest was resolved for
	CollectionID string `json:"collection_id"`

	// Items lists the member results and their artifact locations
	Items []*CollectionItem `json:"items"`

	// Size is the aggregate byte size of all items
	Size int64 `json:"size"`
}

// CollectionItem is a single member of a collection manifest.
type CollectionItem struct {
	ResultID string            `json:"result_id"`
	JobID    string            `json:"job_id"`
	Path     string            `json:"path"`
	Output   map[string]string `json:"output,omitempty"`
	Size     int64             `json:"size"`
}
