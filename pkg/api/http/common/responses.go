package common

// UpdateResponse is the response from an update / delete operation, specific
// to HTTP.
type UpdateResponse struct {
	// Updated is the number of objects changed.
	Updated int64 `json:"updated"`
}

// LogResponse wraps a fetched job log.
type LogResponse struct {
	JobID string `json:"job_id"`
	Log   string `json:"log"`
}

// ArtifactsResponse maps artifact names to signed URLs.
type ArtifactsResponse struct {
	JobID     string            `json:"job_id"`
	Artifacts map[string]string `json:"artifacts"`
}
