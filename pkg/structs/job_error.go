package structs

// JobError is an append-only record of a failed or warned job awaiting human
// review. "Resolving" one removes it from the review queue, nothing more.
type JobError struct {
	// ID is a unique identifier for this row
	ID string `json:"id"`

	// JobID references the job that failed or warned
	JobID string `json:"job"`

	// Message is the failure / warning message
	Message string `json:"message"`

	// CreatedAt is the time this row was created unix time in seconds
	CreatedAt int64 `json:"created_at"`
}
