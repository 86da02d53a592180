package structs

// Kind is the type of object.
//
// We use kind names as table names in the database, so they should not be changed
// without a matching migration.
type Kind string

const (
	// KindRun is a batch of jobs submitted together
	KindRun Kind = "Run"

	// KindJob is one processing attempt for a single (source, layer, name) tuple
	KindJob Kind = "Job"

	// KindResult is the current authoritative successful job for a tuple
	KindResult Kind = "Result"

	// KindCollection is a named aggregate of results selected by glob patterns
	KindCollection Kind = "Collection"

	// KindJobError is a failed / warned job awaiting human review
	KindJobError Kind = "JobError"
)
