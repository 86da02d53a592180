package database

import (
	"github.com/geofabric/batch/pkg/structs"
)

// Database is the single source of truth for runs, jobs, results, collections
// and the job error ledger.
//
// Multi-step invariants (attach-to-open-run, status transition + promotion)
// are implemented here as single transactions with row level locking; callers
// never compose them from separate read-then-write calls.
type Database interface {
	// InsertRun inserts a new open run.
	InsertRun(r *structs.Run) error

	// Runs returns runs matching the given query.
	Runs(q *structs.Query) ([]*structs.Run, error)

	// CloseRun sets closed=true. Closing an already closed run is a no-op;
	// the bool reports whether this call changed anything.
	CloseRun(id string) (bool, error)

	// CloseExpiredRuns closes every open run created before the given unix
	// time and returns how many were closed.
	CloseExpiredRuns(createdBefore int64) (int64, error)

	// AttachJobs inserts the given jobs against an open run in one
	// transaction. If the run is closed it returns ErrRunClosed and inserts
	// nothing; if the run is unknown it returns ErrNotFound.
	AttachJobs(runID string, jobs []*structs.Job) error

	// Jobs returns jobs matching the given query.
	Jobs(q *structs.Query) ([]*structs.Job, error)

	// SetJobSubstrateID records the substrate handle returned on submission.
	SetJobSubstrateID(jobID, substrateID string) error

	// SetJobStatus applies a status transition under the job transition
	// table. Duplicate terminal reports are a no-op (applied=false, nil
	// error); differing terminal transitions return ErrInvalidTransition.
	// When promote is true and the transition to SUCCESS applies, the job is
	// promoted into the Result table within the same transaction: the tuple's
	// row is replaced iff the job's created_at >= the row's updated.
	SetJobStatus(jobID string, status structs.Status, upd *structs.StatusUpdate, promote bool) (*structs.Job, bool, error)

	// Results returns results matching the given query.
	Results(q *structs.Query) ([]*structs.Result, error)

	// SetResultFabric toggles a result's inclusion in the derived tiled
	// dataset.
	SetResultFabric(id string, fabric bool) error

	// InsertCollection inserts a new collection definition.
	InsertCollection(c *structs.Collection) error

	// UpdateCollection replaces a collection's display label & patterns.
	UpdateCollection(c *structs.Collection) error

	// Collections returns collections matching the given query.
	Collections(q *structs.Query) ([]*structs.Collection, error)

	// SetCollectionSize caches the aggregate byte size for a collection.
	SetCollectionSize(id string, size int64) error

	// InsertJobError appends a row to the review ledger; no deduplication.
	InsertJobError(e *structs.JobError) error

	// JobErrors returns ledger rows matching the given query.
	JobErrors(q *structs.Query) ([]*structs.JobError, error)

	// DeleteJobErrors removes the row(s) for one job and returns the count.
	DeleteJobErrors(jobID string) (int64, error)

	// ClearJobErrors empties the ledger. Only the sources full-rebuild
	// trigger calls this.
	ClearJobErrors() error

	Close() error
}
