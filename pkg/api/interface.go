package api

import (
	"github.com/geofabric/batch/pkg/structs"
)

// API represents the operations coordinator servers expose.
type API interface {
	// Implemented in internal/core.Service

	CreateRun(req *structs.CreateRunRequest) (*structs.Run, error)
	CloseRun(id string) error
	Runs(q *structs.Query) ([]*structs.Run, error)

	AttachJobs(req *structs.AttachJobsRequest) (*structs.AttachReport, error)
	Jobs(q *structs.Query) ([]*structs.Job, error)
	UpdateJobStatus(req *structs.UpdateJobStatusRequest) (*structs.Job, error)
	Rerun(jobID string) (*structs.RerunResponse, error)
	JobLog(jobID string) (string, error)
	JobArtifacts(jobID string) (map[string]string, error)

	Results(q *structs.Query) ([]*structs.Result, error)
	SetResultFabric(id string, fabric bool) error

	Collections(q *structs.Query) ([]*structs.Collection, error)
	CreateCollection(req *structs.CreateCollectionRequest) (*structs.Collection, error)
	UpdateCollection(id string, req *structs.CreateCollectionRequest) (*structs.Collection, error)
	ResolveMembership(collectionID string) (*structs.CollectionManifest, error)

	JobErrors(q *structs.Query) ([]*structs.JobError, error)
	CreateJobError(req *structs.CreateJobErrorRequest) (*structs.JobError, error)
	ResolveJobError(jobID string) (int64, error)

	RunScheduleTrigger(kind string) error

	Close() error
}

type Server interface {
	ServeForever(api API) error
	Close() error
}
