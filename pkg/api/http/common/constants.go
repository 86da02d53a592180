package common

const (
	// API_RUNS is used to get or create runs
	API_RUNS = "/api/v1/runs"

	// API_JOBS is used to get jobs; status updates & reruns hang off a job id
	API_JOBS = "/api/v1/jobs"

	// API_RESULTS is used to get results & toggle fabric inclusion
	API_RESULTS = "/api/v1/results"

	// API_COLLECTIONS is used to manage collections & resolve membership
	API_COLLECTIONS = "/api/v1/collections"

	// API_JOB_ERRORS is used to review & resolve the job error ledger
	API_JOB_ERRORS = "/api/v1/job_errors"

	// API_TRIGGERS is used by the external scheduler
	API_TRIGGERS = "/api/v1/triggers"
)
