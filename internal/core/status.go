package core

import (
	"fmt"

	"github.com/geofabric/batch/internal/utils"
	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

// UpdateJobStatus ingests a completion report. Transitions follow the job
// status table: duplicates are a silent no-op, a differing terminal status is
// a conflict. A SUCCESS on a live run promotes the job's tuple result in the
// same transaction as the status write.
func (c *Service) UpdateJobStatus(req *structs.UpdateJobStatusRequest) (*structs.Job, error) {
	err := validateStatusUpdate(req)
	if err != nil {
		return nil, err
	}

	job, err := c.job(req.JobID)
	if err != nil {
		return nil, err
	}
	run, err := c.run(job.RunID)
	if err != nil {
		return nil, err
	}

	promote := run.Live && req.Status == structs.SUCCESS
	job, applied, err := c.db.SetJobStatus(job.ID, req.Status, req.Update, promote)
	if err != nil {
		return nil, err
	}
	if !applied {
		return job, nil
	}

	c.log.Info().Str("job", job.ID).Str("status", string(job.Status)).Bool("promoted", promote).Msg("job finished")

	if req.Status == structs.FAIL || req.Status == structs.WARN {
		err = c.recordFailure(job.ID, job.Message)
		if err != nil {
			return job, err
		}
	}
	return job, nil
}

// JobLog fetches the job's retained log stream, if any.
func (c *Service) JobLog(jobID string) (string, error) {
	job, err := c.job(jobID)
	if err != nil {
		return "", err
	}
	return c.logs.Fetch(job.LogLink)
}

// JobArtifacts signs read URLs for each of a job's output artifacts.
func (c *Service) JobArtifacts(jobID string) (map[string]string, error) {
	job, err := c.job(jobID)
	if err != nil {
		return nil, err
	}
	signed := map[string]string{}
	for name, locator := range job.Output {
		u, err := c.store.SignGet(locator)
		if err != nil {
			return nil, err
		}
		signed[name] = u
	}
	return signed, nil
}

// CreateJobError appends a ledger row for human review; no deduplication.
func (c *Service) CreateJobError(req *structs.CreateJobErrorRequest) (*structs.JobError, error) {
	if !utils.IsValidID(req.JobID) {
		return nil, fmt.Errorf("%w: %s is not a valid job id", errors.ErrInvalidArg, req.JobID)
	}
	if len(req.Message) > maxMessageLength {
		return nil, fmt.Errorf("%w: message above %d chars", errors.ErrMaxExceeded, maxMessageLength)
	}
	_, err := c.job(req.JobID)
	if err != nil {
		return nil, err
	}
	e := &structs.JobError{
		ID:      utils.NewRandomID(),
		JobID:   req.JobID,
		Message: req.Message,
	}
	return e, c.db.InsertJobError(e)
}

// ResolveJobError removes the ledger row(s) for one job from the review
// queue; it returns how many were removed.
func (c *Service) ResolveJobError(jobID string) (int64, error) {
	if !utils.IsValidID(jobID) {
		return 0, fmt.Errorf("%w: %s is not a valid job id", errors.ErrInvalidArg, jobID)
	}
	return c.db.DeleteJobErrors(jobID)
}

func (c *Service) recordFailure(jobID, message string) error {
	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
	}
	return c.db.InsertJobError(&structs.JobError{
		ID:      utils.NewRandomID(),
		JobID:   jobID,
		Message: message,
	})
}

func validateStatusUpdate(req *structs.UpdateJobStatusRequest) error {
	if !utils.IsValidID(req.JobID) {
		return fmt.Errorf("%w: %s is not a valid job id", errors.ErrInvalidArg, req.JobID)
	}
	if !structs.IsTerminalStatus(req.Status) {
		return fmt.Errorf("%w: cannot report status %q", errors.ErrInvalidArg, req.Status)
	}
	if req.Update != nil && len(req.Update.Message) > maxMessageLength {
		return fmt.Errorf("%w: message above %d chars", errors.ErrMaxExceeded, maxMessageLength)
	}
	return nil
}
