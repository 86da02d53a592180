package core

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/geofabric/batch/internal/utils"
	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/sources"
	"github.com/geofabric/batch/pkg/structs"
)

// AttachJobs explodes the given entries into tuples, inserts one pending job
// per tuple, submits each to the substrate and finally closes the run.
//
// Per-entry failures (bad manifest, unknown layer) are reported without
// aborting sibling entries; a closed or unknown run fails the whole call
// before any rows exist.
func (c *Service) AttachJobs(req *structs.AttachJobsRequest) (*structs.AttachReport, error) {
	err := validateAttach(req)
	if err != nil {
		return nil, err
	}

	run, err := c.run(req.RunID)
	if err != nil {
		return nil, err
	}
	if run.Closed {
		return nil, fmt.Errorf("%w: %s", errors.ErrRunClosed, run.ID)
	}

	report := &structs.AttachReport{RunID: run.ID, JobIDs: []string{}}

	// explode entries into tuples; a manifest is fetched at most once per
	// source URL per call
	manifests := map[string]*structs.SourceManifest{}
	tuples := []*structs.AttachEntry{}
	for _, entry := range req.Entries {
		resolved, err := c.explodeEntry(entry, manifests)
		if err != nil {
			report.Errors = append(report.Errors, attachError(entry, err))
			continue
		}
		tuples = append(tuples, resolved...)
	}

	jobs := make([]*structs.Job, len(tuples))
	for i, tup := range tuples {
		jobs[i] = &structs.Job{
			ID:         utils.NewRandomID(),
			RunID:      run.ID,
			Source:     tup.Source,
			SourceName: sources.ShortName(tup.Source),
			Layer:      tup.Layer,
			Name:       tup.Name,
			Status:     structs.PENDING,
		}
	}

	err = c.db.AttachJobs(run.ID, jobs)
	if err != nil {
		return nil, err
	}

	for _, job := range jobs {
		report.JobIDs = append(report.JobIDs, job.ID)
		err = c.submitJob(job)
		if err != nil {
			report.Errors = append(report.Errors, &structs.AttachError{
				Source: job.Source,
				Layer:  job.Layer,
				Name:   job.Name,
				Error:  err.Error(),
			})
		}
	}

	err = c.CloseRun(run.ID)
	if err != nil {
		return report, err
	}
	return report, nil
}

// Rerun creates a fresh job for an existing job's tuple; against the same
// run if still open, else against a newly created run. The original job is
// untouched.
func (c *Service) Rerun(jobID string) (*structs.RerunResponse, error) {
	job, err := c.job(jobID)
	if err != nil {
		return nil, err
	}
	run, err := c.run(job.RunID)
	if err != nil {
		return nil, err
	}

	if run.Closed {
		run, err = c.CreateRun(&structs.CreateRunRequest{Live: run.Live, GitHub: run.GitHub})
		if err != nil {
			return nil, err
		}
	}

	report, err := c.AttachJobs(&structs.AttachJobsRequest{
		RunID: run.ID,
		Entries: []*structs.AttachEntry{
			{Source: job.Source, Layer: job.Layer, Name: job.Name},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(report.JobIDs) != 1 {
		return nil, fmt.Errorf("%w: rerun of %s created no job", errors.ErrSubmission, jobID)
	}
	return &structs.RerunResponse{JobID: report.JobIDs[0], RunID: run.ID}, nil
}

// explodeEntry resolves one attach entry into tuples, fetching & caching the
// source manifest when the entry doesn't pin both layer and name.
func (c *Service) explodeEntry(entry *structs.AttachEntry, manifests map[string]*structs.SourceManifest) ([]*structs.AttachEntry, error) {
	if entry.Layer != "" && entry.Name != "" {
		return []*structs.AttachEntry{entry}, nil
	}
	man, ok := manifests[entry.Source]
	if !ok {
		var err error
		man, err = c.fetch.Manifest(entry.Source)
		if err != nil {
			return nil, err
		}
		manifests[entry.Source] = man
	}
	return sources.Explode(entry, man)
}

// submitJob hands one job to the substrate. Submission failure marks the job
// FAIL with the error as its message so every tuple ends with a tracked job.
func (c *Service) submitJob(job *structs.Job) error {
	handle, err := c.sub.Submit(&structs.WorkItem{
		JobID:      job.ID,
		RunID:      job.RunID,
		Source:     job.Source,
		SourceName: job.SourceName,
		Layer:      job.Layer,
		Name:       job.Name,
	})
	if err == nil {
		return c.db.SetJobSubstrateID(job.ID, handle)
	}

	c.log.Warn().Err(err).Str("job", job.ID).Msg("substrate rejected work item")
	failure := fmt.Errorf("%w: %v", errors.ErrSubmission, err)
	_, _, serr := c.db.SetJobStatus(job.ID, structs.FAIL, &structs.StatusUpdate{Message: failure.Error()}, false)
	if serr != nil {
		return serr
	}
	err = c.recordFailure(job.ID, failure.Error())
	if err != nil {
		return err
	}
	return failure
}

func attachError(entry *structs.AttachEntry, err error) *structs.AttachError {
	return &structs.AttachError{
		Source: entry.Source,
		Layer:  entry.Layer,
		Name:   entry.Name,
		Error:  err.Error(),
	}
}

func validateAttach(req *structs.AttachJobsRequest) error {
	if !utils.IsValidID(req.RunID) {
		return fmt.Errorf("%w: %s is not a valid run id", errors.ErrInvalidArg, req.RunID)
	}
	if len(req.Entries) == 0 {
		return errors.ErrNoEntries
	}
	if len(req.Entries) > maxEntries {
		return fmt.Errorf("%w: %d entries above max %d", errors.ErrMaxExceeded, len(req.Entries), maxEntries)
	}
	for _, e := range req.Entries {
		if e.Source == "" {
			return fmt.Errorf("%w: entry missing source", errors.ErrBadTuple)
		}
		_, err := url.Parse(e.Source)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", errors.ErrBadTuple, e.Source, err)
		}
		if len(e.Layer) > maxNameLength || len(e.Name) > maxNameLength {
			return fmt.Errorf("%w: layer / name above %d chars", errors.ErrMaxExceeded, maxNameLength)
		}
	}
	// deterministic reports regardless of caller ordering
	sort.SliceStable(req.Entries, func(i, j int) bool {
		if req.Entries[i].Source != req.Entries[j].Source {
			return req.Entries[i].Source < req.Entries[j].Source
		}
		if req.Entries[i].Layer != req.Entries[j].Layer {
			return req.Entries[i].Layer < req.Entries[j].Layer
		}
		return req.Entries[i].Name < req.Entries[j].Name
	})
	return nil
}
