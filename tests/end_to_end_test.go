package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geofabric/batch/pkg/structs"
)

// TestRun01 End to End test
//
// - serves a manifest with 2 layers, 1 dataset each
// - creates a live run and attaches the source
// - expects 2 jobs and the run closed behind the attach
// - waits for the harness worker to report both jobs done
// - expects both tuples promoted to results
// - flips the fabric flag on one result
func TestRun01(t *testing.T) {
	requireHarness(t)

	svr := serveManifest(t, &structs.SourceManifest{
		Schema: structs.SourceManifestSchema,
		Layers: map[string][]structs.ManifestEntry{
			"roads": {{Name: "main"}},
			"water": {{Name: "lakes"}},
		},
	})

	run, err := setup.client.CreateRun(&structs.CreateRunRequest{Live: true})
	assert.Nil(t, err)

	report, err := setup.client.AttachJobs(&structs.AttachJobsRequest{
		RunID:   run.ID,
		Entries: []*structs.AttachEntry{{Source: svr.URL + "/us.json"}},
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(report.JobIDs))
	assert.Equal(t, 0, len(report.Errors))

	// the run closes once the attach has fanned out
	runs, err := setup.client.Runs(&structs.Query{RunIDs: []string{run.ID}})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(runs))
	assert.True(t, runs[0].Closed)

	query := &structs.Query{Limit: 100, JobIDs: report.JobIDs}
	waitFor(t, "jobs to finish", func() bool {
		jobs, err := setup.client.Jobs(query)
		if err != nil || len(jobs) != 2 {
			return false
		}
		for _, j := range jobs {
			if !structs.IsTerminalStatus(j.Status) {
				return false
			}
		}
		return true
	})

	jobs, err := setup.client.Jobs(query)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(jobs))
	for _, j := range jobs {
		assert.Equal(t, structs.SUCCESS, j.Status)
		assert.Equal(t, "us", j.SourceName)
	}

	// live run, so both tuples promote
	results, err := setup.client.Results(&structs.Query{Limit: 100, Sources: []string{"us"}})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(results))

	err = setup.client.SetResultFabric(results[0].ID, true)
	assert.Nil(t, err)

	results, err = setup.client.Results(&structs.Query{Limit: 100, ResultIDs: []string{results[0].ID}})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(results))
	assert.True(t, results[0].Fabric)
}

// TestRun02 End to End test
//
// - creates an ad hoc (non live) run with a pinned tuple, no manifest fetch
// - waits for the job to finish
// - expects no result promoted
// - reruns the job; the original run is closed so a fresh run is created
// - records and resolves a review ledger entry for the job
func TestRun02(t *testing.T) {
	requireHarness(t)

	run, err := setup.client.CreateRun(&structs.CreateRunRequest{})
	assert.Nil(t, err)

	report, err := setup.client.AttachJobs(&structs.AttachJobsRequest{
		RunID: run.ID,
		Entries: []*structs.AttachEntry{
			{Source: "https://sources.test/ca.json", Layer: "roads", Name: "main"},
		},
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(report.JobIDs))
	jobID := report.JobIDs[0]

	query := &structs.Query{Limit: 10, JobIDs: []string{jobID}}
	waitFor(t, "job to finish", func() bool {
		jobs, err := setup.client.Jobs(query)
		return err == nil && len(jobs) == 1 && structs.IsTerminalStatus(jobs[0].Status)
	})

	// ad hoc runs never promote
	results, err := setup.client.Results(&structs.Query{Limit: 10, Sources: []string{"ca"}})
	assert.Nil(t, err)
	assert.Equal(t, 0, len(results))

	// rerun lands on a fresh run since the original closed behind the attach
	rr, err := setup.client.Rerun(jobID)
	assert.Nil(t, err)
	assert.NotEqual(t, jobID, rr.JobID)
	assert.NotEqual(t, run.ID, rr.RunID)

	waitFor(t, "rerun job to finish", func() bool {
		jobs, err := setup.client.Jobs(&structs.Query{Limit: 10, JobIDs: []string{rr.JobID}})
		return err == nil && len(jobs) == 1 && structs.IsTerminalStatus(jobs[0].Status)
	})

	// review ledger entries hang off the job and clear on demand
	je, err := setup.client.CreateJobError(&structs.CreateJobErrorRequest{JobID: jobID, Message: "flagged for review"})
	assert.Nil(t, err)
	assert.Equal(t, jobID, je.JobID)

	ledger, err := setup.client.JobErrors(&structs.Query{Limit: 10, JobIDs: []string{jobID}})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(ledger))

	cleared, err := setup.client.ResolveJobError(jobID)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), cleared)
}
