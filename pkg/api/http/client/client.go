package client

import (
	"fmt"
	"net/url"

	"github.com/geofabric/batch/pkg/api/http/common"
	"github.com/geofabric/batch/pkg/structs"
)

// Client is a thin typed wrapper over the coordinator's HTTP API.
type Client struct {
	url *url.URL
}

func New(address string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{url: u}, err
}

func (c *Client) CreateRun(req *structs.CreateRunRequest) (*structs.Run, error) {
	addr := c.addr(common.API_RUNS)
	var out structs.Run
	return &out, genericPost(addr, req, &out)
}

func (c *Client) CloseRun(id string) error {
	addr := c.addr(fmt.Sprintf("%s/%s/close", common.API_RUNS, id))
	var out common.UpdateResponse
	return genericPatch(addr, nil, &out)
}

func (c *Client) Runs(q *structs.Query) ([]*structs.Run, error) {
	addr := c.addr(common.API_RUNS)
	setQueryString(addr, q)
	var out []*structs.Run
	return out, genericGet(addr, &out)
}

func (c *Client) AttachJobs(req *structs.AttachJobsRequest) (*structs.AttachReport, error) {
	addr := c.addr(fmt.Sprintf("%s/%s/jobs", common.API_RUNS, req.RunID))
	var out structs.AttachReport
	return &out, genericPost(addr, req, &out)
}

func (c *Client) Jobs(q *structs.Query) ([]*structs.Job, error) {
	addr := c.addr(common.API_JOBS)
	setQueryString(addr, q)
	var out []*structs.Job
	return out, genericGet(addr, &out)
}

func (c *Client) UpdateJobStatus(req *structs.UpdateJobStatusRequest) (*structs.Job, error) {
	addr := c.addr(fmt.Sprintf("%s/%s/status", common.API_JOBS, req.JobID))
	var out structs.Job
	return &out, genericPatch(addr, req, &out)
}

func (c *Client) Rerun(jobID string) (*structs.RerunResponse, error) {
	addr := c.addr(fmt.Sprintf("%s/%s/rerun", common.API_JOBS, jobID))
	var out structs.RerunResponse
	return &out, genericPost(addr, nil, &out)
}

func (c *Client) JobLog(jobID string) (string, error) {
	addr := c.addr(fmt.Sprintf("%s/%s/log", common.API_JOBS, jobID))
	var out common.LogResponse
	return out.Log, genericGet(addr, &out)
}

func (c *Client) JobArtifacts(jobID string) (map[string]string, error) {
	addr := c.addr(fmt.Sprintf("%s/%s/artifacts", common.API_JOBS, jobID))
	var out common.ArtifactsResponse
	return out.Artifacts, genericGet(addr, &out)
}

func (c *Client) Results(q *structs.Query) ([]*structs.Result, error) {
	addr := c.addr(common.API_RESULTS)
	setQueryString(addr, q)
	var out []*structs.Result
	return out, genericGet(addr, &out)
}

func (c *Client) SetResultFabric(id string, fabric bool) error {
	addr := c.addr(fmt.Sprintf("%s/%s/fabric", common.API_RESULTS, id))
	var out common.UpdateResponse
	return genericPatch(addr, map[string]bool{"fabric": fabric}, &out)
}

func (c *Client) Collections(q *structs.Query) ([]*structs.Collection, error) {
	addr := c.addr(common.API_COLLECTIONS)
	setQueryString(addr, q)
	var out []*structs.Collection
	return out, genericGet(addr, &out)
}

func (c *Client) CreateCollection(req *structs.CreateCollectionRequest) (*structs.Collection, error) {
	addr := c.addr(common.API_COLLECTIONS)
	var out structs.Collection
	return &out, genericPost(addr, req, &out)
}

func (c *Client) UpdateCollection(id string, req *structs.CreateCollectionRequest) (*structs.Collection, error) {
	addr := c.addr(fmt.Sprintf("%s/%s", common.API_COLLECTIONS, id))
	var out structs.Collection
	return &out, genericPut(addr, req, &out)
}

func (c *Client) ResolveMembership(id string) (*structs.CollectionManifest, error) {
	addr := c.addr(fmt.Sprintf("%s/%s/manifest", common.API_COLLECTIONS, id))
	var out structs.CollectionManifest
	return &out, genericGet(addr, &out)
}

func (c *Client) JobErrors(q *structs.Query) ([]*structs.JobError, error) {
	addr := c.addr(common.API_JOB_ERRORS)
	setQueryString(addr, q)
	var out []*structs.JobError
	return out, genericGet(addr, &out)
}

func (c *Client) CreateJobError(req *structs.CreateJobErrorRequest) (*structs.JobError, error) {
	addr := c.addr(common.API_JOB_ERRORS)
	var out structs.JobError
	return &out, genericPost(addr, req, &out)
}

func (c *Client) ResolveJobError(jobID string) (int64, error) {
	addr := c.addr(fmt.Sprintf("%s/%s", common.API_JOB_ERRORS, jobID))
	var out common.UpdateResponse
	return out.Updated, genericDelete(addr, &out)
}

func (c *Client) RunScheduleTrigger(kind string) error {
	addr := c.addr(fmt.Sprintf("%s/%s", common.API_TRIGGERS, kind))
	return genericPost(addr, nil, &map[string]bool{})
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}
