package core

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/geofabric/batch/internal/utils"
	"github.com/geofabric/batch/pkg/compute"
	"github.com/geofabric/batch/pkg/database"
	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/objectstore"
	"github.com/geofabric/batch/pkg/sources"
	"github.com/geofabric/batch/pkg/structs"
)

const (
	// max values
	maxEntries       = 1000
	maxMessageLength = 10000
	maxGithubLength  = 100000
	maxNameLength    = 255

	// paging
	queryPageSize = 2000

	// defaults
	defMaxRunAge = 24 * time.Hour
)

// Options tune service behaviour outside of request scope.
type Options struct {
	// Catalog is the full list of source URLs a production rebuild covers.
	Catalog []string

	// MaxRunAge is how long a run may stay open before the close trigger
	// reaps it.
	MaxRunAge time.Duration
}

func (o *Options) SetDefaults() {
	if o.MaxRunAge <= 0 {
		o.MaxRunAge = defMaxRunAge
	}
}

// Service wires the database, compute substrate, manifest fetcher and object
// store together behind the coordinator's operations.
type Service struct {
	db    database.Database
	sub   compute.Substrate
	fetch sources.Fetcher
	store objectstore.ObjectStore
	logs  compute.LogStream
	opts  *Options
	log   zerolog.Logger
}

func NewService(db database.Database, sub compute.Substrate, fetch sources.Fetcher, store objectstore.ObjectStore, logs compute.LogStream, opts *Options, log zerolog.Logger) (*Service, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()
	return &Service{
		db:    db,
		sub:   sub,
		fetch: fetch,
		store: store,
		logs:  logs,
		opts:  opts,
		log:   log,
	}, nil
}

func (c *Service) Close() error {
	c.sub.Close()
	c.db.Close()
	return nil
}

func (c *Service) CreateRun(req *structs.CreateRunRequest) (*structs.Run, error) {
	if len(req.GitHub) > maxGithubLength {
		return nil, fmt.Errorf("%w: github metadata above %d bytes", errors.ErrMaxExceeded, maxGithubLength)
	}
	r := &structs.Run{
		ID:     utils.NewRandomID(),
		Live:   req.Live,
		GitHub: req.GitHub,
	}
	err := c.db.InsertRun(r)
	if err != nil {
		return nil, err
	}
	c.log.Info().Str("run", r.ID).Bool("live", r.Live).Msg("created run")
	return r, nil
}

func (c *Service) CloseRun(id string) error {
	if !utils.IsValidID(id) {
		return fmt.Errorf("%w: %s is not a valid run id", errors.ErrInvalidArg, id)
	}
	changed, err := c.db.CloseRun(id)
	if err != nil {
		return err
	}
	if changed {
		c.log.Info().Str("run", id).Msg("closed run")
	}
	return nil
}

func (c *Service) Runs(q *structs.Query) ([]*structs.Run, error) {
	q.Sanitize()
	return c.db.Runs(q)
}

func (c *Service) Jobs(q *structs.Query) ([]*structs.Job, error) {
	q.Sanitize()
	return c.db.Jobs(q)
}

func (c *Service) Results(q *structs.Query) ([]*structs.Result, error) {
	q.Sanitize()
	return c.db.Results(q)
}

func (c *Service) JobErrors(q *structs.Query) ([]*structs.JobError, error) {
	q.Sanitize()
	return c.db.JobErrors(q)
}

// run returns a single run by id, or ErrNotFound.
func (c *Service) run(id string) (*structs.Run, error) {
	runs, err := c.db.Runs(&structs.Query{Limit: 1, RunIDs: []string{id}})
	if err != nil {
		return nil, err
	}
	if len(runs) != 1 {
		return nil, fmt.Errorf("%w: run %s", errors.ErrNotFound, id)
	}
	return runs[0], nil
}

// job returns a single job by id, or ErrNotFound.
func (c *Service) job(id string) (*structs.Job, error) {
	jobs, err := c.db.Jobs(&structs.Query{Limit: 1, JobIDs: []string{id}})
	if err != nil {
		return nil, err
	}
	if len(jobs) != 1 {
		return nil, fmt.Errorf("%w: job %s", errors.ErrNotFound, id)
	}
	return jobs[0], nil
}
