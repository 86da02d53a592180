package core

import (
	"fmt"
	"time"

	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

// RunScheduleTrigger dispatches one externally scheduled trigger.
func (c *Service) RunScheduleTrigger(kind string) error {
	k := structs.ToTriggerKind(kind)
	c.log.Info().Str("trigger", string(k)).Msg("running schedule trigger")

	switch k {
	case structs.TriggerSources:
		return c.triggerSources()
	case structs.TriggerCollect:
		return c.triggerCollect()
	case structs.TriggerLevel:
		// level overrides are recomputed by a downstream consumer; accepted
		// here so schedules stay uniform
		return nil
	case structs.TriggerClose:
		return c.triggerClose()
	case structs.TriggerScale:
		// capacity hints are for the substrate operator, nothing to do
		return nil
	}
	return fmt.Errorf("%w: %q", errors.ErrBadTrigger, kind)
}

// triggerSources starts a full production rebuild: the error ledger is
// cleared first so it only ever reflects the newest generation's failures,
// then a fresh live run is created and the whole catalog attached.
func (c *Service) triggerSources() error {
	if len(c.opts.Catalog) == 0 {
		return fmt.Errorf("%w: no catalog configured", errors.ErrNoEntries)
	}

	err := c.db.ClearJobErrors()
	if err != nil {
		return err
	}

	run, err := c.CreateRun(&structs.CreateRunRequest{Live: true})
	if err != nil {
		return err
	}

	entries := make([]*structs.AttachEntry, len(c.opts.Catalog))
	for i, src := range c.opts.Catalog {
		entries[i] = &structs.AttachEntry{Source: src}
	}

	report, err := c.AttachJobs(&structs.AttachJobsRequest{RunID: run.ID, Entries: entries})
	if err != nil {
		return err
	}
	for _, e := range report.Errors {
		c.log.Warn().Str("run", run.ID).Str("source", e.Source).Str("error", e.Error).Msg("rebuild entry failed")
	}
	c.log.Info().Str("run", run.ID).Int("jobs", len(report.JobIDs)).Int("errors", len(report.Errors)).Msg("rebuild scheduled")
	return nil
}

// triggerCollect re-resolves membership for every collection.
func (c *Service) triggerCollect() error {
	q := &structs.Query{Limit: queryPageSize, Offset: 0}
	for {
		cols, err := c.db.Collections(q)
		if err != nil {
			return err
		}
		for _, col := range cols {
			_, err = c.ResolveMembership(col.ID)
			if err != nil {
				c.log.Warn().Err(err).Str("collection", col.ID).Msg("failed to resolve collection")
			}
		}
		if len(cols) < q.Limit {
			return nil
		}
		q.Offset += q.Limit
	}
}

// triggerClose reaps runs left open past the age threshold.
func (c *Service) triggerClose() error {
	cutoff := time.Now().Add(-c.opts.MaxRunAge).Unix()
	closed, err := c.db.CloseExpiredRuns(cutoff)
	if err != nil {
		return err
	}
	if closed > 0 {
		c.log.Info().Int64("closed", closed).Msg("force closed expired runs")
	}
	return nil
}
