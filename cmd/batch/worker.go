package main

import (
	"github.com/geofabric/batch/internal/utils"
	"github.com/geofabric/batch/pkg/api/http/client"
	"github.com/geofabric/batch/pkg/compute"
	"github.com/geofabric/batch/pkg/structs"
)

const (
	docWorker = `Run a conversion worker`
)

type optsWorker struct {
	optsGeneral
	optsQueue

	APIAddr string `long:"api-addr" env:"API_ADDR" description:"Coordinator API address" default:"http://localhost:8100"`
}

func (c *optsWorker) Execute(args []string) error {
	// This runs a worker that consumes work items from the substrate. The
	// conversion itself is a stand-in; a real deployment registers a handler
	// that fetches and converts the dataset before reporting.
	//
	// Completions are reported through the coordinator API, never written to
	// the database directly.
	logg := setupLogger(c.Debug)

	tlsCfg, err := utils.TLSConfig(c.QueueTLSCaCert, c.QueueTLSCert, c.QueueTLSKey)
	if err != nil {
		return err
	}

	sub, err := compute.NewAsynqSubstrate(&compute.Options{URL: c.url(), TLSConfig: tlsCfg})
	if err != nil {
		return err
	}
	defer sub.Close()

	cli, err := client.New(c.APIAddr)
	if err != nil {
		return err
	}

	err = sub.Register(func(items []*structs.WorkItem) error {
		for _, wi := range items {
			logg.Info().Str("job_id", wi.JobID).Str("source", wi.SourceName).Str("layer", wi.Layer).Str("name", wi.Name).Msg("picked up work item")

			_, err := cli.UpdateJobStatus(&structs.UpdateJobStatusRequest{
				JobID:  wi.JobID,
				Status: structs.SUCCESS,
				Update: &structs.StatusUpdate{Message: "no-op worker"},
			})
			if err != nil {
				logg.Warn().Err(err).Str("job_id", wi.JobID).Msg("failed to report completion")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return sub.Run()
}
