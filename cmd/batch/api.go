package main

import (
	"github.com/geofabric/batch/internal/core"
	"github.com/geofabric/batch/internal/utils"
	"github.com/geofabric/batch/pkg/api"
	"github.com/geofabric/batch/pkg/api/http/server"
	"github.com/geofabric/batch/pkg/compute"
	"github.com/geofabric/batch/pkg/database"
	"github.com/geofabric/batch/pkg/objectstore"
	"github.com/geofabric/batch/pkg/sources"
)

const (
	docApi = `Run the coordinator API server`
)

type optsAPI struct {
	optsGeneral
	optsDatabase
	optsQueue
	optsStore
	optsService

	Addr string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8100"`
}

func (c *optsAPI) Execute(args []string) error {
	// This runs the coordinator's API server (http). Callers create runs, attach
	// jobs, report completions and read results over this surface.
	//
	// Work submitted here lands on the compute substrate; the workers that pick
	// it up are separate processes (see the worker command) and report back via
	// this same API.
	logg := setupLogger(c.Debug)

	tlsCfg, err := utils.TLSConfig(c.QueueTLSCaCert, c.QueueTLSCert, c.QueueTLSKey)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(&database.Options{URL: c.optsDatabase.url()})
	if err != nil {
		return err
	}

	sub, err := compute.NewAsynqSubstrate(&compute.Options{URL: c.optsQueue.url(), TLSConfig: tlsCfg})
	if err != nil {
		return err
	}

	store, err := objectstore.New(&objectstore.Options{
		Backend:  c.StoreBackend,
		Bucket:   c.StoreBucket,
		Endpoint: c.StoreEndpoint,
		Region:   c.StoreRegion,
		Host:     c.StoreHost,
		Secret:   c.StoreSecret,
	})
	if err != nil {
		return err
	}

	svc, err := api.NewAPI(
		db,
		sub,
		sources.NewHTTPFetcher(),
		store,
		compute.NewHTTPLogStream(),
		&core.Options{Catalog: c.Sources, MaxRunAge: c.MaxRunAge},
		logg,
	)
	if err != nil {
		return err
	}
	defer svc.Close()

	s := server.NewServer(c.Addr, c.Debug)
	return s.ServeForever(svc)
}
