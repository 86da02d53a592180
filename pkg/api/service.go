package api

import (
	"github.com/rs/zerolog"

	"github.com/geofabric/batch/internal/core"
	"github.com/geofabric/batch/pkg/compute"
	"github.com/geofabric/batch/pkg/database"
	"github.com/geofabric/batch/pkg/objectstore"
	"github.com/geofabric/batch/pkg/sources"
)

func NewAPI(db database.Database, sub compute.Substrate, fetch sources.Fetcher, store objectstore.ObjectStore, logs compute.LogStream, opts *core.Options, log zerolog.Logger) (API, error) {
	return core.NewService(db, sub, fetch, store, logs, opts, log)
}
