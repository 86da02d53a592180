package main

import (
	"github.com/geofabric/batch/pkg/database"
)

const (
	docMigrate = `Apply database migrations`
)

type optsMigrate struct {
	optsGeneral
	optsDatabase
}

func (c *optsMigrate) Execute(args []string) error {
	logg := setupLogger(c.Debug)

	err := database.Migrate(&database.Options{URL: c.url()})
	if err != nil {
		return err
	}

	logg.Info().Msg("migrations applied")
	return nil
}
