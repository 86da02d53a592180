package main

import (
	"fmt"

	"github.com/geofabric/batch/pkg/api/http/client"
)

const (
	docTrigger = `Fire a schedule trigger against a running coordinator`
)

type optsTrigger struct {
	optsGeneral

	APIAddr string `long:"api-addr" env:"API_ADDR" description:"Coordinator API address" default:"http://localhost:8100"`

	Args struct {
		Kind string `positional-arg-name:"kind" description:"Trigger kind (sources, collect, level, close, scale)"`
	} `positional-args:"true" required:"true"`
}

func (c *optsTrigger) Execute(args []string) error {
	// Intended to be run from cron or CI; the coordinator does not schedule
	// itself.
	cli, err := client.New(c.APIAddr)
	if err != nil {
		return err
	}

	err = cli.RunScheduleTrigger(c.Args.Kind)
	if err != nil {
		return fmt.Errorf("trigger %s failed: %w", c.Args.Kind, err)
	}
	return nil
}
