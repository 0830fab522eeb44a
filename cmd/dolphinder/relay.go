package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdRelay = &cli.Command{
	Name:  "relay",
	Usage: "sub-commands for the sponsorship relay",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:   "health",
			Usage:  "check whether sponsored submission is available",
			Action: runRelayHealth,
		},
	},
}

func runRelayHealth(cctx *cli.Context) error {
	if newSponsorClient(cctx).Health(context.Background()) {
		fmt.Println("ok")
		return nil
	}
	return fmt.Errorf("relay unavailable: %s", cctx.String("relay-url"))
}
