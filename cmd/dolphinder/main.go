package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/dolphinder-social/dolphinder/contract"
	"github.com/dolphinder-social/dolphinder/walrus"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "dolphinder",
		Usage:   "command-line client for the Dolphinder network",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "network",
				Usage:   "ledger network name (mainnet, testnet, devnet)",
				Value:   "testnet",
				EnvVars: []string{"DOLPHINDER_NETWORK"},
			},
			&cli.StringFlag{
				Name:    "fullnode-host",
				Usage:   "fullnode RPC endpoint (overrides the network default)",
				EnvVars: []string{"DOLPHINDER_FULLNODE_HOST"},
			},
			&cli.StringFlag{
				Name:    "relay-url",
				Usage:   "gas sponsorship relay endpoint",
				Value:   "https://sponsor.sui.io/api/sponsor",
				EnvVars: []string{"DOLPHINDER_RELAY_URL"},
			},
			&cli.StringFlag{
				Name:    "package-id",
				Usage:   "Dolphinder contract package object id",
				Value:   contract.TestnetPackageID,
				EnvVars: []string{"DOLPHINDER_PACKAGE_ID"},
			},
			&cli.StringFlag{
				Name:    "registry-id",
				Usage:   "global registry object id",
				Value:   contract.TestnetRegistryID,
				EnvVars: []string{"DOLPHINDER_REGISTRY_ID"},
			},
			&cli.StringFlag{
				Name:    "key-file",
				Usage:   "path to the local signing keyfile",
				Value:   "dolphinder.key",
				EnvVars: []string{"DOLPHINDER_KEY_FILE"},
			},
			&cli.StringFlag{
				Name:    "walrus-publisher",
				Usage:   "Walrus publisher endpoint for uploads",
				Value:   walrus.TestnetPublisherURL,
				EnvVars: []string{"DOLPHINDER_WALRUS_PUBLISHER"},
			},
			&cli.StringFlag{
				Name:    "walrus-aggregator",
				Usage:   "Walrus aggregator endpoint for downloads",
				Value:   walrus.TestnetAggregatorURL,
				EnvVars: []string{"DOLPHINDER_WALRUS_AGGREGATOR"},
			},
		},
	}
	app.Commands = []*cli.Command{
		cmdProfile,
		cmdExperience,
		cmdEducation,
		cmdCertificate,
		cmdSkill,
		cmdPost,
		cmdBlob,
		cmdAdmin,
		cmdKey,
		cmdRelay,
	}
	return app.Run(args)
}
