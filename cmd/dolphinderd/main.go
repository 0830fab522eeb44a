package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/dolphinder-social/dolphinder/contract"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "dolphinderd",
		Usage:   "read-side API daemon for the Dolphinder network",
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
				Name:    "package-id",
				Usage:   "Dolphinder contract package object id",
				Value:   contract.TestnetPackageID,
				EnvVars: []string{"DOLPHINDER_PACKAGE_ID"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"DOLPHINDERD_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			&cli.Command{
				Name:   "serve",
				Usage:  "run the API daemon",
				Action: runServeCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "bind",
						Usage:   "Specify the local IP/port to bind to",
						Value:   ":6810",
						EnvVars: []string{"DOLPHINDERD_BIND"},
					},
					&cli.StringFlag{
						Name:    "metrics-listen",
						Usage:   "IP or address, and port, to listen on for metrics APIs",
						Value:   ":6811",
						EnvVars: []string{"DOLPHINDERD_METRICS_LISTEN"},
					},
					&cli.IntFlag{
						Name:    "cache-size",
						Usage:   "max cached entries per resource kind",
						Value:   10_000,
						EnvVars: []string{"DOLPHINDERD_CACHE_SIZE"},
					},
					&cli.DurationFlag{
						Name:    "cache-ttl",
						Usage:   "expiry for cached ledger reads",
						Value:   defaultCacheTTL,
						EnvVars: []string{"DOLPHINDERD_CACHE_TTL"},
					},
					&cli.IntFlag{
						Name:    "rpc-rate-limit",
						Usage:   "max fullnode requests per second (0 disables)",
						Value:   50,
						EnvVars: []string{"DOLPHINDERD_RPC_RATE_LIMIT"},
					},
				},
			},
		},
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info", "":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		fmt.Fprintln(os.Stderr, "unknown log level, defaulting to info")
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
