package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dolphinder-social/dolphinder/contract"
)

var adminCapFlag = &cli.StringFlag{
	Name:    "admin-cap",
	Usage:   "admin capability object id (possession is the authorization)",
	Value:   contract.TestnetAdminCapID,
	EnvVars: []string{"DOLPHINDER_ADMIN_CAP"},
}

var cmdAdmin = &cli.Command{
	Name:  "admin",
	Usage: "sub-commands requiring the admin capability",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "verify",
			Usage:     "mark a profile as verified",
			ArgsUsage: `<profile-id>`,
			Flags:     []cli.Flag{adminCapFlag},
			Action:    runAdminVerify,
		},
		&cli.Command{
			Name:      "unverify",
			Usage:     "clear a profile's verified flag",
			ArgsUsage: `<profile-id>`,
			Flags:     []cli.Flag{adminCapFlag},
			Action:    runAdminUnverify,
		},
	},
}

func runAdminVerify(cctx *cli.Context) error {
	profileID := cctx.Args().First()
	if profileID == "" {
		return fmt.Errorf("need a profile id argument")
	}
	tx := newBuilder(cctx).VerifyProfile(cctx.String("admin-cap"), profileID)
	return submit(cctx, tx)
}

func runAdminUnverify(cctx *cli.Context) error {
	profileID := cctx.Args().First()
	if profileID == "" {
		return fmt.Errorf("need a profile id argument")
	}
	tx := newBuilder(cctx).UnverifyProfile(cctx.String("admin-cap"), profileID)
	return submit(cctx, tx)
}
