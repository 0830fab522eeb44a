package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdProfile = &cli.Command{
	Name:  "profile",
	Usage: "sub-commands for profiles",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "show",
			Usage:     "fetch a profile with its résumé collections",
			ArgsUsage: `<address>`,
			Action:    runProfileShow,
		},
		&cli.Command{
			Name:   "create",
			Usage:  "create a profile for the local key",
			Action: runProfileCreate,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "bio", Value: ""},
				&cli.StringFlag{Name: "avatar-url", Value: ""},
				&cli.StringFlag{Name: "banner-url", Value: ""},
			},
		},
		&cli.Command{
			Name:   "update",
			Usage:  "update the local key's profile",
			Action: runProfileUpdate,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "bio", Value: ""},
				&cli.StringFlag{Name: "avatar-url", Value: ""},
				&cli.StringFlag{Name: "banner-url", Value: ""},
			},
		},
		&cli.Command{
			Name:      "links",
			Usage:     "replace the profile's social links",
			ArgsUsage: `<url> [<url> ...]`,
			Action:    runProfileLinks,
		},
	},
}

func runProfileShow(cctx *cli.Context) error {
	ctx := context.Background()

	addr := cctx.Args().First()
	if addr == "" {
		return fmt.Errorf("need an address argument")
	}

	loader := newLoader(cctx)
	profile, err := loader.GetProfileByOwner(ctx, addr)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no profile for address: %s", addr)
	}

	experiences, err := loader.GetExperiences(ctx, profile.ID, profile.ExperienceCount)
	if err != nil {
		return err
	}
	education, err := loader.GetEducation(ctx, profile.ID, profile.EducationCount)
	if err != nil {
		return err
	}
	certificates, err := loader.GetCertificates(ctx, profile.ID, profile.CertificateCount)
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"profile":      profile,
		"experience":   experiences,
		"education":    education,
		"certificates": certificates,
	})
}

func runProfileCreate(cctx *cli.Context) error {
	tx := newBuilder(cctx).CreateProfile(
		cctx.String("name"),
		cctx.String("bio"),
		cctx.String("avatar-url"),
		cctx.String("banner-url"),
	)
	return submit(cctx, tx)
}

func runProfileUpdate(cctx *cli.Context) error {
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).UpdateProfile(
		profile.ID,
		cctx.String("name"),
		cctx.String("bio"),
		cctx.String("avatar-url"),
		cctx.String("banner-url"),
	)
	return submit(cctx, tx)
}

func runProfileLinks(cctx *cli.Context) error {
	if cctx.Args().Len() == 0 {
		return fmt.Errorf("need at least one link argument")
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).UpdateSocialLinks(profile.ID, cctx.Args().Slice())
	return submit(cctx, tx)
}
