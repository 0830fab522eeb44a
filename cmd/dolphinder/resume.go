package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// résumé collection commands: experience, education, certificates, skills

var orderIndexFlag = &cli.Uint64Flag{
	Name:  "order",
	Usage: "display order (higher shows first)",
	Value: 0,
}

var cmdExperience = &cli.Command{
	Name:  "experience",
	Usage: "sub-commands for experience entries",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:   "add",
			Action: runExperienceAdd,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "title", Required: true},
				&cli.StringFlag{Name: "company", Required: true},
				&cli.StringFlag{Name: "start", Value: ""},
				&cli.StringFlag{Name: "end", Value: ""},
				&cli.StringFlag{Name: "description", Value: ""},
				orderIndexFlag,
			},
		},
		&cli.Command{
			Name:      "update",
			ArgsUsage: `<entry-id>`,
			Action:    runExperienceUpdate,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "title", Required: true},
				&cli.StringFlag{Name: "company", Required: true},
				&cli.StringFlag{Name: "start", Value: ""},
				&cli.StringFlag{Name: "end", Value: ""},
				&cli.StringFlag{Name: "description", Value: ""},
				orderIndexFlag,
			},
		},
		&cli.Command{
			Name:      "rm",
			ArgsUsage: `<entry-id>`,
			Action:    runExperienceRemove,
		},
	},
}

func entryIDArg(cctx *cli.Context) (uint64, error) {
	if cctx.Args().Len() < 1 {
		return 0, fmt.Errorf("need an entry id argument")
	}
	var id uint64
	if _, err := fmt.Sscanf(cctx.Args().First(), "%d", &id); err != nil {
		return 0, fmt.Errorf("entry id must be an integer: %q", cctx.Args().First())
	}
	return id, nil
}

func runExperienceAdd(cctx *cli.Context) error {
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).AddExperience(
		profile.ID,
		cctx.String("title"),
		cctx.String("company"),
		cctx.String("start"),
		cctx.String("end"),
		cctx.String("description"),
		cctx.Uint64("order"),
	)
	return submit(cctx, tx)
}

func runExperienceUpdate(cctx *cli.Context) error {
	id, err := entryIDArg(cctx)
	if err != nil {
		return err
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).UpdateExperience(
		profile.ID,
		id,
		cctx.String("title"),
		cctx.String("company"),
		cctx.String("start"),
		cctx.String("end"),
		cctx.String("description"),
		cctx.Uint64("order"),
	)
	return submit(cctx, tx)
}

func runExperienceRemove(cctx *cli.Context) error {
	id, err := entryIDArg(cctx)
	if err != nil {
		return err
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).RemoveExperience(profile.ID, id))
}

var cmdEducation = &cli.Command{
	Name:  "education",
	Usage: "sub-commands for education entries",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:   "add",
			Action: runEducationAdd,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "school", Required: true},
				&cli.StringFlag{Name: "degree", Value: ""},
				&cli.StringFlag{Name: "field", Value: ""},
				&cli.StringFlag{Name: "start", Value: ""},
				&cli.StringFlag{Name: "end", Value: ""},
				orderIndexFlag,
			},
		},
		&cli.Command{
			Name:      "update",
			ArgsUsage: `<entry-id>`,
			Action:    runEducationUpdate,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "school", Required: true},
				&cli.StringFlag{Name: "degree", Value: ""},
				&cli.StringFlag{Name: "field", Value: ""},
				&cli.StringFlag{Name: "start", Value: ""},
				&cli.StringFlag{Name: "end", Value: ""},
				orderIndexFlag,
			},
		},
		&cli.Command{
			Name:      "rm",
			ArgsUsage: `<entry-id>`,
			Action:    runEducationRemove,
		},
	},
}

func runEducationAdd(cctx *cli.Context) error {
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).AddEducation(
		profile.ID,
		cctx.String("school"),
		cctx.String("degree"),
		cctx.String("field"),
		cctx.String("start"),
		cctx.String("end"),
		cctx.Uint64("order"),
	)
	return submit(cctx, tx)
}

func runEducationUpdate(cctx *cli.Context) error {
	id, err := entryIDArg(cctx)
	if err != nil {
		return err
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).UpdateEducation(
		profile.ID,
		id,
		cctx.String("school"),
		cctx.String("degree"),
		cctx.String("field"),
		cctx.String("start"),
		cctx.String("end"),
		cctx.Uint64("order"),
	)
	return submit(cctx, tx)
}

func runEducationRemove(cctx *cli.Context) error {
	id, err := entryIDArg(cctx)
	if err != nil {
		return err
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).RemoveEducation(profile.ID, id))
}

var cmdCertificate = &cli.Command{
	Name:  "certificate",
	Usage: "sub-commands for certificate entries",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:   "add",
			Action: runCertificateAdd,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "issuer", Value: ""},
				&cli.StringFlag{Name: "date", Value: ""},
				&cli.StringFlag{Name: "url", Value: ""},
				orderIndexFlag,
			},
		},
		&cli.Command{
			Name:      "update",
			ArgsUsage: `<entry-id>`,
			Action:    runCertificateUpdate,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "issuer", Value: ""},
				&cli.StringFlag{Name: "date", Value: ""},
				&cli.StringFlag{Name: "url", Value: ""},
				orderIndexFlag,
			},
		},
		&cli.Command{
			Name:      "rm",
			ArgsUsage: `<entry-id>`,
			Action:    runCertificateRemove,
		},
	},
}

func runCertificateAdd(cctx *cli.Context) error {
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).AddCertificate(
		profile.ID,
		cctx.String("name"),
		cctx.String("issuer"),
		cctx.String("date"),
		cctx.String("url"),
		cctx.Uint64("order"),
	)
	return submit(cctx, tx)
}

func runCertificateUpdate(cctx *cli.Context) error {
	id, err := entryIDArg(cctx)
	if err != nil {
		return err
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	tx := newBuilder(cctx).UpdateCertificate(
		profile.ID,
		id,
		cctx.String("name"),
		cctx.String("issuer"),
		cctx.String("date"),
		cctx.String("url"),
		cctx.Uint64("order"),
	)
	return submit(cctx, tx)
}

func runCertificateRemove(cctx *cli.Context) error {
	id, err := entryIDArg(cctx)
	if err != nil {
		return err
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).RemoveCertificate(profile.ID, id))
}

var cmdSkill = &cli.Command{
	Name:  "skill",
	Usage: "sub-commands for skills",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "add",
			ArgsUsage: `<name>`,
			Action:    runSkillAdd,
		},
		&cli.Command{
			Name:      "rm",
			ArgsUsage: `<index>`,
			Usage:     "remove a skill by its position in the skill list",
			Action:    runSkillRemove,
		},
	},
}

func runSkillAdd(cctx *cli.Context) error {
	name := cctx.Args().First()
	if name == "" {
		return fmt.Errorf("need a skill name argument")
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).AddSkill(profile.ID, name))
}

func runSkillRemove(cctx *cli.Context) error {
	idx, err := entryIDArg(cctx)
	if err != nil {
		return err
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).RemoveSkill(profile.ID, idx))
}
