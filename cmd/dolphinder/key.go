package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dolphinder-social/dolphinder/wallet"
)

var cmdKey = &cli.Command{
	Name:  "key",
	Usage: "sub-commands for the local signing key",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:   "generate",
			Usage:  "create a new keypair and write the keyfile",
			Action: runKeyGenerate,
		},
		&cli.Command{
			Name:   "show",
			Usage:  "print the address for the local key",
			Action: runKeyShow,
		},
	},
}

func runKeyGenerate(cctx *cli.Context) error {
	path := cctx.String("key-file")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("keyfile exists, refusing to overwrite: %s", path)
	}

	k, err := wallet.GenerateKey()
	if err != nil {
		return err
	}
	if err := k.Save(path); err != nil {
		return err
	}
	fmt.Printf("wrote keyfile: %s\n", path)
	fmt.Println(k.Address())
	return nil
}

func runKeyShow(cctx *cli.Context) error {
	k, err := loadKey(cctx)
	if err != nil {
		return err
	}
	fmt.Println(k.Address())
	return nil
}
