package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dolphinder-social/dolphinder/appview"
	"github.com/dolphinder-social/dolphinder/contract"
	"github.com/dolphinder-social/dolphinder/sponsor"
	"github.com/dolphinder-social/dolphinder/sui"
	"github.com/dolphinder-social/dolphinder/wallet"
	"github.com/dolphinder-social/dolphinder/walrus"
)

func newLedger(cctx *cli.Context) *sui.Client {
	c := sui.NewClient(cctx.String("network"))
	if host := cctx.String("fullnode-host"); host != "" {
		c.Host = host
	}
	return c
}

func newBuilder(cctx *cli.Context) *contract.Builder {
	return contract.NewBuilder(contract.Config{
		PackageID:  cctx.String("package-id"),
		RegistryID: cctx.String("registry-id"),
	})
}

func newSponsorClient(cctx *cli.Context) *sponsor.Client {
	return sponsor.NewClient(cctx.String("relay-url"), cctx.String("network"))
}

func newWalrusClient(cctx *cli.Context) *walrus.Client {
	return walrus.NewClient(cctx.String("walrus-publisher"), cctx.String("walrus-aggregator"))
}

func newLoader(cctx *cli.Context) *appview.Loader {
	return appview.NewLoader(newLedger(cctx), cctx.String("package-id"))
}

func loadKey(cctx *cli.Context) (*wallet.Key, error) {
	k, err := wallet.LoadKey(cctx.String("key-file"))
	if err != nil {
		return nil, fmt.Errorf("no usable signing key (run 'dolphinder key generate'): %w", err)
	}
	return k, nil
}

// submit runs the sponsored execution pipeline for a built transaction and
// prints the relay result.
func submit(cctx *cli.Context, tx *contract.Transaction) error {
	ctx := context.Background()

	key, err := loadKey(cctx)
	if err != nil {
		return err
	}

	res, err := newSponsorClient(cctx).Execute(ctx, newLedger(cctx), tx, key.Address(), key.SignTransaction)
	if err != nil {
		return err
	}
	return printJSON(res)
}

// requireProfile resolves the signer's own profile, needed by writes that
// take the profile object as an argument.
func requireProfile(cctx *cli.Context) (*appview.Profile, error) {
	ctx := context.Background()

	key, err := loadKey(cctx)
	if err != nil {
		return nil, err
	}
	profile, err := newLoader(cctx).GetProfileByOwner(ctx, key.Address())
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile for %s (run 'dolphinder profile create' first)", key.Address())
	}
	return profile, nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
