package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var cmdBlob = &cli.Command{
	Name:  "blob",
	Usage: "sub-commands for the image blob store",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "upload",
			Usage:     "upload a file to the blob store",
			ArgsUsage: `<file>`,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "epochs",
					Usage: "number of storage epochs to pay for",
					Value: 1,
				},
			},
			Action: runBlobUpload,
		},
		&cli.Command{
			Name:      "download",
			Usage:     "download a blob by id",
			ArgsUsage: `<blob-id>`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "file path to store blob at",
				},
			},
			Action: runBlobDownload,
		},
		&cli.Command{
			Name:      "url",
			Usage:     "print the retrieval URL for a blob id",
			ArgsUsage: `<blob-id>`,
			Action:    runBlobURL,
		},
	},
}

func runBlobUpload(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide file path as an argument")
	}
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	blob, err := newWalrusClient(cctx).Upload(context.Background(), bytes.NewReader(fileBytes), cctx.Int("epochs"))
	if err != nil {
		return err
	}
	return printJSON(blob)
}

func runBlobDownload(cctx *cli.Context) error {
	blobID := cctx.Args().First()
	if blobID == "" {
		return fmt.Errorf("need to provide blob id as an argument")
	}

	outPath := cctx.String("output")
	if outPath == "" {
		outPath = blobID
	}
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("file exists: %s", outPath)
	}

	data, err := newWalrusClient(cctx).Download(context.Background(), blobID)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0666)
}

func runBlobURL(cctx *cli.Context) error {
	blobID := cctx.Args().First()
	if blobID == "" {
		return fmt.Errorf("need to provide blob id as an argument")
	}
	fmt.Println(newWalrusClient(cctx).BlobURL(blobID))
	return nil
}
