package walrus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Upload stores the reader's content for the given number of epochs and
// returns the blob id and retrieval URL.
func (c *Client) Upload(ctx context.Context, r io.Reader, epochs int) (*Blob, error) {
	u := fmt.Sprintf("%s/v1/store?epochs=%d", c.PublisherURL, epochs)
	req, err := http.NewRequestWithContext(ctx, "PUT", u, r)
	if err != nil {
		return nil, fmt.Errorf("constructing upload request: %w", err)
	}

	resp, err := c.uploadClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("blob upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("blob upload failed (HTTP %d): %s", resp.StatusCode, string(body))
	}

	var wire uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("parsing blob store response: %w", err)
	}
	blobID, err := wire.blobID()
	if err != nil {
		return nil, err
	}

	return &Blob{BlobID: blobID, URL: c.BlobURL(blobID)}, nil
}

// Download fetches a blob's content from the aggregator.
func (c *Client) Download(ctx context.Context, blobID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BlobURL(blobID), nil)
	if err != nil {
		return nil, fmt.Errorf("constructing download request: %w", err)
	}
	resp, err := c.downloadClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("blob download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blob download failed (HTTP %d)", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// UploadImage stores an image for display, rejecting non-image content. The
// content type is sniffed from the first bytes, same signal browsers use.
func (c *Client) UploadImage(ctx context.Context, data []byte) (*Blob, error) {
	contentType := http.DetectContentType(data)
	if len(contentType) < 6 || contentType[:6] != "image/" {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, contentType)
	}
	return c.Upload(ctx, bytes.NewReader(data), DefaultImageEpochs)
}

// UploadImages stores several images concurrently. The first failure cancels
// the rest and is returned; on success results are in input order.
func (c *Client) UploadImages(ctx context.Context, images [][]byte) ([]*Blob, error) {
	blobs := make([]*Blob, len(images))
	g, ctx := errgroup.WithContext(ctx)
	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			b, err := c.UploadImage(ctx, img)
			if err != nil {
				return err
			}
			blobs[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blobs, nil
}

func (c *Client) uploadClient() *http.Client {
	if c.UploadClient != nil {
		return c.UploadClient
	}
	return http.DefaultClient
}

func (c *Client) downloadClient() *http.Client {
	if c.DownloadClient != nil {
		return c.DownloadClient
	}
	return http.DefaultClient
}
