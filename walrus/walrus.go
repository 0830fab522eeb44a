/*
Package walrus is a client for the Walrus content-addressed blob store, used for profile and post images.

Uploads go to a publisher node, retrieval goes through an aggregator; the two are independent services and blob ids are the only link between them. Uploads are a single attempt with error propagation; downloads are idempotent and use a retrying client.
*/
package walrus

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dolphinder-social/dolphinder/util"
)

// Public testnet endpoints.
const (
	TestnetPublisherURL  = "https://publisher.walrus-testnet.walrus.space"
	TestnetAggregatorURL = "https://aggregator.walrus-testnet.walrus.space"
)

// DefaultImageEpochs is how many storage epochs image uploads are paid for.
const DefaultImageEpochs = 5

var ErrNotImage = errors.New("file is not an image")

// Blob describes a stored blob: its content id and the aggregator URL it can
// be fetched from.
type Blob struct {
	BlobID string
	URL    string
}

// uploadResponse is the publisher's wire shape. Exactly one of the two
// branches is present: newlyCreated for a first upload, alreadyCertified when
// identical content is already stored.
type uploadResponse struct {
	NewlyCreated *struct {
		BlobObject struct {
			BlobID string `json:"blobId"`
		} `json:"blobObject"`
	} `json:"newlyCreated,omitempty"`
	AlreadyCertified *struct {
		BlobID string `json:"blobId"`
	} `json:"alreadyCertified,omitempty"`
}

func (r *uploadResponse) blobID() (string, error) {
	if r.NewlyCreated != nil && r.NewlyCreated.BlobObject.BlobID != "" {
		return r.NewlyCreated.BlobObject.BlobID, nil
	}
	if r.AlreadyCertified != nil && r.AlreadyCertified.BlobID != "" {
		return r.AlreadyCertified.BlobID, nil
	}
	return "", fmt.Errorf("blob store response contains no blob id")
}

type Client struct {
	PublisherURL  string
	AggregatorURL string
	// UploadClient must not retry: storing a blob charges for storage.
	UploadClient *http.Client
	// DownloadClient may retry; reads are idempotent.
	DownloadClient *http.Client
}

func NewClient(publisherURL, aggregatorURL string) *Client {
	return &Client{
		PublisherURL:   publisherURL,
		AggregatorURL:  aggregatorURL,
		UploadClient:   util.NewHTTPClient(),
		DownloadClient: util.RobustHTTPClient(),
	}
}

// NewTestnetClient returns a client for the public testnet deployment.
func NewTestnetClient() *Client {
	return NewClient(TestnetPublisherURL, TestnetAggregatorURL)
}

// BlobURL returns the aggregator retrieval URL for a blob id.
func (c *Client) BlobURL(blobID string) string {
	return c.AggregatorURL + "/v1/" + blobID
}
