/*
Package sponsor submits user-signed transactions through a gas-sponsorship relay, so end users never hold the network fee token.

The pipeline is strictly sequential: bind sender, serialize via the ledger gateway, obtain a signature from the caller-supplied callback, POST to the relay, parse the result. Any failure aborts the whole call and surfaces a single error. There is no retry and no idempotency key; a network failure after the relay has accepted a submission can leave the ledger mutated while the caller sees an error, so callers must not blindly retry.
*/
package sponsor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/carlmjohnson/versioninfo"

	"github.com/dolphinder-social/dolphinder/contract"
	"github.com/dolphinder-social/dolphinder/util"
)

var (
	// ErrWalletNotConnected indicates no user address was supplied. UIs
	// should prompt for a wallet connection, not show a generic failure.
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrSigningDeclined indicates the signing callback refused, typically
	// because the user dismissed the wallet prompt. Distinct from relay and
	// connectivity failures so UIs can say "you declined".
	ErrSigningDeclined = errors.New("transaction signing declined")
)

// RelayError carries the relay's own error text for a rejected submission.
type RelayError struct {
	StatusCode int
	Body       string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("sponsored transaction failed (HTTP %d): %s", e.StatusCode, e.Body)
}

// SignFunc obtains the user's signature over serialized transaction bytes.
// It stands in for an interactive wallet prompt and may take arbitrarily
// long; a user rejection must return an error.
type SignFunc func(ctx context.Context, txBytes []byte) (signature string, err error)

// Ledger is the serialization dependency: resolving object versions and gas
// parameters requires a live fullnode round trip.
type Ledger interface {
	BuildMoveCall(ctx context.Context, tx *contract.Transaction) ([]byte, error)
}

// Result is the relay's execution response.
type Result struct {
	Digest  string          `json:"digest"`
	Effects json.RawMessage `json:"effects,omitempty"`
}

type submitBody struct {
	TxBytes       []int  `json:"txBytes"`
	UserSignature string `json:"userSignature"`
	Network       string `json:"network"`
}

// Client submits signed transactions to one sponsorship relay endpoint.
type Client struct {
	// RelayURL is the full submission endpoint, eg
	// "https://sponsor.sui.io/api/sponsor".
	RelayURL string
	// Network names the ledger network the relay should submit to.
	Network string
	// HTTPClient must not retry: submission is not idempotent.
	HTTPClient *http.Client
	UserAgent  string
}

func NewClient(relayURL, network string) *Client {
	return &Client{
		RelayURL:   relayURL,
		Network:    network,
		HTTPClient: util.NewHTTPClient(),
		UserAgent:  "dolphinder/" + versioninfo.Short(),
	}
}

// Execute runs the full pipeline for one transaction intent. At most one
// submission reaches the relay per call.
func (c *Client) Execute(ctx context.Context, ledger Ledger, tx *contract.Transaction, userAddress string, sign SignFunc) (*Result, error) {
	if userAddress == "" {
		return nil, ErrWalletNotConnected
	}
	tx.SetSender(userAddress)

	txBytes, err := ledger.BuildMoveCall(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("building transaction: %w", err)
	}

	signature, err := sign(ctx, txBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningDeclined, err)
	}

	return c.submit(ctx, txBytes, signature)
}

func (c *Client) submit(ctx context.Context, txBytes []byte, signature string) (*Result, error) {
	// the relay expects the serialized transaction as a JSON number array
	intBytes := make([]int, len(txBytes))
	for i, b := range txBytes {
		intBytes[i] = int(b)
	}
	body, err := json.Marshal(submitBody{
		TxBytes:       intBytes,
		UserSignature: signature,
		Network:       c.Network,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.RelayURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("constructing relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading relay response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RelayError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	var res Result
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("parsing relay response: %w", err)
	}
	return &res, nil
}

// Health reports whether the relay's health endpoint answers with a 2xx.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", c.RelayURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
