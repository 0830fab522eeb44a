package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/carlmjohnson/versioninfo"
	"golang.org/x/time/rate"

	"github.com/dolphinder-social/dolphinder/util"
)

var (
	// ErrRequestFailed indicates the fullnode could not be reached or
	// returned a malformed response. Wrapped errors carry detail.
	ErrRequestFailed = errors.New("ledger request failed")
)

// RPCError is a JSON-RPC level error returned by the fullnode.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("ledger RPC error %d: %s", e.Code, e.Message)
}

// Client talks JSON-RPC to a single Sui fullnode.
type Client struct {
	// Host includes schema, hostname, and port, no trailing slash.
	// Eg: "https://fullnode.testnet.sui.io:443"
	Host      string
	Client    *http.Client
	UserAgent string

	// Limiter, if set, throttles outbound RPCs. Useful against public
	// fullnodes which rate-limit bursty dynamic-field fan-outs.
	Limiter *rate.Limiter
}

// FullnodeURL returns the public fullnode endpoint for a named network
// ("mainnet", "testnet", "devnet").
func FullnodeURL(network string) string {
	return fmt.Sprintf("https://fullnode.%s.sui.io:443", network)
}

// NewClient returns a gateway for the named network, using a retrying HTTP
// client (all methods on this client are idempotent).
func NewClient(network string) *Client {
	return &Client{
		Host:      FullnodeURL(network),
		Client:    util.RobustHTTPClient(),
		UserAgent: "dolphinder/" + versioninfo.Short(),
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

// rpcCall performs one JSON-RPC round trip and unmarshals the result field
// into out.
func (c *Client) rpcCall(ctx context.Context, method string, params []any, out any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("%w: encoding request: %w", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Host, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: constructing request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", ErrRequestFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(b, &rpcResp); err != nil {
		return fmt.Errorf("%w: parsing response: %w", ErrRequestFailed, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("%w: parsing result: %w", ErrRequestFailed, err)
	}
	return nil
}
