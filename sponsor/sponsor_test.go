package sponsor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolphinder-social/dolphinder/contract"
)

type fakeLedger struct {
	txBytes []byte
	err     error
	calls   int
}

func (f *fakeLedger) BuildMoveCall(ctx context.Context, tx *contract.Transaction) ([]byte, error) {
	f.calls++
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.txBytes, nil
}

func fixedSigner(sig string) SignFunc {
	return func(ctx context.Context, txBytes []byte) (string, error) {
		return sig, nil
	}
}

func testTx() *contract.Transaction {
	b := contract.NewBuilder(contract.Config{PackageID: "0xpkg", RegistryID: "0xreg"})
	return b.AddSkill("0xprofile", "Go")
}

func TestExecuteSuccess(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var got submitBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal("POST", r.Method)
		require.NoError(json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"digest": "abc"}`)
	}))
	defer srv.Close()

	ledger := &fakeLedger{txBytes: []byte{1, 2, 3}}
	c := NewClient(srv.URL, "testnet")

	res, err := c.Execute(context.Background(), ledger, testTx(), "0xuser", fixedSigner("sig-1"))
	require.NoError(err)
	assert.Equal("abc", res.Digest)

	assert.Equal([]int{1, 2, 3}, got.TxBytes)
	assert.Equal("sig-1", got.UserSignature)
	assert.Equal("testnet", got.Network)
}

func TestExecuteRelayFailure(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ledger := &fakeLedger{txBytes: []byte{1}}
	c := NewClient(srv.URL, "testnet")

	_, err := c.Execute(context.Background(), ledger, testTx(), "0xuser", fixedSigner("sig-1"))
	assert.Error(err)
	assert.Contains(err.Error(), "boom")

	var relayErr *RelayError
	assert.ErrorAs(err, &relayErr)
	assert.Equal(http.StatusInternalServerError, relayErr.StatusCode)
}

func TestExecuteSigningDeclined(t *testing.T) {
	assert := assert.New(t)

	relayCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls++
		fmt.Fprintln(w, `{"digest": "abc"}`)
	}))
	defer srv.Close()

	ledger := &fakeLedger{txBytes: []byte{1}}
	c := NewClient(srv.URL, "testnet")

	declined := func(ctx context.Context, txBytes []byte) (string, error) {
		return "", errors.New("user rejected the request")
	}
	_, err := c.Execute(context.Background(), ledger, testTx(), "0xuser", declined)
	assert.ErrorIs(err, ErrSigningDeclined)

	// declining the signature must abort before any relay contact
	assert.Equal(0, relayCalls)
}

func TestExecuteNoWallet(t *testing.T) {
	assert := assert.New(t)

	ledger := &fakeLedger{txBytes: []byte{1}}
	c := NewClient("http://relay.invalid", "testnet")

	_, err := c.Execute(context.Background(), ledger, testTx(), "", fixedSigner("sig"))
	assert.ErrorIs(err, ErrWalletNotConnected)
	assert.Equal(0, ledger.calls)
}

func TestExecuteBuildFailure(t *testing.T) {
	assert := assert.New(t)

	signCalls := 0
	sign := func(ctx context.Context, txBytes []byte) (string, error) {
		signCalls++
		return "sig", nil
	}

	ledger := &fakeLedger{err: errors.New("object ref is stale")}
	c := NewClient("http://relay.invalid", "testnet")

	_, err := c.Execute(context.Background(), ledger, testTx(), "0xuser", sign)
	assert.Error(err)
	assert.Contains(err.Error(), "stale")
	// serialization failure aborts before the signing prompt
	assert.Equal(0, signCalls)
}

func TestExecuteBindsSender(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"digest": "abc"}`)
	}))
	defer srv.Close()

	ledger := &fakeLedger{txBytes: []byte{1}}
	c := NewClient(srv.URL, "testnet")

	tx := testTx()
	_, err := c.Execute(context.Background(), ledger, tx, "0xuser", fixedSigner("sig"))
	require.NoError(err)
	require.Equal("0xuser", tx.Sender)
}

func TestHealth(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "testnet")
	assert.True(c.Health(context.Background()))

	down := NewClient("http://127.0.0.1:1", "testnet")
	assert.False(down.Health(context.Background()))
}
