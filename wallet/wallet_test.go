package wallet

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k, err := GenerateKey()
	require.NoError(err)

	parsed, err := ParseKey(k.Encode())
	require.NoError(err)
	assert.Equal(k.Address(), parsed.Address())
}

func TestKeyfileRoundTrip(t *testing.T) {
	require := require.New(t)

	k, err := GenerateKey()
	require.NoError(err)

	path := filepath.Join(t.TempDir(), "dolphinder.key")
	require.NoError(k.Save(path))

	loaded, err := LoadKey(path)
	require.NoError(err)
	require.Equal(k.Address(), loaded.Address())
}

func TestAddressFormat(t *testing.T) {
	require := require.New(t)

	k, err := GenerateKey()
	require.NoError(err)

	addr := k.Address()
	require.Len(addr, 66) // 0x + 32 bytes hex
	require.Equal("0x", addr[:2])

	// derivation is deterministic
	require.Equal(addr, k.Address())
}

func TestSignAndVerify(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k, err := GenerateKey()
	require.NoError(err)

	txBytes := []byte("serialized transaction bytes")
	sig, err := k.SignTransaction(context.Background(), txBytes)
	require.NoError(err)

	raw, err := base64.StdEncoding.DecodeString(sig)
	require.NoError(err)
	require.Len(raw, 97) // flag + 64-byte signature + 32-byte pubkey
	assert.Equal(SchemeED25519, raw[0])

	ok, err := Verify(txBytes, sig)
	require.NoError(err)
	assert.True(ok)

	// tampered payload fails verification
	ok, err = Verify([]byte("other bytes"), sig)
	require.NoError(err)
	assert.False(ok)
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseKey("not base64 at all!!!")
	assert.Error(err)

	// wrong length
	_, err = ParseKey(base64.StdEncoding.EncodeToString([]byte{0x00, 0x01}))
	assert.Error(err)

	// wrong scheme flag
	raw := make([]byte, 33)
	raw[0] = 0x01
	_, err = ParseKey(base64.StdEncoding.EncodeToString(raw))
	assert.Error(err)
}
