/*
Package wallet holds a local ed25519 keypair and signs transactions the way a Sui wallet does.

In the browser the signing callback is the wallet extension prompting the user; a CLI has no extension, so this package plays that role with a keyfile. The signature wire format is base64(flag ‖ signature ‖ public key) over the blake2b-256 digest of the intent message, which is what the sponsorship relay forwards to the ledger.
*/
package wallet

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// SchemeED25519 is the Sui signature scheme flag for ed25519.
const SchemeED25519 byte = 0x00

// transaction-data intent prefix: scope, version, app id
var txIntent = []byte{0, 0, 0}

// Key is a local signing identity.
type Key struct {
	priv ed25519.PrivateKey
}

// GenerateKey creates a fresh random keypair.
func GenerateKey() (*Key, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}
	return &Key{priv: priv}, nil
}

// ParseKey decodes the keystore serialization: base64 of the scheme flag
// followed by the 32-byte seed.
func ParseKey(encoded string) (*Key, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("parsing key: %w", err)
	}
	if len(raw) != 1+ed25519.SeedSize {
		return nil, fmt.Errorf("parsing key: expected %d bytes, got %d", 1+ed25519.SeedSize, len(raw))
	}
	if raw[0] != SchemeED25519 {
		return nil, fmt.Errorf("parsing key: unsupported signature scheme 0x%02x", raw[0])
	}
	return &Key{priv: ed25519.NewKeyFromSeed(raw[1:])}, nil
}

// LoadKey reads a keyfile written by Save.
func LoadKey(path string) (*Key, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyfile: %w", err)
	}
	return ParseKey(string(b))
}

// Save writes the key to path, readable only by the owner.
func (k *Key) Save(path string) error {
	return os.WriteFile(path, []byte(k.Encode()+"\n"), 0600)
}

// Encode returns the keystore serialization of the private key.
func (k *Key) Encode() string {
	raw := append([]byte{SchemeED25519}, k.priv.Seed()...)
	return base64.StdEncoding.EncodeToString(raw)
}

func (k *Key) publicKey() ed25519.PublicKey {
	return k.priv.Public().(ed25519.PublicKey)
}

// Address derives the on-ledger address: blake2b-256 over the scheme flag and
// public key, hex-encoded with an 0x prefix.
func (k *Key) Address() string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte{SchemeED25519})
	h.Write(k.publicKey())
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// SignTransaction signs serialized transaction bytes and returns the wire
// signature. Satisfies the sponsor package's signing callback.
func (k *Key) SignTransaction(ctx context.Context, txBytes []byte) (string, error) {
	msg := make([]byte, 0, len(txIntent)+len(txBytes))
	msg = append(msg, txIntent...)
	msg = append(msg, txBytes...)
	digest := blake2b.Sum256(msg)

	sig := ed25519.Sign(k.priv, digest[:])

	wire := make([]byte, 0, 1+len(sig)+ed25519.PublicKeySize)
	wire = append(wire, SchemeED25519)
	wire = append(wire, sig...)
	wire = append(wire, k.publicKey()...)
	return base64.StdEncoding.EncodeToString(wire), nil
}

// Verify checks a wire signature produced by SignTransaction against the
// given transaction bytes. Used in tests and key self-checks.
func Verify(txBytes []byte, wireSignature string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(wireSignature)
	if err != nil {
		return false, fmt.Errorf("parsing signature: %w", err)
	}
	if len(raw) != 1+ed25519.SignatureSize+ed25519.PublicKeySize {
		return false, fmt.Errorf("unexpected signature length %d", len(raw))
	}
	if raw[0] != SchemeED25519 {
		return false, fmt.Errorf("unsupported signature scheme 0x%02x", raw[0])
	}
	sig := raw[1 : 1+ed25519.SignatureSize]
	pub := ed25519.PublicKey(raw[1+ed25519.SignatureSize:])

	msg := make([]byte, 0, len(txIntent)+len(txBytes))
	msg = append(msg, txIntent...)
	msg = append(msg, txBytes...)
	digest := blake2b.Sum256(msg)

	return ed25519.Verify(pub, digest[:], sig), nil
}
