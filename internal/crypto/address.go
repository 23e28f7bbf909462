package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160"
)

// DefaultPrefix is the Cosmos Hub account address prefix.
const DefaultPrefix = "cosmos"

// AddressLength is the length of the raw account address.
const AddressLength = 20

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// CreateAddress bech32-encodes the hash160 of a compressed public key.
// Uncompressed keys are rejected: they would hash to a different address.
func CreateAddress(publicKey []byte, prefix string) (string, error) {
	if len(publicKey) != btcec.PubKeyBytesLenCompressed || !btcec.IsCompressedPubKey(publicKey) {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidPublicKeyLength, len(publicKey))
	}
	return bech32ify(Hash160(publicKey), prefix)
}

// ParseAddress decodes a bech32 account address and checks its prefix.
func ParseAddress(address, prefix string) ([]byte, error) {
	hrp, words, err := bech32.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("invalid bech32 address: %w", err)
	}
	if hrp != prefix {
		return nil, fmt.Errorf("unexpected address prefix %q, want %q", hrp, prefix)
	}
	raw, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("invalid address payload: %w", err)
	}
	if len(raw) != AddressLength {
		return nil, fmt.Errorf("invalid address length %d", len(raw))
	}
	return raw, nil
}

func bech32ify(raw []byte, prefix string) (string, error) {
	words, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bits: %w", err)
	}
	address, err := bech32.Encode(prefix, words)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return address, nil
}
