package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignatureSize is the size of a compact r||s signature.
const SignatureSize = 64

// Sign hashes msg with SHA256 and signs the digest with RFC6979 deterministic
// ECDSA. The result is the 64-byte r||s form with a low S value and without
// the recovery byte.
func Sign(msg, privateKey []byte) ([]byte, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	hash := sha256.Sum256(msg)
	compact := ecdsa.SignCompact(key, hash[:], true)

	sig := make([]byte, SignatureSize)
	copy(sig, compact[1:])
	return sig, nil
}

// Verify checks a 64-byte r||s signature of SHA256(msg) against a compressed
// public key.
func Verify(msg, sig, publicKey []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return false
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow || s.IsZero() {
		return false
	}

	hash := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(hash[:], pub)
}

// PublicKey returns the compressed public key for a 32-byte private scalar.
func PublicKey(privateKey []byte) ([]byte, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return key.PubKey().SerializeCompressed(), nil
}

func parsePrivateKey(privateKey []byte) (*btcec.PrivateKey, error) {
	if len(privateKey) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPrivateKey, len(privateKey))
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(privateKey); overflow {
		return nil, fmt.Errorf("%w: scalar not below curve order", ErrInvalidPrivateKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}
	return btcec.PrivKeyFromScalar(&scalar), nil
}
