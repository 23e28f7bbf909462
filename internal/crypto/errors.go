package crypto

import "errors"

// Errors returned by the key derivation and signing pipeline. They are
// always wrapped with context, match them with errors.Is.
var (
	ErrInvalidEntropyLength   = errors.New("entropy must be 32 bytes")
	ErrInvalidMnemonic        = errors.New("invalid mnemonic")
	ErrInvalidDerivation      = errors.New("derived key is unusable")
	ErrInvalidPublicKeyLength = errors.New("public key must be 33 bytes compressed")
	ErrInvalidPrivateKey      = errors.New("invalid secp256k1 private key")
	ErrInvalidPath            = errors.New("invalid derivation path")
)
