package crypto

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// EntropySize is the entropy size in bytes for 24-word mnemonics.
	EntropySize = 32
	// SeedSize is the length of a BIP39 seed in bytes.
	SeedSize = 64
)

// EntropySource supplies size random bytes. Tests pass a fixed source to get
// reproducible wallets.
type EntropySource func(size int) ([]byte, error)

// RandomEntropy reads entropy from the operating system CSPRNG.
func RandomEntropy(size int) ([]byte, error) {
	return bip39.NewEntropy(size * 8)
}

// NewMnemonic draws EntropySize bytes from src and encodes them as a mnemonic.
func NewMnemonic(src EntropySource) (string, error) {
	if src == nil {
		src = RandomEntropy
	}
	entropy, err := src(EntropySize)
	if err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}
	defer clear(entropy)

	return EntropyToMnemonic(entropy)
}

// EntropyToMnemonic encodes 32 bytes of entropy as a 24-word BIP39 mnemonic.
func EntropyToMnemonic(entropy []byte) (string, error) {
	if len(entropy) != EntropySize {
		return "", fmt.Errorf("%w: got %d", ErrInvalidEntropyLength, len(entropy))
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to encode mnemonic: %w", err)
	}
	return mnemonic, nil
}

// NormalizeMnemonic trims the phrase and collapses whitespace between words.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

// ValidateMnemonic checks word count, wordlist membership and checksum.
func ValidateMnemonic(mnemonic string) error {
	if _, err := bip39.EntropyFromMnemonic(NormalizeMnemonic(mnemonic)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return nil
}

// MnemonicToSeed validates the mnemonic and stretches it into a 64-byte seed
// with PBKDF2-HMAC-SHA512 and an empty passphrase.
func MnemonicToSeed(mnemonic string) ([]byte, error) {
	mnemonic = NormalizeMnemonic(mnemonic)
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
