package crypto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// DefaultPath is the Cosmos Hub derivation path: coin type 118, account 0,
// external chain, address index 0.
const DefaultPath = "m/44'/118'/0'/0/0"

// Path is a parsed derivation path. Hardened indexes have
// hdkeychain.HardenedKeyStart added.
type Path []uint32

// KeyPair is a secp256k1 key pair derived at a fixed path.
type KeyPair struct {
	PrivateKey []byte // 32 bytes
	PublicKey  []byte // 33 bytes, compressed
}

// ParsePath parses paths of the form m/44'/118'/0'/0/0. Hardened segments
// may be marked with ', h or H.
func ParsePath(s string) (Path, error) {
	segments := strings.Split(strings.TrimSpace(s), "/")
	if len(segments) < 2 || segments[0] != "m" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, s)
	}

	path := make(Path, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := false
		if n := len(seg); n > 0 && (seg[n-1] == '\'' || seg[n-1] == 'h' || seg[n-1] == 'H') {
			hardened = true
			seg = seg[:n-1]
		}
		idx, err := strconv.ParseUint(seg, 10, 32)
		if err != nil || idx >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: bad segment %q in %q", ErrInvalidPath, seg, s)
		}
		if hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		path = append(path, uint32(idx))
	}
	return path, nil
}

// String renders the path using ' for hardened segments.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range p {
		b.WriteByte('/')
		if idx >= hdkeychain.HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(idx-hdkeychain.HardenedKeyStart), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(idx), 10))
	}
	return b.String()
}

// MasterKey creates the BIP32 root key for a seed. The chain params only
// affect serialization version bytes, never the derived key material.
func MasterKey(seed []byte) (*hdkeychain.ExtendedKey, error) {
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		if errors.Is(err, hdkeychain.ErrUnusableSeed) {
			return nil, fmt.Errorf("%w: master key", ErrInvalidDerivation)
		}
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	return master, nil
}

// DerivePath walks path from key. An unusable child fails with
// ErrInvalidDerivation; the caller decides whether to move to the next index.
func DerivePath(key *hdkeychain.ExtendedKey, path Path) (*hdkeychain.ExtendedKey, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil key", ErrInvalidDerivation)
	}
	current := key
	for depth, idx := range path {
		child, err := current.Derive(idx)
		if err != nil {
			if errors.Is(err, hdkeychain.ErrInvalidChild) {
				return nil, fmt.Errorf("%w: %s at depth %d", ErrInvalidDerivation, path, depth+1)
			}
			return nil, fmt.Errorf("failed to derive %s: %w", path, err)
		}
		current = child
	}
	return current, nil
}

// DeriveKeypair extracts the private scalar and its compressed public point.
func DeriveKeypair(key *hdkeychain.ExtendedKey) (KeyPair, error) {
	priv, err := key.ECPrivKey()
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to read private key: %w", err)
	}
	return KeyPair{
		PrivateKey: priv.Serialize(),
		PublicKey:  priv.PubKey().SerializeCompressed(),
	}, nil
}

// KeypairFromMnemonic runs the whole pipeline: mnemonic, seed, master key,
// path, key pair.
func KeypairFromMnemonic(mnemonic string, path Path) (KeyPair, error) {
	seed, err := MnemonicToSeed(mnemonic)
	if err != nil {
		return KeyPair{}, err
	}
	defer clear(seed)

	master, err := MasterKey(seed)
	if err != nil {
		return KeyPair{}, err
	}
	defer master.Zero()

	child, err := DerivePath(master, path)
	if err != nil {
		return KeyPair{}, err
	}
	defer child.Zero()

	return DeriveKeypair(child)
}
