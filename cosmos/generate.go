package cosmos

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/AlexZinkM/cosmos-wallet/internal/crypto"
	"github.com/AlexZinkM/cosmos-wallet/internal/model"

	"github.com/skip2/go-qrcode"
)

// Options selects the address prefix and derivation path. Zero values mean
// "cosmos" and m/44'/118'/0'/0/0.
type Options struct {
	Prefix string
	Path   crypto.Path
}

func (o Options) withDefaults() (Options, error) {
	if o.Prefix == "" {
		o.Prefix = crypto.DefaultPrefix
	}
	if len(o.Path) == 0 {
		path, err := crypto.ParsePath(crypto.DefaultPath)
		if err != nil {
			return o, err
		}
		o.Path = path
	}
	return o, nil
}

// Wallet is a key pair derived from a mnemonic together with its address.
// Mnemonic is only set for freshly generated wallets.
type Wallet struct {
	Mnemonic   string
	PrivateKey []byte
	PublicKey  []byte
	Address    string
	Path       crypto.Path
}

// Clear zeroes the private key. The wallet cannot sign afterwards.
func (w *Wallet) Clear() {
	clear(w.PrivateKey)
}

// GenerateWallet draws fresh entropy from src (crypto/rand when nil), encodes
// it as a 24 word mnemonic and derives the wallet from it.
func GenerateWallet(src crypto.EntropySource, opts Options) (*Wallet, error) {
	mnemonic, err := crypto.NewMnemonic(src)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	wallet, err := WalletFromMnemonic(mnemonic, opts)
	if err != nil {
		return nil, err
	}
	wallet.Mnemonic = mnemonic
	return wallet, nil
}

// WalletFromMnemonic derives the wallet of an existing mnemonic.
func WalletFromMnemonic(mnemonic string, opts Options) (*Wallet, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	keys, err := crypto.KeypairFromMnemonic(crypto.NormalizeMnemonic(mnemonic), opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key pair: %w", err)
	}

	address, err := crypto.CreateAddress(keys.PublicKey, opts.Prefix)
	if err != nil {
		clear(keys.PrivateKey)
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return &Wallet{
		PrivateKey: keys.PrivateKey,
		PublicKey:  keys.PublicKey,
		Address:    address,
		Path:       opts.Path,
	}, nil
}

// Response renders the public part of the wallet with a QR code of the address.
func (w *Wallet) Response() (model.WalletResponse, error) {
	qr, err := generateQRCode(w.Address)
	if err != nil {
		return model.WalletResponse{}, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return model.WalletResponse{
		Address:   w.Address,
		PublicKey: hex.EncodeToString(w.PublicKey),
		HDPath:    w.Path.String(),
		QR:        qr,
	}, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
