package cosmos

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/cosmos-wallet/internal/crypto"
	"github.com/AlexZinkM/cosmos-wallet/internal/txtree"
)

// SignedTx is the result of SignTx.
type SignedTx struct {
	// Tx is the signed transaction in the shape it was given, wrapped in its
	// StdTx envelope if the input had one.
	Tx txtree.Value
	// Body is the bare signed StdTx, as the LCD expects it in a broadcast.
	Body      txtree.Object
	SignBytes []byte
	Signature txtree.StdSignature
}

// SignTx signs an unsigned StdTx with the wallet key. The transaction may be
// bare or wrapped in {"type":"auth/StdTx","value":...}.
func SignTx(tx txtree.Value, wallet *Wallet, meta txtree.SignMeta) (*SignedTx, error) {
	if wallet == nil {
		return nil, errors.New("wallet is nil")
	}

	body, typ := txtree.UnwrapStdTx(tx)

	signBytes, err := txtree.CreateSignMessage(body, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to create sign message: %w", err)
	}

	sig, err := crypto.Sign(signBytes, wallet.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	stdSig := txtree.NewSignature(sig, wallet.PublicKey)
	signed, err := txtree.AttachSignature(body, stdSig)
	if err != nil {
		return nil, err
	}

	return &SignedTx{
		Tx:        txtree.WrapStdTx(signed, typ),
		Body:      signed,
		SignBytes: signBytes,
		Signature: stdSig,
	}, nil
}
