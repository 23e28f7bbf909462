package model

// WalletResponse represents a derived wallet. The private key is never returned.
type WalletResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"` // compressed, hex
	HDPath    string `json:"hdPath"`
	QR        string `json:"QR"` // PNG of the address, base64
}

// RecoverRequest represents request for POST /cosmos/recover
type RecoverRequest struct {
	Mnemonic string `json:"mnemonic" validate:"required"`
}
