package model

// GenerateResponse represents response for POST .../generate
type GenerateResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Mnemonic string         `json:"mnemonic,omitempty"`
	Wallet   WalletResponse `json:"wallet"`
}
