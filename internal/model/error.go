package model

// ErrorResponse is the consistent JSON structure for all API error responses.
// Code is one of the Code* constants.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeBadRequest             = "bad_request"
	CodeInvalidMnemonic        = "invalid_mnemonic"
	CodeInvalidEntropyLength   = "invalid_entropy_length"
	CodeInvalidDerivation      = "invalid_derivation"
	CodeInvalidPublicKeyLength = "invalid_public_key_length"
	CodeInvalidPrivateKey      = "invalid_private_key"
	CodeMalformedTx            = "malformed_tx"
	CodeLCDError               = "lcd_error"
	CodeTimeout                = "timeout"
	CodeInternal               = "internal"
)
