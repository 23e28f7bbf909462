package model

import "encoding/json"

// SignRequest represents request for POST /cosmos/sign and /cosmos/broadcast.
// Tx is an unsigned StdTx, either bare or wrapped in its amino envelope.
// Empty account fields are looked up on the LCD, an empty chain id falls
// back to CHAIN_ID.
type SignRequest struct {
	Tx            json.RawMessage `json:"tx" validate:"required"`
	Sequence      string          `json:"sequence" validate:"omitempty,number"`
	AccountNumber string          `json:"account_number" validate:"omitempty,number"`
	ChainID       string          `json:"chain_id"`
}

// SignResponse represents response for POST /cosmos/sign
type SignResponse struct {
	Tx        json.RawMessage `json:"tx"`
	SignBytes string          `json:"signBytes"`
}

// BroadcastResponse represents response for POST /cosmos/broadcast
type BroadcastResponse struct {
	Tx     json.RawMessage `json:"tx"`
	Result json.RawMessage `json:"result"`
}
