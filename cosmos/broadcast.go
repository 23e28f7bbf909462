package cosmos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/cosmos-wallet/internal/txtree"
)

// Broadcaster posts a broadcast body to a node. *client.LCDClient implements it.
type Broadcaster interface {
	Broadcast(ctx context.Context, body []byte) (json.RawMessage, error)
}

// Broadcast sends a signed transaction as {"tx": ..., "return": mode}. An
// empty mode means "block". There are no retries.
func Broadcast(ctx context.Context, b Broadcaster, signed *SignedTx, mode string) (json.RawMessage, error) {
	if signed == nil {
		return nil, errors.New("signed tx is nil")
	}

	body, err := txtree.BuildBroadcastBody(signed.Body, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to build broadcast body: %w", err)
	}

	return b.Broadcast(ctx, body)
}
