package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexZinkM/cosmos-wallet/internal/txtree"

	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// LCDError is returned when the LCD answers with a non-2xx status
type LCDError struct {
	StatusCode int
	Body       string
}

func (e *LCDError) Error() string {
	return fmt.Sprintf("lcd returned status %d: %s", e.StatusCode, e.Body)
}

// IsLCDError checks if error is LCDError
func IsLCDError(err error) bool {
	var lcdErr *LCDError
	return errors.As(err, &lcdErr)
}

// LCDClient is a client for the Cosmos LCD REST server
type LCDClient struct {
	baseURL string
	client  *http.Client
}

// NewLCDClient creates a new LCD client
func NewLCDClient(baseURL string, timeout time.Duration) *LCDClient {
	return &LCDClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Account holds the account state a sign doc commits to
type Account struct {
	Address       string
	AccountNumber string
	Sequence      string
}

type accountResponse struct {
	Result struct {
		Value struct {
			Address       string  `json:"address"`
			AccountNumber uintStr `json:"account_number"`
			Sequence      uintStr `json:"sequence"`
		} `json:"value"`
	} `json:"result"`
}

// uintStr accepts both "12" and 12. Older LCDs emit numbers, newer ones strings.
type uintStr string

func (u *uintStr) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("not an unsigned integer: %s", data)
		}
	}
	*u = uintStr(s)
	return nil
}

// GetAccount reads account number and sequence from /auth/accounts/{address}
func (c *LCDClient) GetAccount(ctx context.Context, address string) (*Account, error) {
	body, err := c.do(ctx, http.MethodGet, "/auth/accounts/"+url.PathEscape(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var resp accountResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}

	acc := &Account{
		Address:       resp.Result.Value.Address,
		AccountNumber: string(resp.Result.Value.AccountNumber),
		Sequence:      string(resp.Result.Value.Sequence),
	}
	// Accounts that never received funds come back empty
	if acc.AccountNumber == "" {
		acc.AccountNumber = "0"
	}
	if acc.Sequence == "" {
		acc.Sequence = "0"
	}
	return acc, nil
}

// FetchUnsignedTx GETs an unsigned transaction from an LCD route such as
// microtick/createmarket/{address}/ETHUSD.
func (c *LCDClient) FetchUnsignedTx(ctx context.Context, route string) (txtree.Value, error) {
	body, err := c.do(ctx, http.MethodGet, "/"+strings.TrimLeft(route, "/"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsigned tx: %w", err)
	}

	tx, err := txtree.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode unsigned tx: %w", err)
	}
	return tx, nil
}

// Broadcast POSTs a broadcast body to /txs and returns the raw LCD response
func (c *LCDClient) Broadcast(ctx context.Context, broadcastBody []byte) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodPost, "/txs", broadcastBody)
	if err != nil {
		return nil, fmt.Errorf("failed to broadcast tx: %w", err)
	}
	if !json.Valid(body) {
		return nil, errors.New("failed to broadcast tx: lcd response is not JSON")
	}
	return json.RawMessage(body), nil
}

func (c *LCDClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	zap.L().Debug("lcd request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LCDError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}
