package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexZinkM/cosmos-wallet/internal/txtree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLCD(t *testing.T, handler http.HandlerFunc) *LCDClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewLCDClient(srv.URL+"/", 5*time.Second)
}

func TestGetAccount(t *testing.T) {
	lcd := newTestLCD(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/accounts/cosmos1abc", r.URL.Path)
		w.Write([]byte(`{"height":"120","result":{"type":"cosmos-sdk/Account","value":{"address":"cosmos1abc","account_number":"9","sequence":"4"}}}`))
	})

	acc, err := lcd.GetAccount(context.Background(), "cosmos1abc")
	require.NoError(t, err)
	assert.Equal(t, &Account{Address: "cosmos1abc", AccountNumber: "9", Sequence: "4"}, acc)
}

func TestGetAccountNumericFieldsAndEmptyAccount(t *testing.T) {
	lcd := newTestLCD(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/accounts/cosmos1num" {
			w.Write([]byte(`{"result":{"value":{"address":"cosmos1num","account_number":12,"sequence":0}}}`))
			return
		}
		w.Write([]byte(`{"height":"1","result":{"type":"cosmos-sdk/Account","value":{"address":"","account_number":"","sequence":""}}}`))
	})

	acc, err := lcd.GetAccount(context.Background(), "cosmos1num")
	require.NoError(t, err)
	assert.Equal(t, "12", acc.AccountNumber)
	assert.Equal(t, "0", acc.Sequence)

	acc, err = lcd.GetAccount(context.Background(), "cosmos1new")
	require.NoError(t, err)
	assert.Equal(t, "0", acc.AccountNumber)
	assert.Equal(t, "0", acc.Sequence)
}

func TestFetchUnsignedTx(t *testing.T) {
	lcd := newTestLCD(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/microtick/createmarket/cosmos1abc/ETHUSD", r.URL.Path)
		w.Write([]byte(`{"type":"auth/StdTx","value":{"msg":[],"fee":{"amount":null,"gas":"200000"},"signatures":null,"memo":""}}`))
	})

	tx, err := lcd.FetchUnsignedTx(context.Background(), "microtick/createmarket/cosmos1abc/ETHUSD")
	require.NoError(t, err)

	body, typ := txtree.UnwrapStdTx(tx)
	assert.Equal(t, "auth/StdTx", typ)
	assert.Equal(t, []string{"msg", "fee", "signatures", "memo"}, body.(txtree.Object).Keys())
}

func TestFetchUnsignedTxRejectsGarbage(t *testing.T) {
	lcd := newTestLCD(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	_, err := lcd.FetchUnsignedTx(context.Background(), "/anything")
	require.ErrorIs(t, err, txtree.ErrMalformedTxTree)
}

func TestBroadcast(t *testing.T) {
	lcd := newTestLCD(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/txs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, `{"tx":{},"return":"block"}`, string(body))
		w.Write([]byte(`{"height":"5","txhash":"ABCD"}`))
	})

	res, err := lcd.Broadcast(context.Background(), []byte(`{"tx":{},"return":"block"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"height":"5","txhash":"ABCD"}`, string(res))
}

func TestLCDErrorStatus(t *testing.T) {
	lcd := newTestLCD(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"signature verification failed"}`, http.StatusUnauthorized)
	})

	_, err := lcd.Broadcast(context.Background(), []byte(`{}`))
	require.Error(t, err)
	require.True(t, IsLCDError(err))
	assert.Contains(t, err.Error(), "signature verification failed")
	assert.Contains(t, err.Error(), "401")
}

func TestLCDRespectsContext(t *testing.T) {
	lcd := newTestLCD(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lcd.GetAccount(ctx, "cosmos1abc")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsLCDError(err))
}
