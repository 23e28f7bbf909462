package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/cosmos-wallet/cosmos"
	"github.com/AlexZinkM/cosmos-wallet/internal/client"
	"github.com/AlexZinkM/cosmos-wallet/internal/config"
	"github.com/AlexZinkM/cosmos-wallet/internal/crypto"
	"github.com/AlexZinkM/cosmos-wallet/internal/model"
	"github.com/AlexZinkM/cosmos-wallet/internal/txtree"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// LCD is the part of the LCD client the handler needs
type LCD interface {
	GetAccount(ctx context.Context, address string) (*client.Account, error)
	Broadcast(ctx context.Context, body []byte) (json.RawMessage, error)
}

// CosmosHandler holds the signing wallet and settings for Cosmos operations
type CosmosHandler struct {
	wallet        *cosmos.Wallet
	lcd           LCD
	opts          cosmos.Options
	chainID       string
	broadcastMode string
	validate      *validator.Validate
}

// NewCosmosHandler creates a new CosmosHandler with config values.
// The signing wallet is derived from the mnemonic entered at startup.
func NewCosmosHandler(lcd LCD) (*CosmosHandler, error) {
	mnemonic, err := config.GetMnemonic()
	if err != nil {
		return nil, err
	}

	opts := cosmos.Options{
		Prefix: config.GetBech32Prefix(),
		Path:   config.GetHDPath(),
	}
	wallet, err := cosmos.WalletFromMnemonic(mnemonic, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to derive signing wallet: %w", err)
	}

	return newCosmosHandler(wallet, lcd, opts, config.GetChainID(), config.GetBroadcastMode()), nil
}

func newCosmosHandler(wallet *cosmos.Wallet, lcd LCD, opts cosmos.Options, chainID, mode string) *CosmosHandler {
	return &CosmosHandler{
		wallet:        wallet,
		lcd:           lcd,
		opts:          opts,
		chainID:       chainID,
		broadcastMode: mode,
		validate:      validator.New(),
	}
}

// Generate handles POST /cosmos/generate
// @Summary      Generate new wallet
// @Description  Generates a new 24 word mnemonic and derives its Cosmos address. The mnemonic is returned once and never stored.
// @Tags         cosmos
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /cosmos/generate [post]
func (h *CosmosHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}
	log := requestLogger(w, r)

	wallet, err := cosmos.GenerateWallet(nil, h.opts)
	if err != nil {
		writeError(w, log, err)
		return
	}
	defer wallet.Clear()

	resp, err := wallet.Response()
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("wallet generated", zap.String("address", wallet.Address))
	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success:  true,
		Message:  "Wallet generated successfully",
		Mnemonic: wallet.Mnemonic,
		Wallet:   resp,
	})
}

// Recover handles POST /cosmos/recover
// @Summary      Recover wallet from mnemonic
// @Description  Derives address and public key of an existing mnemonic
// @Tags         cosmos
// @Accept       json
// @Produce      json
// @Param        request  body      model.RecoverRequest  true  "Mnemonic"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /cosmos/recover [post]
func (h *CosmosHandler) Recover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	log := requestLogger(w, r)

	var req model.RecoverRequest
	if err := h.decode(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	wallet, err := cosmos.WalletFromMnemonic(req.Mnemonic, h.opts)
	if err != nil {
		writeError(w, log, err)
		return
	}
	defer wallet.Clear()

	resp, err := wallet.Response()
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Address handles GET /cosmos/address
// @Summary      Get signing wallet address
// @Description  Returns address, public key and QR code of the wallet entered at startup
// @Tags         cosmos
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Router       /cosmos/address [get]
func (h *CosmosHandler) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.wallet.Response()
	if err != nil {
		writeError(w, requestLogger(w, r), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Sign handles POST /cosmos/sign
// @Summary      Sign transaction
// @Description  Signs an unsigned amino JSON StdTx with the startup wallet. Missing account_number or sequence are read from the LCD.
// @Tags         cosmos
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignRequest  true  "Unsigned transaction"
// @Success      200      {object}  model.SignResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /cosmos/sign [post]
func (h *CosmosHandler) Sign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	log := requestLogger(w, r)

	signed, ok := h.signRequest(w, r, log)
	if !ok {
		return
	}

	tx, err := txtree.Marshal(signed.Tx)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("transaction signed", zap.String("address", h.wallet.Address))
	writeJSON(w, http.StatusOK, model.SignResponse{
		Tx:        tx,
		SignBytes: string(signed.SignBytes),
	})
}

// Broadcast handles POST /cosmos/broadcast
// @Summary      Sign and broadcast transaction
// @Description  Signs an unsigned amino JSON StdTx and posts it to the LCD /txs endpoint. No retries.
// @Tags         cosmos
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignRequest  true  "Unsigned transaction"
// @Success      200      {object}  model.BroadcastResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /cosmos/broadcast [post]
func (h *CosmosHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	log := requestLogger(w, r)

	signed, ok := h.signRequest(w, r, log)
	if !ok {
		return
	}

	result, err := cosmos.Broadcast(r.Context(), h.lcd, signed, h.broadcastMode)
	if err != nil {
		writeError(w, log, err)
		return
	}

	tx, err := txtree.Marshal(signed.Tx)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("transaction broadcast", zap.String("address", h.wallet.Address), zap.String("mode", h.broadcastMode))
	writeJSON(w, http.StatusOK, model.BroadcastResponse{Tx: tx, Result: result})
}

// signRequest decodes a SignRequest, fills in missing account state and signs.
// On failure the error response is already written.
func (h *CosmosHandler) signRequest(w http.ResponseWriter, r *http.Request, log *zap.Logger) (*cosmos.SignedTx, bool) {
	var req model.SignRequest
	if err := h.decode(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return nil, false
	}

	tx, err := txtree.Parse(req.Tx)
	if err != nil {
		writeError(w, log, err)
		return nil, false
	}

	meta := txtree.SignMeta{
		Sequence:      req.Sequence,
		AccountNumber: req.AccountNumber,
		ChainID:       req.ChainID,
	}
	if meta.ChainID == "" {
		meta.ChainID = h.chainID
	}
	if meta.ChainID == "" {
		writeBadRequest(w, errors.New("chain_id is required: set it in the request or CHAIN_ID"))
		return nil, false
	}

	if meta.Sequence == "" || meta.AccountNumber == "" {
		acc, err := h.lcd.GetAccount(r.Context(), h.wallet.Address)
		if err != nil {
			writeError(w, log, err)
			return nil, false
		}
		if meta.Sequence == "" {
			meta.Sequence = acc.Sequence
		}
		if meta.AccountNumber == "" {
			meta.AccountNumber = acc.AccountNumber
		}
	}

	signed, err := cosmos.SignTx(tx, h.wallet, meta)
	if err != nil {
		writeError(w, log, err)
		return nil, false
	}
	return signed, true
}

func (h *CosmosHandler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

func requestLogger(w http.ResponseWriter, r *http.Request) *zap.Logger {
	id := r.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", id)
	return zap.L().With(
		zap.String("request_id", id),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
}

// errorStatus maps domain errors to HTTP statuses and error codes
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, crypto.ErrInvalidMnemonic):
		return http.StatusBadRequest, model.CodeInvalidMnemonic
	case errors.Is(err, crypto.ErrInvalidEntropyLength):
		return http.StatusBadRequest, model.CodeInvalidEntropyLength
	case errors.Is(err, crypto.ErrInvalidDerivation):
		return http.StatusBadRequest, model.CodeInvalidDerivation
	case errors.Is(err, crypto.ErrInvalidPublicKeyLength):
		return http.StatusBadRequest, model.CodeInvalidPublicKeyLength
	case errors.Is(err, crypto.ErrInvalidPrivateKey):
		return http.StatusBadRequest, model.CodeInvalidPrivateKey
	case errors.Is(err, txtree.ErrMalformedTxTree):
		return http.StatusBadRequest, model.CodeMalformedTx
	case client.IsLCDError(err):
		return http.StatusBadGateway, model.CodeLCDError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, model.CodeTimeout
	default:
		return http.StatusInternalServerError, model.CodeInternal
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		log.Warn("request rejected", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: model.CodeBadRequest})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
