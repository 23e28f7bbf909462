// Local Cosmos wallet server. The signing mnemonic is entered at startup.
// Usage: go run ./cmd/cosmos-wallet
//
// @title        Cosmos Wallet API
// @version      1.0
// @description  Local Cosmos wallet: key derivation, amino JSON signing and LCD broadcast.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/cosmos-wallet/internal/api"
	"github.com/AlexZinkM/cosmos-wallet/internal/config"

	"go.uber.org/zap"
)

func main() {
	if err := config.Init(); err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	logger, err := newLogger(config.GetLogLevel())
	if err != nil {
		zap.L().Fatal("Failed to create logger", zap.Error(err))
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := config.PromptForMnemonic(); err != nil {
		zap.L().Fatal("Failed to read mnemonic", zap.Error(err))
	}

	router, err := api.SetupRouter()
	if err != nil {
		zap.L().Fatal("Failed to set up router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zap.L().Info("Starting server",
			zap.String("addr", srv.Addr),
			zap.String("lcd", config.GetLCDURL()),
			zap.String("chain_id", config.GetChainID()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Shutdown failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}
