package api

import (
	"net/http"

	_ "github.com/AlexZinkM/cosmos-wallet/docs"
	"github.com/AlexZinkM/cosmos-wallet/internal/client"
	"github.com/AlexZinkM/cosmos-wallet/internal/config"
	"github.com/AlexZinkM/cosmos-wallet/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	lcd := client.NewLCDClient(config.GetLCDURL(), config.GetLCDTimeout())

	cosmosHandler, err := handler.NewCosmosHandler(lcd)
	if err != nil {
		return nil, err
	}

	return newRouter(cosmosHandler), nil
}

func newRouter(cosmosHandler *handler.CosmosHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Cosmos endpoints
	mux.HandleFunc("/cosmos/generate", cosmosHandler.Generate)
	mux.HandleFunc("/cosmos/recover", cosmosHandler.Recover)
	mux.HandleFunc("/cosmos/address", cosmosHandler.Address)
	mux.HandleFunc("/cosmos/sign", cosmosHandler.Sign)
	mux.HandleFunc("/cosmos/broadcast", cosmosHandler.Broadcast)

	return mux
}
