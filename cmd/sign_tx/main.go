// One-off: derive a wallet, fetch an unsigned tx from an LCD route, sign it and print the signed tx.
// Usage: go run ./cmd/sign_tx [route] [--generate] [--broadcast]
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/AlexZinkM/cosmos-wallet/cosmos"
	"github.com/AlexZinkM/cosmos-wallet/internal/client"
	"github.com/AlexZinkM/cosmos-wallet/internal/config"
	"github.com/AlexZinkM/cosmos-wallet/internal/txtree"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultRoute = "microtick/createmarket/{address}/ETHUSD"

const longHelp = `Fetches an unsigned amino JSON transaction from LCD_URL/<route>, signs it
with the wallet of the entered mnemonic and prints the signed transaction.
{address} in the route is replaced by the wallet address.`

type options struct {
	generate      bool
	broadcast     bool
	chainID       string
	sequence      string
	accountNumber string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "sign_tx [route]",
		Short: "Fetch an unsigned tx from the LCD, sign it and print it",
		Long:  longHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := defaultRoute
			if len(args) == 1 {
				route = args[0]
			}
			return run(cmd.Context(), cmd, route, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&opts.generate, "generate", false, "use a freshly generated wallet instead of prompting for a mnemonic")
	cmd.Flags().BoolVar(&opts.broadcast, "broadcast", false, "broadcast the signed tx and print the LCD result")
	cmd.Flags().StringVar(&opts.chainID, "chain-id", "", "chain id (default CHAIN_ID)")
	cmd.Flags().StringVar(&opts.sequence, "sequence", "", "account sequence (default: read from the LCD)")
	cmd.Flags().StringVar(&opts.accountNumber, "account-number", "", "account number (default: read from the LCD)")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, route string, opts options) error {
	if err := config.Init(); err != nil {
		return err
	}
	walletOpts := cosmos.Options{Prefix: config.GetBech32Prefix(), Path: config.GetHDPath()}

	wallet, err := loadWallet(walletOpts, opts.generate)
	if err != nil {
		return err
	}
	defer wallet.Clear()
	if wallet.Mnemonic != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Generated mnemonic:", wallet.Mnemonic)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Address:", wallet.Address)

	lcd := client.NewLCDClient(config.GetLCDURL(), config.GetLCDTimeout())

	tx, err := lcd.FetchUnsignedTx(ctx, strings.ReplaceAll(route, "{address}", wallet.Address))
	if err != nil {
		return err
	}

	meta := txtree.SignMeta{
		Sequence:      opts.sequence,
		AccountNumber: opts.accountNumber,
		ChainID:       opts.chainID,
	}
	if meta.ChainID == "" {
		meta.ChainID = config.GetChainID()
	}
	if meta.ChainID == "" {
		return fmt.Errorf("chain id is required: pass --chain-id or set CHAIN_ID")
	}
	if meta.Sequence == "" || meta.AccountNumber == "" {
		acc, err := lcd.GetAccount(ctx, wallet.Address)
		if err != nil {
			return err
		}
		if meta.Sequence == "" {
			meta.Sequence = acc.Sequence
		}
		if meta.AccountNumber == "" {
			meta.AccountNumber = acc.AccountNumber
		}
	}

	signed, err := cosmos.SignTx(tx, wallet, meta)
	if err != nil {
		return err
	}

	out, err := txtree.Marshal(signed.Tx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !opts.broadcast {
		return nil
	}
	result, err := cosmos.Broadcast(ctx, lcd, signed, config.GetBroadcastMode())
	if err != nil {
		return err
	}
	zap.L().Info("broadcast done", zap.String("address", wallet.Address))
	fmt.Fprintln(cmd.OutOrStdout(), string(result))
	return nil
}

func loadWallet(opts cosmos.Options, generate bool) (*cosmos.Wallet, error) {
	if generate {
		return cosmos.GenerateWallet(nil, opts)
	}
	if err := config.PromptForMnemonic(); err != nil {
		return nil, err
	}
	mnemonic, err := config.GetMnemonic()
	if err != nil {
		return nil, err
	}
	return cosmos.WalletFromMnemonic(mnemonic, opts)
}

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}
