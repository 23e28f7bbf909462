package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlexZinkM/cosmos-wallet/internal/crypto"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the signing mnemonic is prompted at runtime and kept in memory - use GetMnemonic()
type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	Bech32Prefix  string `envconfig:"BECH32_PREFIX" default:"cosmos"`
	HDPath        string `envconfig:"HD_PATH" default:"m/44'/118'/0'/0/0"`
	LCDURL        string `envconfig:"LCD_URL" default:"http://localhost:1317"`
	LCDTimeout    int    `envconfig:"LCD_TIMEOUT_SECONDS" default:"15"`
	BroadcastMode string `envconfig:"BROADCAST_MODE" default:"block"`
	ChainID       string `envconfig:"CHAIN_ID"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	if _, err := crypto.ParsePath(c.HDPath); err != nil {
		return fmt.Errorf("HD_PATH: %w", err)
	}
	if c.Bech32Prefix == "" {
		return errors.New("BECH32_PREFIX must not be empty")
	}
	switch c.BroadcastMode {
	case "block", "sync", "async":
	default:
		return fmt.Errorf("BROADCAST_MODE must be block, sync or async, got %q", c.BroadcastMode)
	}
	if c.LCDTimeout <= 0 {
		return fmt.Errorf("LCD_TIMEOUT_SECONDS must be positive, got %d", c.LCDTimeout)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetBech32Prefix returns the account address prefix
func GetBech32Prefix() string {
	return Get().Bech32Prefix
}

// GetHDPath returns the parsed derivation path. The path was validated in Init.
func GetHDPath() crypto.Path {
	path, err := crypto.ParsePath(Get().HDPath)
	if err != nil {
		panic(fmt.Sprintf("HD_PATH changed after Init: %v", err))
	}
	return path
}

// GetLCDURL returns the Cosmos LCD REST endpoint
func GetLCDURL() string {
	return Get().LCDURL
}

// GetLCDTimeout returns the LCD HTTP client timeout
func GetLCDTimeout() time.Duration {
	return time.Duration(Get().LCDTimeout) * time.Second
}

// GetBroadcastMode returns the broadcast "return" mode
func GetBroadcastMode() string {
	return Get().BroadcastMode
}

// GetChainID returns the default chain id, may be empty
func GetChainID() string {
	return Get().ChainID
}

// GetLogLevel returns the zap log level name
func GetLogLevel() string {
	return Get().LogLevel
}

var mnemonic string

// PromptForMnemonic prompts the user for the signing mnemonic in the terminal.
// The phrase is read without echoing (hidden input), validated and kept in memory.
// Call this at startup before the server begins handling requests.
func PromptForMnemonic() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter the mnemonic")
	}
	fmt.Fprint(os.Stderr, "Enter wallet mnemonic: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read mnemonic: %w", err)
	}
	defer clear(raw)

	return SetMnemonic(string(raw))
}

// SetMnemonic validates and stores the signing mnemonic.
func SetMnemonic(m string) error {
	m = crypto.NormalizeMnemonic(m)
	if m == "" {
		return errors.New("mnemonic cannot be empty")
	}
	if err := crypto.ValidateMnemonic(m); err != nil {
		return err
	}
	mnemonic = m
	return nil
}

// GetMnemonic returns the mnemonic stored in memory (from PromptForMnemonic).
// Returns an error if the mnemonic was not set.
func GetMnemonic() (string, error) {
	if mnemonic == "" {
		return "", errors.New("mnemonic not set: call PromptForMnemonic at startup")
	}
	return mnemonic, nil
}
