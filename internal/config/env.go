package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"

	"github.com/AlexZinkM/nebula-dashboard/internal/model"
)

const appDirName = "nebula-dashboard"

// Config contains all configuration parameters for the application.
// Note: the keystore password is prompted at runtime and stored in memory - use GetKeystorePasswordBytes()
type Config struct {
	HTTPAddr       string   `envconfig:"HTTP_ADDR" default:":8080"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	RatePerMinute  int      `envconfig:"RATE_PER_MINUTE" default:"0"`

	Network       string `envconfig:"SOLANA_NETWORK" default:"devnet"`
	RPCURLMainnet string `envconfig:"SOLANA_RPC_URL_MAINNET" default:"https://api.mainnet-beta.solana.com"`
	RPCURLDevnet  string `envconfig:"SOLANA_RPC_URL_DEVNET" default:"https://api.devnet.solana.com"`
	RPCURLTestnet string `envconfig:"SOLANA_RPC_URL_TESTNET" default:"https://api.testnet.solana.com"`

	KeystorePath string `envconfig:"KEYSTORE_PATH"`
	PrefsPath    string `envconfig:"PREFS_PATH"`
	TokensFile   string `envconfig:"TOKENS_FILE"`
	RecordsFile  string `envconfig:"RECORDS_FILE"`

	MissionRegistryProgram string `envconfig:"MISSION_REGISTRY_PROGRAM"`
	StakingProgram         string `envconfig:"STAKING_PROGRAM"`
	NebulaTokenMint        string `envconfig:"NEBULA_TOKEN_MINT"`

	CoinGeckoURL string `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3"`
	FiatCurrency string `envconfig:"FIAT_CURRENCY" default:"usd"`
	RecordsLimit int    `envconfig:"RECORDS_LIMIT" default:"50"`

	BalancePollInterval time.Duration `envconfig:"BALANCE_POLL_INTERVAL" default:"30s"`
	ErrorTTL            time.Duration `envconfig:"ERROR_TTL" default:"5s"`
	CopyAck             time.Duration `envconfig:"COPY_ACK" default:"2s"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads .env files (if any) and then configuration from environment variables.
func Init() error {
	// A missing .env is normal; variables may come from the real environment.
	_ = godotenv.Load()

	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load parses the environment into a fresh Config without touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks values envconfig cannot check by itself.
func (c *Config) Validate() error {
	if _, err := model.ParseNetwork(c.Network); err != nil {
		return fmt.Errorf("invalid SOLANA_NETWORK: %w", err)
	}
	if c.BalancePollInterval <= 0 {
		return fmt.Errorf("BALANCE_POLL_INTERVAL must be positive, got: %s", c.BalancePollInterval)
	}
	if c.ErrorTTL <= 0 {
		return fmt.Errorf("ERROR_TTL must be positive, got: %s", c.ErrorTTL)
	}
	if c.CopyAck <= 0 {
		return fmt.Errorf("COPY_ACK must be positive, got: %s", c.CopyAck)
	}
	if c.RecordsLimit <= 0 || c.RecordsLimit > 1000 {
		return fmt.Errorf("RECORDS_LIMIT must be between 1 and 1000, got: %d", c.RecordsLimit)
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

// DefaultNetwork returns the configured network used when nothing was persisted.
func (c *Config) DefaultNetwork() model.Network {
	n, err := model.ParseNetwork(c.Network)
	if err != nil {
		return model.NetworkDevnet
	}
	return n
}

// RPCURL returns the RPC endpoint for the network. Each endpoint falls back to the
// public cluster URL when the variable is unset.
func (c *Config) RPCURL(network model.Network) string {
	switch network {
	case model.NetworkMainnet:
		return c.RPCURLMainnet
	case model.NetworkTestnet:
		return c.RPCURLTestnet
	default:
		return c.RPCURLDevnet
	}
}

// ResolvePrefsPath returns PREFS_PATH or prefs.toml under the user config dir.
func (c *Config) ResolvePrefsPath() (string, error) {
	if c.PrefsPath != "" {
		return c.PrefsPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, "prefs.toml"), nil
}

var passwordBytes []byte

// PromptForPassword prompts the user for the keystore password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter keystore password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetKeystorePasswordBytes returns the password stored in memory (from PromptForPassword).
// Caller must zero the returned slice after use.
func GetKeystorePasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
