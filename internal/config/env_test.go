package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/nebula-dashboard/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"HTTP_ADDR", "SOLANA_NETWORK", "SOLANA_RPC_URL_MAINNET", "SOLANA_RPC_URL_DEVNET",
		"SOLANA_RPC_URL_TESTNET", "BALANCE_POLL_INTERVAL", "ERROR_TTL", "COPY_ACK", "RECORDS_LIMIT",
	} {
		unsetEnv(t, k)
	}

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, model.NetworkDevnet, c.DefaultNetwork())
	assert.Equal(t, "https://api.mainnet-beta.solana.com", c.RPCURL(model.NetworkMainnet))
	assert.Equal(t, "https://api.devnet.solana.com", c.RPCURL(model.NetworkDevnet))
	assert.Equal(t, "https://api.testnet.solana.com", c.RPCURL(model.NetworkTestnet))
	assert.Equal(t, 30*time.Second, c.BalancePollInterval)
	assert.Equal(t, 5*time.Second, c.ErrorTTL)
	assert.Equal(t, 2*time.Second, c.CopyAck)
}

// unsetEnv removes k for the duration of the test; envconfig only applies
// defaults to variables that are absent, not empty.
func unsetEnv(t *testing.T, k string) {
	t.Helper()
	t.Setenv(k, "")
	require.NoError(t, os.Unsetenv(k))
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SOLANA_NETWORK", "mainnet")
	t.Setenv("SOLANA_RPC_URL_MAINNET", "https://rpc.example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("ERROR_TTL", "250ms")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, model.NetworkMainnet, c.DefaultNetwork())
	assert.Equal(t, "https://rpc.example.com", c.RPCURL(model.NetworkMainnet))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, c.ErrorTTL)
}

func TestLoad_InvalidNetwork(t *testing.T) {
	t.Setenv("SOLANA_NETWORK", "localnet")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidNetwork)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("BALANCE_POLL_INTERVAL", "0s")

	_, err := Load()
	require.Error(t, err)
}

func TestResolvePrefsPath(t *testing.T) {
	explicit := filepath.Join(t.TempDir(), "p.toml")
	c := &Config{PrefsPath: explicit}
	got, err := c.ResolvePrefsPath()
	require.NoError(t, err)
	assert.Equal(t, explicit, got)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	c = &Config{}
	got, err = c.ResolvePrefsPath()
	require.NoError(t, err)
	assert.Equal(t, "prefs.toml", filepath.Base(got))
	assert.Equal(t, appDirName, filepath.Base(filepath.Dir(got)))
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	saved := cfg
	cfg = nil
	defer func() { cfg = saved }()

	assert.Panics(t, func() { Get() })
}
