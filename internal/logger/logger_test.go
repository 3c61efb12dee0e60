package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("balance refreshed for %s", "devnet")
	Warn("slow rpc: %dms", 1200)

	out := buf.String()
	assert.Contains(t, out, "balance refreshed for devnet")
	assert.Contains(t, out, "slow rpc: 1200ms")
	assert.Contains(t, out, "[info]")
}

func TestInitFileOnly(t *testing.T) {
	dir := t.TempDir()
	path, err := InitFileOnly(dir)
	require.NoError(t, err)
	defer Close()

	Error("connect failed: %v", "user rejected")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"connect failed: user rejected"`)
	assert.Contains(t, string(data), `"level":"error"`)
}
