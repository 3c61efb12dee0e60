package keystore

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	scryptN = 1 << 4
	os.Exit(m.Run())
}

func staticPassword(p string) PasswordFunc {
	return func() ([]byte, error) { return []byte(p), nil }
}

func TestGenerateAndDecrypt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")

	addr, err := Generate(path, []byte("hunter2"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, utf8BOM, raw[:3])

	header, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, addr.String(), header.Address)
	assert.Equal(t, "solana", header.Network)
	png, err := base64.StdEncoding.DecodeString(header.QR)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, secret, err := Decrypt(path, []byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, addr, solana.PrivateKey(secret.PrivateKey).PublicKey())
}

func TestDecrypt_WrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	_, err := Generate(path, []byte("right"))
	require.NoError(t, err)

	_, _, err = Decrypt(path, []byte("wrong"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestGenerate_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	_, err := Generate(path, []byte("pw"))
	require.NoError(t, err)

	_, err = Generate(path, []byte("pw"))
	require.Error(t, err)
	assert.True(t, IsFileExistsError(err))
}

func TestGenerate_Extension(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "wallet.json"), []byte("pw"))
	assert.ErrorIs(t, err, ErrBadExtension)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.cwt"))
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestAdapter_ConnectSignDisconnect(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	addr, err := Generate(path, []byte("pw"))
	require.NoError(t, err)

	a := NewAdapter(path, staticPassword("pw"))

	_, err = a.SignMessage(ctx, []byte("hello"))
	assert.ErrorIs(t, err, ErrLocked)

	pub, err := a.Connect(ctx)
	require.NoError(t, err)
	assert.Equal(t, addr, pub)

	sig, err := a.SignMessage(ctx, []byte("hello"))
	require.NoError(t, err)
	assert.True(t, sig.Verify(pub, []byte("hello")))

	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(1, pub, solana.NewWallet().PublicKey()).Build()},
		solana.Hash{7},
		solana.TransactionPayer(pub),
	)
	require.NoError(t, err)
	signed, err := a.SignAllTransactions(ctx, []*solana.Transaction{tx})
	require.NoError(t, err)
	assert.NoError(t, signed[0].VerifySignatures())

	require.NoError(t, a.Disconnect(ctx))
	_, err = a.SignTransaction(ctx, tx)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestAdapter_WrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	_, err := Generate(path, []byte("pw"))
	require.NoError(t, err)

	_, err = NewAdapter(path, staticPassword("nope")).Connect(context.Background())
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
