package keystore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
)

var ErrLocked = errors.New("keystore is locked")

// PasswordFunc supplies the keystore password. The returned slice is zeroed after use.
type PasswordFunc func() ([]byte, error)

// Adapter is a wallet backed by a local keystore file. The private key is held in
// memory only between Connect and Disconnect.
type Adapter struct {
	path     string
	password PasswordFunc

	mu  sync.Mutex
	key solana.PrivateKey
}

func NewAdapter(path string, password PasswordFunc) *Adapter {
	return &Adapter{path: path, password: password}
}

func (a *Adapter) Name() string { return "keystore" }

// Connect decrypts the keystore and checks the key matches the stored address.
func (a *Adapter) Connect(_ context.Context) (solana.PublicKey, error) {
	password, err := a.password()
	if err != nil {
		return solana.PublicKey{}, err
	}
	defer clear(password)

	header, secret, err := Decrypt(a.path, password)
	if err != nil {
		return solana.PublicKey{}, err
	}
	if len(secret.PrivateKey) != 64 {
		clear(secret.PrivateKey)
		return solana.PublicKey{}, fmt.Errorf("invalid private key length: expected 64 bytes, got %d", len(secret.PrivateKey))
	}

	key := solana.PrivateKey(secret.PrivateKey)
	pub := key.PublicKey()
	if header.Address != pub.String() {
		clear(key)
		return solana.PublicKey{}, fmt.Errorf("private key does not match address %s", header.Address)
	}

	a.mu.Lock()
	clear(a.key)
	a.key = key
	a.mu.Unlock()
	return pub, nil
}

// Disconnect wipes the in-memory key.
func (a *Adapter) Disconnect(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.key)
	a.key = nil
	return nil
}

func (a *Adapter) SignMessage(_ context.Context, message []byte) (solana.Signature, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.key == nil {
		return solana.Signature{}, ErrLocked
	}
	return a.key.Sign(message)
}

func (a *Adapter) SignTransaction(_ context.Context, tx *solana.Transaction) (*solana.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.signLocked(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (a *Adapter) SignAllTransactions(_ context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, tx := range txs {
		if err := a.signLocked(tx); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return txs, nil
}

func (a *Adapter) signLocked(tx *solana.Transaction) error {
	if a.key == nil {
		return ErrLocked
	}
	pub := a.key.PublicKey()
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(pub) {
			return &a.key
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}
