package wallet

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/AlexZinkM/nebula-dashboard/internal/model"
)

var (
	// ErrNotConnected is returned by operations that need a live session.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrUnsupported is returned when the connected wallet lacks a capability.
	ErrUnsupported = errors.New("operation not supported by wallet")
)

// Adapter is the external wallet: key custody and the connection handshake live there.
type Adapter interface {
	Name() string
	Connect(ctx context.Context) (solana.PublicKey, error)
	Disconnect(ctx context.Context) error
}

// MessageSigner is implemented by wallets that can sign arbitrary bytes.
type MessageSigner interface {
	SignMessage(ctx context.Context, message []byte) (solana.Signature, error)
}

// TransactionSigner is implemented by wallets that can sign transactions.
type TransactionSigner interface {
	SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error)
	SignAllTransactions(ctx context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error)
}

// TransactionSender is implemented by wallets that submit transactions themselves.
type TransactionSender interface {
	SendTransaction(ctx context.Context, tx *solana.Transaction, client RPC) (solana.Signature, error)
}

// RPC is the subset of the Solana JSON-RPC client the session uses. *rpc.Client satisfies it.
type RPC interface {
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
}

// Dialer returns the RPC client for a network.
type Dialer func(network model.Network) RPC

// NewDialer builds a Dialer that creates a solana-go client per call, using urlFor
// to pick the endpoint.
func NewDialer(urlFor func(model.Network) string) Dialer {
	return func(network model.Network) RPC {
		return rpc.New(urlFor(network))
	}
}
