package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/AlexZinkM/nebula-dashboard/internal/common"
)

// NetworkFeeLamports is the base fee of a single-signature transaction.
const NetworkFeeLamports = 5000

var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSelfTransfer      = errors.New("cannot transfer to own address")
)

// BuildTransfer creates an unsigned SOL transfer from the connected address. The
// cached balance must cover amount plus the network fee.
func (s *Session) BuildTransfer(ctx context.Context, to solana.PublicKey, amount decimal.Decimal) (*solana.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	connected := s.state.Connected && s.state.Address != nil && s.client != nil
	var from solana.PublicKey
	var balance decimal.Decimal
	client := s.client
	if connected {
		from = *s.state.Address
		balance = s.state.Balance
	}
	s.mu.Unlock()

	if !connected {
		return nil, ErrNotConnected
	}
	if from.Equals(to) {
		return nil, ErrSelfTransfer
	}

	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, err
	}
	if lamports == 0 {
		return nil, ErrInvalidAmount
	}

	required := amount.Add(common.LamportsToSOL(NetworkFeeLamports))
	if balance.LessThan(required) {
		return nil, fmt.Errorf("%w: need %s SOL (including fee), have %s SOL", ErrInsufficientFunds, required, balance)
	}

	recent, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(lamports, from, to).Build(),
		},
		recent.Value.Blockhash,
		solana.TransactionPayer(from),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}
