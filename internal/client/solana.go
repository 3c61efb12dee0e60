package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/AlexZinkM/nebula-dashboard/internal/common"
)

// maxTxVersion is the newest transaction version decoded (v0).
var maxTxVersion uint64

const fetchConcurrency = 4

// SolanaRPC is the subset of *rpc.Client used for token balances and history.
type SolanaRPC interface {
	GetTokenAccountBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error)
	GetSignaturesForAddressWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetSignaturesForAddressOpts) ([]*rpc.TransactionSignature, error)
	GetTransaction(ctx context.Context, txSig solana.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error)
}

// SolanaClient reads SPL token balances and transaction history.
type SolanaClient struct {
	rpc SolanaRPC
}

// NewSolanaClient creates a client for the given RPC endpoint.
func NewSolanaClient(rpcURL string) *SolanaClient {
	return &SolanaClient{rpc: rpc.New(rpcURL)}
}

// NewSolanaClientWithRPC wraps an existing RPC implementation.
func NewSolanaClientWithRPC(r SolanaRPC) *SolanaClient {
	return &SolanaClient{rpc: r}
}

// TokenBalance returns the owner's balance of mint from its associated token account.
// A token account that does not exist yet holds zero.
func (c *SolanaClient) TokenBalance(ctx context.Context, owner, mint solana.PublicKey) (decimal.Decimal, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find associated token account address: %w", err)
	}

	balance, err := c.rpc.GetTokenAccountBalance(ctx, ata, rpc.CommitmentConfirmed)
	if err != nil {
		if isATANotFoundError(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get token account balance: %w", err)
	}
	if balance == nil || balance.Value == nil {
		return decimal.Zero, nil
	}

	raw, err := strconv.ParseUint(balance.Value.Amount, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse token balance amount: %w", err)
	}
	return common.FromBaseUnits(raw, balance.Value.Decimals), nil
}

// Instruction is a top-level instruction of a transaction.
type Instruction struct {
	Program solana.PublicKey
	Data    []byte
}

// Transfer is the owner's net movement in a transaction. Mint is nil for SOL.
type Transfer struct {
	From   string
	To     string
	Amount decimal.Decimal
	Mint   *solana.PublicKey
}

// ParsedTransaction is a transaction reduced to what a history view needs.
type ParsedTransaction struct {
	Signature    solana.Signature
	Slot         uint64
	BlockTime    time.Time
	Failed       bool
	FeePayer     solana.PublicKey
	Fee          uint64
	Instructions []Instruction
	Transfer     *Transfer
}

// Programs returns the distinct invoked program ids in instruction order.
func (p ParsedTransaction) Programs() []solana.PublicKey {
	seen := make(map[solana.PublicKey]bool, len(p.Instructions))
	out := make([]solana.PublicKey, 0, len(p.Instructions))
	for _, ix := range p.Instructions {
		if !seen[ix.Program] {
			seen[ix.Program] = true
			out = append(out, ix.Program)
		}
	}
	return out
}

// RecentTransactions fetches up to limit of the owner's latest transactions, newest first.
func (c *SolanaClient) RecentTransactions(ctx context.Context, owner solana.PublicKey, limit int) ([]ParsedTransaction, error) {
	sigs, err := c.rpc.GetSignaturesForAddressWithOpts(ctx, owner, &rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get signatures: %w", err)
	}

	out := make([]ParsedTransaction, len(sigs))
	found := make([]bool, len(sigs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, s := range sigs {
		g.Go(func() error {
			tx, err := c.rpc.GetTransaction(gctx, s.Signature, &rpc.GetTransactionOpts{
				Encoding:                       solana.EncodingBase64,
				Commitment:                     rpc.CommitmentConfirmed,
				MaxSupportedTransactionVersion: &maxTxVersion,
			})
			if err != nil {
				return fmt.Errorf("failed to get transaction %s: %w", s.Signature, err)
			}
			if tx == nil || tx.Transaction == nil {
				return nil
			}
			decoded, err := tx.Transaction.GetTransaction()
			if err != nil {
				return fmt.Errorf("failed to decode transaction %s: %w", s.Signature, err)
			}
			out[i] = parseTransaction(owner, s.Signature, tx.Slot, tx.BlockTime, decoded, tx.Meta)
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parsed := make([]ParsedTransaction, 0, len(out))
	for i := range out {
		if found[i] {
			parsed = append(parsed, out[i])
		}
	}
	return parsed, nil
}

// parseTransaction extracts the owner's movement. If a token balance of the owner
// changed, the SOL change is the fee; otherwise the SOL change net of fee is the transfer.
func parseTransaction(owner solana.PublicKey, sig solana.Signature, slot uint64, blockTime *solana.UnixTimeSeconds, tx *solana.Transaction, meta *rpc.TransactionMeta) ParsedTransaction {
	p := ParsedTransaction{
		Signature: sig,
		Slot:      slot,
	}
	if blockTime != nil {
		p.BlockTime = time.Unix(int64(*blockTime), 0).UTC()
	}
	if meta != nil {
		p.Failed = meta.Err != nil
		p.Fee = meta.Fee
	}
	var keys []solana.PublicKey
	if tx != nil {
		keys = tx.Message.AccountKeys
		for _, ix := range tx.Message.Instructions {
			if int(ix.ProgramIDIndex) >= len(keys) {
				continue
			}
			p.Instructions = append(p.Instructions, Instruction{
				Program: keys[ix.ProgramIDIndex],
				Data:    []byte(ix.Data),
			})
		}
	}
	if len(keys) > 0 {
		p.FeePayer = keys[0]
	}
	if meta == nil {
		return p
	}

	if t := tokenTransfer(owner, meta); t != nil {
		p.Transfer = t
		return p
	}
	p.Transfer = solTransfer(owner, keys, meta)
	return p
}

// tokenTransfer reports the first mint whose balance changed for owner. The
// counterparty is the account with the largest opposite change; ties go to the
// account listed first.
func tokenTransfer(owner solana.PublicKey, meta *rpc.TransactionMeta) *Transfer {
	type key struct {
		mint  solana.PublicKey
		owner string
	}
	deltas := make(map[key]int64)
	decimals := make(map[solana.PublicKey]uint8)
	var mints []solana.PublicKey
	var order []key

	add := func(balances []rpc.TokenBalance, sign int64) {
		for _, b := range balances {
			if b.Owner == nil || b.UiTokenAmount == nil {
				continue
			}
			amt, err := strconv.ParseUint(b.UiTokenAmount.Amount, 10, 64)
			if err != nil {
				continue
			}
			if _, ok := decimals[b.Mint]; !ok {
				mints = append(mints, b.Mint)
			}
			decimals[b.Mint] = b.UiTokenAmount.Decimals
			k := key{b.Mint, b.Owner.String()}
			if _, seen := deltas[k]; !seen {
				order = append(order, k)
			}
			deltas[k] += sign * int64(amt)
		}
	}
	add(meta.PreTokenBalances, -1)
	add(meta.PostTokenBalances, 1)

	counterparty := func(mint solana.PublicKey, sign int64) string {
		var best string
		var bestDelta int64
		for _, k := range order {
			if k.mint != mint {
				continue
			}
			if d := deltas[k] * sign; d > bestDelta {
				best, bestDelta = k.owner, d
			}
		}
		return best
	}

	ownerStr := owner.String()
	for _, mint := range mints {
		ours := deltas[key{mint, ownerStr}]
		if ours == 0 {
			continue
		}

		t := &Transfer{Mint: &mint}
		var amount uint64
		if ours > 0 {
			amount = uint64(ours)
			t.To = ownerStr
			t.From = counterparty(mint, -1)
		} else {
			amount = uint64(-ours)
			t.From = ownerStr
			t.To = counterparty(mint, 1)
		}
		t.Amount = common.FromBaseUnits(amount, decimals[mint])
		return t
	}
	return nil
}

func solTransfer(owner solana.PublicKey, keys []solana.PublicKey, meta *rpc.TransactionMeta) *Transfer {
	n := min(len(keys), len(meta.PreBalances), len(meta.PostBalances))
	delta := func(i int) int64 {
		return int64(meta.PostBalances[i]) - int64(meta.PreBalances[i])
	}

	ownerIndex := -1
	for i := 0; i < n; i++ {
		if keys[i].Equals(owner) {
			ownerIndex = i
			break
		}
	}
	if ownerIndex < 0 {
		return nil
	}

	ours := delta(ownerIndex)
	if ownerIndex == 0 {
		ours += int64(meta.Fee)
	}
	if ours == 0 {
		return nil
	}

	ownerStr := owner.String()
	t := &Transfer{}
	if ours > 0 {
		t.To = ownerStr
		t.Amount = common.LamportsToSOL(uint64(ours))
		for i := 0; i < n; i++ {
			if i != ownerIndex && delta(i) < 0 {
				t.From = keys[i].String()
				break
			}
		}
	} else {
		t.From = ownerStr
		t.Amount = common.LamportsToSOL(uint64(-ours))
		for i := 0; i < n; i++ {
			if i != ownerIndex && delta(i) > 0 {
				t.To = keys[i].String()
				break
			}
		}
	}
	return t
}

// isATANotFoundError checks if error indicates that token account doesn't exist
func isATANotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
