package client

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSolanaRPC struct {
	tokenBalance *rpc.GetTokenAccountBalanceResult
	tokenErr     error
	queried      solana.PublicKey
	sigs         []*rpc.TransactionSignature
	txErr        error
}

func (f *fakeSolanaRPC) GetTokenAccountBalance(_ context.Context, account solana.PublicKey, _ rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error) {
	f.queried = account
	return f.tokenBalance, f.tokenErr
}

func (f *fakeSolanaRPC) GetSignaturesForAddressWithOpts(context.Context, solana.PublicKey, *rpc.GetSignaturesForAddressOpts) ([]*rpc.TransactionSignature, error) {
	return f.sigs, nil
}

func (f *fakeSolanaRPC) GetTransaction(context.Context, solana.Signature, *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error) {
	return nil, f.txErr
}

func TestTokenBalance(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)

	f := &fakeSolanaRPC{tokenBalance: &rpc.GetTokenAccountBalanceResult{
		Value: &rpc.UiTokenAmount{Amount: "12345678", Decimals: 6},
	}}
	bal, err := NewSolanaClientWithRPC(f).TokenBalance(context.Background(), owner, mint)
	require.NoError(t, err)
	assert.Equal(t, ata, f.queried)
	assert.True(t, bal.Equal(decimal.RequireFromString("12.345678")))
}

func TestTokenBalance_MissingAccountIsZero(t *testing.T) {
	f := &fakeSolanaRPC{tokenErr: errors.New("rpc error: could not find account")}
	bal, err := NewSolanaClientWithRPC(f).TokenBalance(context.Background(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
}

func TestTokenBalance_OtherErrors(t *testing.T) {
	f := &fakeSolanaRPC{tokenErr: errors.New("connection refused")}
	_, err := NewSolanaClientWithRPC(f).TokenBalance(context.Background(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey())
	assert.ErrorContains(t, err, "connection refused")
}

func TestRecentTransactions_PropagatesFetchError(t *testing.T) {
	f := &fakeSolanaRPC{
		sigs:  []*rpc.TransactionSignature{{Signature: solana.Signature{1}}, {Signature: solana.Signature{2}}},
		txErr: errors.New("429 too many requests"),
	}
	_, err := NewSolanaClientWithRPC(f).RecentTransactions(context.Background(), solana.NewWallet().PublicKey(), 10)
	assert.ErrorContains(t, err, "429")
}

func TestRecentTransactions_Empty(t *testing.T) {
	txs, err := NewSolanaClientWithRPC(&fakeSolanaRPC{}).RecentTransactions(context.Background(), solana.NewWallet().PublicKey(), 10)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParseTransaction_SOLSend(t *testing.T) {
	from := solana.NewWallet().PublicKey()
	to := solana.NewWallet().PublicKey()
	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(1_000_000_000, from, to).Build()},
		solana.Hash{},
		solana.TransactionPayer(from),
	)
	require.NoError(t, err)

	meta := &rpc.TransactionMeta{
		Fee:          5000,
		PreBalances:  []uint64{10_000_000_000, 0, 1},
		PostBalances: []uint64{8_999_995_000, 1_000_000_000, 1},
	}
	blockTime := solana.UnixTimeSeconds(1_700_000_000)

	p := parseTransaction(from, solana.Signature{3}, 42, &blockTime, tx, meta)

	assert.False(t, p.Failed)
	assert.Equal(t, from, p.FeePayer)
	assert.Equal(t, uint64(5000), p.Fee)
	assert.Equal(t, int64(1_700_000_000), p.BlockTime.Unix())
	assert.Equal(t, []solana.PublicKey{solana.SystemProgramID}, p.Programs())
	require.NotNil(t, p.Transfer)
	assert.Nil(t, p.Transfer.Mint)
	assert.Equal(t, from.String(), p.Transfer.From)
	assert.Equal(t, to.String(), p.Transfer.To)
	assert.True(t, p.Transfer.Amount.Equal(decimal.NewFromInt(1)))

	received := parseTransaction(to, solana.Signature{3}, 42, nil, tx, meta)
	require.NotNil(t, received.Transfer)
	assert.Equal(t, from.String(), received.Transfer.From)
	assert.Equal(t, to.String(), received.Transfer.To)
	assert.True(t, received.Transfer.Amount.Equal(decimal.NewFromInt(1)))
}

func TestParseTransaction_TokenMovementWins(t *testing.T) {
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	meta := &rpc.TransactionMeta{
		Fee:          5000,
		Err:          map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}},
		PreBalances:  []uint64{1_000_000},
		PostBalances: []uint64{995_000},
		PreTokenBalances: []rpc.TokenBalance{
			{Owner: &alice, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "100000000", Decimals: 6}},
			{Owner: &bob, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "0", Decimals: 6}},
		},
		PostTokenBalances: []rpc.TokenBalance{
			{Owner: &alice, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "40000000", Decimals: 6}},
			{Owner: &bob, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: "60000000", Decimals: 6}},
		},
	}

	p := parseTransaction(bob, solana.Signature{4}, 1, nil, nil, meta)

	assert.True(t, p.Failed)
	require.NotNil(t, p.Transfer)
	require.NotNil(t, p.Transfer.Mint)
	assert.Equal(t, mint, *p.Transfer.Mint)
	assert.Equal(t, alice.String(), p.Transfer.From)
	assert.Equal(t, bob.String(), p.Transfer.To)
	assert.True(t, p.Transfer.Amount.Equal(decimal.NewFromInt(60)))
}

func TestTokenTransfer_CounterpartyIsStable(t *testing.T) {
	alice := solana.NewWallet().PublicKey()
	bob := solana.NewWallet().PublicKey()
	carol := solana.NewWallet().PublicKey()
	dave := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	balance := func(owner *solana.PublicKey, amount string) rpc.TokenBalance {
		return rpc.TokenBalance{Owner: owner, Mint: mint, UiTokenAmount: &rpc.UiTokenAmount{Amount: amount, Decimals: 0}}
	}

	split := &rpc.TransactionMeta{
		PreTokenBalances:  []rpc.TokenBalance{balance(&alice, "100"), balance(&bob, "0"), balance(&carol, "0"), balance(&dave, "0")},
		PostTokenBalances: []rpc.TokenBalance{balance(&alice, "0"), balance(&bob, "30"), balance(&carol, "50"), balance(&dave, "20")},
	}
	tied := &rpc.TransactionMeta{
		PreTokenBalances:  []rpc.TokenBalance{balance(&alice, "100"), balance(&bob, "0"), balance(&carol, "0")},
		PostTokenBalances: []rpc.TokenBalance{balance(&alice, "0"), balance(&bob, "50"), balance(&carol, "50")},
	}
	pooled := &rpc.TransactionMeta{
		PreTokenBalances:  []rpc.TokenBalance{balance(&bob, "10"), balance(&carol, "40"), balance(&alice, "0")},
		PostTokenBalances: []rpc.TokenBalance{balance(&bob, "0"), balance(&carol, "0"), balance(&alice, "50")},
	}

	for i := 0; i < 50; i++ {
		sent := tokenTransfer(alice, split)
		require.NotNil(t, sent)
		assert.Equal(t, alice.String(), sent.From)
		assert.Equal(t, carol.String(), sent.To, "largest receiver")
		assert.True(t, sent.Amount.Equal(decimal.NewFromInt(100)))

		even := tokenTransfer(alice, tied)
		require.NotNil(t, even)
		assert.Equal(t, bob.String(), even.To, "ties go to the first listed account")

		received := tokenTransfer(alice, pooled)
		require.NotNil(t, received)
		assert.Equal(t, carol.String(), received.From)
		assert.Equal(t, alice.String(), received.To)
	}
}
