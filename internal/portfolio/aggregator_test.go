package portfolio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/wallet"
)

var nebulaMint = solana.NewWallet().PublicKey().String()

type fakeSession struct {
	mu           sync.Mutex
	state        wallet.State
	balance      decimal.Decimal
	balanceCalls int
	listeners    map[int]func(wallet.State)
	nextID       int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		state:     wallet.State{Network: model.NetworkDevnet, Balance: decimal.Zero},
		listeners: map[int]func(wallet.State){},
	}
}

func (f *fakeSession) State() wallet.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSession) GetBalance(context.Context) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balanceCalls++
	if !f.state.Connected {
		return decimal.Zero
	}
	return f.balance
}

func (f *fakeSession) Subscribe(fn func(wallet.State)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

func (f *fakeSession) set(connected bool, sol string) {
	f.mu.Lock()
	if connected {
		addr := solana.NewWallet().PublicKey()
		f.state.Connected = true
		f.state.Address = &addr
		f.balance = decimal.RequireFromString(sol)
	} else {
		f.state.Connected = false
		f.state.Address = nil
		f.balance = decimal.Zero
	}
	f.state.Balance = f.balance
	st := f.state
	fns := make([]func(wallet.State), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(st)
	}
}

// polled stores sol as the session's last polled balance without a notification.
func (f *fakeSession) polled(sol string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Balance = decimal.RequireFromString(sol)
}

func (f *fakeSession) queries() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balanceCalls
}

type fakeReader struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	errs     map[string]error
	gate     chan struct{}
	entered  chan struct{}
	calls    int
}

func (r *fakeReader) TokenBalance(_ context.Context, _, mint solana.PublicKey) (decimal.Decimal, error) {
	r.mu.Lock()
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()

	if first && r.gate != nil {
		r.entered <- struct{}{}
		<-r.gate
	}
	if err := r.errs[mint.String()]; err != nil {
		return decimal.Zero, err
	}
	return r.balances[mint.String()], nil
}

type fakePrices struct {
	prices map[string]decimal.Decimal
	err    error
}

func (p fakePrices) GetPrices(context.Context, []string, string) (map[string]decimal.Decimal, error) {
	return p.prices, p.err
}

func newTestAggregator(session Session, reader *fakeReader, prices PriceSource) *Aggregator {
	return NewAggregator(session, Options{
		Tokens:   DefaultTokens(nebulaMint),
		Accounts: func(model.Network) TokenAccountReader { return reader },
		Prices:   prices,
		Currency: "usd",
	})
}

func TestRefresh_Disconnected(t *testing.T) {
	a := newTestAggregator(newFakeSession(), &fakeReader{}, nil)
	snap := a.Refresh(context.Background())
	assert.Empty(t, snap.Balances)
	assert.Equal(t, uint64(1), snap.Generation)
}

func TestRefresh_Connected(t *testing.T) {
	session := newFakeSession()
	session.set(true, "2.5")
	reader := &fakeReader{
		balances: map[string]decimal.Decimal{usdcMintAddressMainnet: decimal.RequireFromString("10.5")},
		errs:     map[string]error{nebulaMint: errors.New("rpc timeout")},
	}
	prices := fakePrices{prices: map[string]decimal.Decimal{
		"solana":   decimal.NewFromInt(100),
		"usd-coin": decimal.NewFromInt(1),
	}}

	snap := newTestAggregator(session, reader, prices).Refresh(context.Background())

	require.Len(t, snap.Balances, 3)
	sol, usdc, neb := snap.Balances[0], snap.Balances[1], snap.Balances[2]

	assert.Equal(t, "SOL", sol.Symbol)
	assert.True(t, sol.Balance.Equal(decimal.RequireFromString("2.5")))
	require.NotNil(t, sol.FiatValue)
	assert.True(t, sol.FiatValue.Equal(decimal.NewFromInt(250)))

	assert.Equal(t, "USDC", usdc.Symbol)
	assert.True(t, usdc.Balance.Equal(decimal.RequireFromString("10.5")))
	require.NotNil(t, usdc.FiatValue)
	assert.True(t, usdc.FiatValue.Equal(decimal.RequireFromString("10.5")))

	assert.Equal(t, "NEBULA", neb.Symbol)
	assert.True(t, neb.Balance.IsZero())
	assert.Nil(t, neb.FiatValue)
	assert.Equal(t, []TokenError{{Symbol: "NEBULA", Error: "rpc timeout"}}, snap.Errors)
}

func TestRefresh_PriceFailureLeavesFiatEmpty(t *testing.T) {
	session := newFakeSession()
	session.set(true, "1")

	snap := newTestAggregator(session, &fakeReader{}, fakePrices{err: errors.New("429")}).Refresh(context.Background())

	for _, b := range snap.Balances {
		assert.Nil(t, b.FiatValue, b.Symbol)
	}
	assert.Empty(t, snap.Errors)
}

func TestRefresh_StaleResultIsDiscarded(t *testing.T) {
	session := newFakeSession()
	session.set(true, "1")
	reader := &fakeReader{
		balances: map[string]decimal.Decimal{usdcMintAddressMainnet: decimal.NewFromInt(5)},
		gate:     make(chan struct{}),
		entered:  make(chan struct{}, 1),
	}
	a := NewAggregator(session, Options{
		Tokens:   DefaultTokens("")[1:],
		Accounts: func(model.Network) TokenAccountReader { return reader },
	})

	slow := make(chan Snapshot, 1)
	go func() { slow <- a.Refresh(context.Background()) }()
	<-reader.entered

	fast := a.Refresh(context.Background())
	assert.Equal(t, uint64(2), fast.Generation)

	close(reader.gate)
	stale := <-slow

	assert.Equal(t, uint64(2), stale.Generation)
	assert.Equal(t, uint64(2), a.Snapshot().Generation)
}

func TestStart_FollowsSession(t *testing.T) {
	session := newFakeSession()
	reader := &fakeReader{}
	a := NewAggregator(session, Options{
		Tokens:          DefaultTokens(""),
		Accounts:        func(model.Network) TokenAccountReader { return reader },
		RefreshInterval: time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)
	assert.Empty(t, a.Snapshot().Balances)

	session.set(true, "3")
	require.Eventually(t, func() bool { return len(a.Snapshot().Balances) == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, a.Snapshot().Balances[0].Balance.Equal(decimal.NewFromInt(3)))

	session.set(false, "")
	require.Eventually(t, func() bool { return len(a.Snapshot().Balances) == 0 }, time.Second, 5*time.Millisecond)
}

func TestStart_TimerReusesPolledNativeBalance(t *testing.T) {
	session := newFakeSession()
	reader := &fakeReader{}
	a := NewAggregator(session, Options{
		Tokens:          DefaultTokens(""),
		Accounts:        func(model.Network) TokenAccountReader { return reader },
		RefreshInterval: 10 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)

	session.set(true, "2")
	require.Eventually(t, func() bool { return len(a.Snapshot().Balances) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, session.queries(), "the first refresh after connect queries")

	session.polled("4")
	require.Eventually(t, func() bool {
		snap := a.Snapshot()
		return len(snap.Balances) == 2 && snap.Balances[0].Balance.Equal(decimal.NewFromInt(4))
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, session.queries(), "timer refreshes must not query the native balance")

	a.Refresh(ctx)
	assert.Equal(t, 2, session.queries(), "a manual refresh queries")
}

func TestSubscribe(t *testing.T) {
	session := newFakeSession()
	session.set(true, "1")
	a := newTestAggregator(session, &fakeReader{}, nil)

	var got []uint64
	unsubscribe := a.Subscribe(func(s Snapshot) { got = append(got, s.Generation) })
	a.Refresh(context.Background())
	unsubscribe()
	a.Refresh(context.Background())

	assert.Equal(t, []uint64{1}, got)
}

func TestLoadTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.toml")
	content := `
[[tokens]]
symbol = "SOL"
name = "Solana"
native = true
decimals = 9
price_id = "solana"

[[tokens]]
symbol = "NEB"
name = "Nebula"
mint = "` + nebulaMint + `"
decimals = 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tokens, err := LoadTokens(path)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].Native)
	assert.Equal(t, "solana", tokens[0].PriceID)
	assert.Equal(t, TokenDescriptor{Symbol: "NEB", Name: "Nebula", Mint: nebulaMint, Decimals: 6}, tokens[1])
}

func TestLoadTokens_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad mint":  "[[tokens]]\nsymbol = \"X\"\nmint = \"not-base58!\"\n",
		"duplicate": "[[tokens]]\nsymbol = \"SOL\"\nnative = true\n[[tokens]]\nsymbol = \"SOL\"\nnative = true\n",
		"empty":     "",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := LoadTokens(path)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDefaultTokens(t *testing.T) {
	assert.Len(t, DefaultTokens(""), 2)
	tokens := DefaultTokens(nebulaMint)
	require.Len(t, tokens, 3)
	for _, tok := range tokens {
		assert.NoError(t, tok.Validate())
	}
}
