// Package portfolio computes the balances of the configured tokens for the
// connected wallet.
package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/metrics"
	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/wallet"
)

const DefaultRefreshInterval = 30 * time.Second

// Session is the part of the wallet session the aggregator reads.
type Session interface {
	State() wallet.State
	GetBalance(ctx context.Context) decimal.Decimal
	Subscribe(fn func(wallet.State)) (unsubscribe func())
}

// TokenAccountReader returns an owner's SPL token balance in display units.
type TokenAccountReader interface {
	TokenBalance(ctx context.Context, owner, mint solana.PublicKey) (decimal.Decimal, error)
}

// PriceSource quotes assets in a fiat currency.
type PriceSource interface {
	GetPrices(ctx context.Context, ids []string, vs string) (map[string]decimal.Decimal, error)
}

type TokenBalance struct {
	Symbol    string           `json:"symbol"`
	Name      string           `json:"name"`
	Mint      string           `json:"mint"`
	Balance   decimal.Decimal  `json:"balance"`
	FiatValue *decimal.Decimal `json:"fiatValue,omitempty"`
}

type TokenError struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error"`
}

// Snapshot is the result of one refresh. It replaces the previous one wholesale.
type Snapshot struct {
	Balances   []TokenBalance `json:"balances"`
	Errors     []TokenError   `json:"errors,omitempty"`
	Currency   string         `json:"currency"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Generation uint64         `json:"generation"`
}

type Options struct {
	Tokens []TokenDescriptor
	// Accounts returns the token reader for a network; nil disables SPL balances.
	Accounts        func(model.Network) TokenAccountReader
	Prices          PriceSource
	Currency        string
	RefreshInterval time.Duration
}

// Aggregator keeps the latest Snapshot for the session's address.
type Aggregator struct {
	session  Session
	tokens   []TokenDescriptor
	accounts func(model.Network) TokenAccountReader
	prices   PriceSource
	currency string
	interval time.Duration

	mu        sync.Mutex
	snapshot  Snapshot
	gen       uint64
	watching  *solana.PublicKey
	baseCtx   context.Context
	stopLoop  context.CancelFunc
	listeners map[int]func(Snapshot)
	nextID    int
}

func NewAggregator(session Session, opts Options) *Aggregator {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	a := &Aggregator{
		session:   session,
		tokens:    opts.Tokens,
		accounts:  opts.Accounts,
		prices:    opts.Prices,
		currency:  opts.Currency,
		interval:  opts.RefreshInterval,
		baseCtx:   context.Background(),
		listeners: make(map[int]func(Snapshot)),
	}
	a.snapshot = a.emptySnapshot(0)
	return a
}

// Tokens returns the configured descriptors.
func (a *Aggregator) Tokens() []TokenDescriptor {
	out := make([]TokenDescriptor, len(a.tokens))
	copy(out, a.tokens)
	return out
}

// Snapshot returns the latest completed refresh.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot
}

// Refresh recomputes every token balance, querying the native balance through the
// session. A refresh that completes after a newer one started is discarded and the
// current snapshot is returned instead.
func (a *Aggregator) Refresh(ctx context.Context) Snapshot {
	return a.refresh(ctx, true)
}

// refresh recomputes the snapshot. Without queryNative the native balance is the
// one the session last polled.
func (a *Aggregator) refresh(ctx context.Context, queryNative bool) Snapshot {
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	st := a.session.State()
	if !st.Connected || st.Address == nil {
		return a.commit(gen, a.emptySnapshot(gen))
	}

	start := time.Now()
	owner := *st.Address
	var reader TokenAccountReader
	if a.accounts != nil {
		reader = a.accounts(st.Network)
	}

	balances := make([]TokenBalance, len(a.tokens))
	failures := make([]error, len(a.tokens))

	var g errgroup.Group
	for i, tok := range a.tokens {
		balances[i] = TokenBalance{Symbol: tok.Symbol, Name: tok.Name, Mint: tok.Mint, Balance: decimal.Zero}
		g.Go(func() error {
			if tok.Native && !queryNative {
				balances[i].Balance = st.Balance
				return nil
			}
			bal, err := a.fetch(ctx, reader, owner, tok)
			if err != nil {
				failures[i] = err
				return nil
			}
			balances[i].Balance = bal
			return nil
		})
	}
	_ = g.Wait()

	snap := Snapshot{
		Balances:   balances,
		Currency:   a.currency,
		UpdatedAt:  time.Now().UTC(),
		Generation: gen,
	}
	for i, err := range failures {
		if err != nil {
			logger.Warn("Failed to get %s balance: %v", a.tokens[i].Symbol, err)
			snap.Errors = append(snap.Errors, TokenError{Symbol: a.tokens[i].Symbol, Error: err.Error()})
		}
	}
	a.applyPrices(ctx, snap.Balances)

	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	return a.commit(gen, snap)
}

func (a *Aggregator) fetch(ctx context.Context, reader TokenAccountReader, owner solana.PublicKey, tok TokenDescriptor) (decimal.Decimal, error) {
	if tok.Native {
		return a.session.GetBalance(ctx), nil
	}
	if reader == nil {
		return decimal.Zero, nil
	}
	mint, err := solana.PublicKeyFromBase58(tok.Mint)
	if err != nil {
		return decimal.Zero, err
	}
	return reader.TokenBalance(ctx, owner, mint)
}

// applyPrices fills FiatValue where a quote exists. A failed price lookup leaves
// every FiatValue nil.
func (a *Aggregator) applyPrices(ctx context.Context, balances []TokenBalance) {
	if a.prices == nil {
		return
	}
	var ids []string
	for _, tok := range a.tokens {
		if tok.PriceID != "" {
			ids = append(ids, tok.PriceID)
		}
	}
	if len(ids) == 0 {
		return
	}

	prices, err := a.prices.GetPrices(ctx, ids, a.currency)
	if err != nil {
		logger.Warn("Failed to get prices: %v", err)
		return
	}
	for i, tok := range a.tokens {
		price, ok := prices[tok.PriceID]
		if tok.PriceID == "" || !ok {
			continue
		}
		value := balances[i].Balance.Mul(price).Round(2)
		balances[i].FiatValue = &value
	}
}

func (a *Aggregator) commit(gen uint64, snap Snapshot) Snapshot {
	a.mu.Lock()
	if gen != a.gen {
		current := a.snapshot
		a.mu.Unlock()
		metrics.StaleRefreshes.Inc()
		logger.Debug("Discarding stale balance refresh %d (current %d)", gen, current.Generation)
		return current
	}
	a.snapshot = snap
	fns := a.listenersLocked()
	a.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
	return snap
}

// Start follows the session: on connect it refreshes immediately and then every
// RefreshInterval, reusing the session's polled native balance on the timer. On
// disconnect it stops and clears the balances. It returns once subscribed;
// everything stops when ctx is done.
func (a *Aggregator) Start(ctx context.Context) {
	a.mu.Lock()
	a.baseCtx = ctx
	a.mu.Unlock()

	unsubscribe := a.session.Subscribe(a.onSession)
	a.onSession(a.session.State())

	go func() {
		<-ctx.Done()
		unsubscribe()
		a.mu.Lock()
		a.stopLoopLocked()
		a.mu.Unlock()
	}()
}

// Subscribe registers fn to receive every committed snapshot.
func (a *Aggregator) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}

func (a *Aggregator) onSession(st wallet.State) {
	a.mu.Lock()
	switch {
	case st.Connected && st.Address != nil:
		if a.watching != nil && a.watching.Equals(*st.Address) {
			a.mu.Unlock()
			return
		}
		addr := *st.Address
		a.watching = &addr
		a.startLoopLocked()
		a.mu.Unlock()
	case a.watching != nil:
		a.watching = nil
		a.stopLoopLocked()
		a.gen++
		gen := a.gen
		a.mu.Unlock()
		a.commit(gen, a.emptySnapshot(gen))
	default:
		a.mu.Unlock()
	}
}

func (a *Aggregator) startLoopLocked() {
	a.stopLoopLocked()
	ctx, cancel := context.WithCancel(a.baseCtx)
	a.stopLoop = cancel

	go func() {
		a.Refresh(ctx)

		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// The session polls the native balance on its own schedule.
				a.refresh(ctx, false)
			}
		}
	}()
}

func (a *Aggregator) stopLoopLocked() {
	if a.stopLoop != nil {
		a.stopLoop()
		a.stopLoop = nil
	}
}

func (a *Aggregator) emptySnapshot(gen uint64) Snapshot {
	return Snapshot{
		Balances:   []TokenBalance{},
		Currency:   a.currency,
		UpdatedAt:  time.Now().UTC(),
		Generation: gen,
	}
}

func (a *Aggregator) listenersLocked() []func(Snapshot) {
	fns := make([]func(Snapshot), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	return fns
}
