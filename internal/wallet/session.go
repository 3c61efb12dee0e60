// Package wallet wraps an external wallet adapter and RPC endpoint in a single
// session object that owns the connection status, cached balance and last error.
package wallet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/AlexZinkM/nebula-dashboard/internal/common"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/metrics"
	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/prefs"
)

const (
	DefaultPollInterval = 30 * time.Second
	DefaultErrorTTL     = 5 * time.Second
)

// State is a snapshot of the session. Connected=false implies Address=nil and Balance=0.
type State struct {
	Connected  bool              `json:"connected"`
	Connecting bool              `json:"connecting"`
	Address    *solana.PublicKey `json:"address,omitempty"`
	Balance    decimal.Decimal   `json:"balance"`
	Network    model.Network     `json:"network"`
	LastError  *string           `json:"lastError,omitempty"`
	Wallet     string            `json:"wallet"`
}

// Options configure a Session. Zero durations fall back to the defaults.
type Options struct {
	Network      model.Network
	Prefs        prefs.Store
	Dial         Dialer
	PollInterval time.Duration
	ErrorTTL     time.Duration
}

// Session is the single owner of wallet connection state. Views read snapshots via
// State and Subscribe; they never write fields directly.
type Session struct {
	adapter      Adapter
	dial         Dialer
	prefs        prefs.Store
	pollInterval time.Duration
	errorTTL     time.Duration

	mu    sync.Mutex
	state State
	// client is the RPC bound at connect time; it does not follow later SetNetwork calls.
	client RPC
	// epoch changes on every connect/disconnect so late balance results can be dropped.
	epoch     uint64
	stopPoll  context.CancelFunc
	errTimer  *time.Timer
	errGen    uint64
	listeners map[int]func(State)
	nextID    int
	closed    bool
}

// NewSession creates a disconnected session. The network is restored from prefs when a
// valid value was persisted, otherwise opts.Network is used.
func NewSession(adapter Adapter, opts Options) *Session {
	if opts.Prefs == nil {
		opts.Prefs = prefs.NewMemoryStore()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.ErrorTTL <= 0 {
		opts.ErrorTTL = DefaultErrorTTL
	}
	network := opts.Network
	if network == "" {
		network = model.NetworkDevnet
	}
	if saved, ok := opts.Prefs.Get(prefs.KeyNetwork); ok {
		if n, err := model.ParseNetwork(saved); err == nil {
			network = n
		} else {
			logger.Warn("Ignoring persisted network: %v", err)
		}
	}

	return &Session{
		adapter:      adapter,
		dial:         opts.Dial,
		prefs:        opts.Prefs,
		pollInterval: opts.PollInterval,
		errorTTL:     opts.ErrorTTL,
		state: State{
			Network: network,
			Balance: decimal.Zero,
			Wallet:  adapter.Name(),
		},
		listeners: make(map[int]func(State)),
	}
}

// State returns a copy of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Connect asks the adapter for a connection. Failures are recorded in LastError and
// never returned; the resulting state is.
func (s *Session) Connect(ctx context.Context) State {
	s.mu.Lock()
	if s.closed || s.state.Connected || s.state.Connecting {
		st := s.snapshotLocked()
		s.mu.Unlock()
		return st
	}
	s.state.Connecting = true
	network := s.state.Network
	epoch := s.epoch
	s.mu.Unlock()
	s.notify()

	pub, err := s.adapter.Connect(ctx)
	if err != nil {
		s.mu.Lock()
		s.state.Connecting = false
		s.mu.Unlock()
		s.recordError("connect", fmt.Errorf("failed to connect wallet: %w", err))
		return s.State()
	}

	var client RPC
	if s.dial != nil {
		client = s.dial(network)
	}

	s.mu.Lock()
	if s.epoch != epoch || s.closed {
		// Disconnect or Close ran while the adapter was connecting.
		s.state.Connecting = false
		s.mu.Unlock()
		if err := s.adapter.Disconnect(ctx); err != nil {
			logger.Warn("Failed to release abandoned wallet connection: %v", err)
		}
		logger.Info("Wallet %s connect abandoned", s.adapter.Name())
		s.notify()
		return s.State()
	}
	s.epoch++
	s.state.Connecting = false
	s.state.Connected = true
	s.state.Address = &pub
	s.state.Balance = decimal.Zero
	s.client = client
	s.startPollLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	metrics.Connected.Set(1)
	logger.Info("Wallet %s connected on %s: %s", s.adapter.Name(), network, pub)
	s.notify()
	return st
}

// Disconnect asks the adapter to disconnect. On success the balance is zeroed, the
// address cleared and polling stopped. On failure the error is recorded in LastError
// and the session stays connected. A connect still waiting on the adapter is
// abandoned: it releases the adapter once it returns and the session stays
// disconnected.
func (s *Session) Disconnect(ctx context.Context) State {
	s.mu.Lock()
	if s.state.Connecting {
		s.epoch++
		st := s.snapshotLocked()
		s.mu.Unlock()
		return st
	}
	wasConnected := s.state.Connected
	s.mu.Unlock()

	if wasConnected {
		if err := s.adapter.Disconnect(ctx); err != nil {
			s.recordError("disconnect", fmt.Errorf("failed to disconnect wallet: %w", err))
			return s.State()
		}
	}

	s.mu.Lock()
	s.epoch++
	s.stopPollLocked()
	s.state.Connected = false
	s.state.Address = nil
	s.state.Balance = decimal.Zero
	s.client = nil
	st := s.snapshotLocked()
	s.mu.Unlock()

	if wasConnected {
		metrics.Connected.Set(0)
		logger.Info("Wallet %s disconnected", s.adapter.Name())
		s.notify()
	}
	return st
}

// GetBalance returns the native balance in SOL. While disconnected it returns zero
// without contacting the RPC. Query failures are recorded in LastError and yield zero.
func (s *Session) GetBalance(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	if !s.state.Connected || s.state.Address == nil || s.client == nil {
		s.mu.Unlock()
		return decimal.Zero
	}
	client := s.client
	owner := *s.state.Address
	epoch := s.epoch
	network := s.state.Network
	s.mu.Unlock()

	res, err := client.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		metrics.BalanceQueries.WithLabelValues(network.String(), "error").Inc()
		if s.sameEpoch(epoch) {
			s.recordError("balance", fmt.Errorf("failed to get balance: %w", err))
		}
		return decimal.Zero
	}
	metrics.BalanceQueries.WithLabelValues(network.String(), "ok").Inc()

	balance := common.LamportsToSOL(res.Value)

	s.mu.Lock()
	stored := s.epoch == epoch && s.state.Connected
	if stored {
		s.state.Balance = balance
	}
	s.mu.Unlock()

	if stored {
		s.notify()
	}
	return balance
}

// SetNetwork selects and persists the network. It does not reconnect: the current
// connection keeps its endpoint until a new one is established.
func (s *Session) SetNetwork(network model.Network) error {
	n, err := model.ParseNetwork(string(network))
	if err != nil {
		return err
	}

	if err := s.prefs.Set(prefs.KeyNetwork, n.String()); err != nil {
		return fmt.Errorf("failed to persist network: %w", err)
	}

	s.mu.Lock()
	s.state.Network = n
	s.mu.Unlock()
	s.notify()
	return nil
}

// SignMessage signs arbitrary bytes with the connected wallet.
func (s *Session) SignMessage(ctx context.Context, message []byte) (solana.Signature, error) {
	if _, err := s.requireConnected(); err != nil {
		return solana.Signature{}, err
	}
	signer, ok := s.adapter.(MessageSigner)
	if !ok {
		return solana.Signature{}, fmt.Errorf("%w: message signing", ErrUnsupported)
	}

	sig, err := signer.SignMessage(ctx, message)
	if err != nil {
		err = fmt.Errorf("failed to sign message: %w", err)
		s.recordError("sign", err)
		return solana.Signature{}, err
	}
	return sig, nil
}

// SignTransaction signs tx with the connected wallet.
func (s *Session) SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error) {
	if _, err := s.requireConnected(); err != nil {
		return nil, err
	}
	signer, ok := s.adapter.(TransactionSigner)
	if !ok {
		return nil, fmt.Errorf("%w: transaction signing", ErrUnsupported)
	}

	signed, err := signer.SignTransaction(ctx, tx)
	if err != nil {
		err = fmt.Errorf("failed to sign transaction: %w", err)
		s.recordError("sign", err)
		return nil, err
	}
	return signed, nil
}

// SignAllTransactions signs every transaction in txs with the connected wallet.
func (s *Session) SignAllTransactions(ctx context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error) {
	if _, err := s.requireConnected(); err != nil {
		return nil, err
	}
	signer, ok := s.adapter.(TransactionSigner)
	if !ok {
		return nil, fmt.Errorf("%w: transaction signing", ErrUnsupported)
	}

	signed, err := signer.SignAllTransactions(ctx, txs)
	if err != nil {
		err = fmt.Errorf("failed to sign transactions: %w", err)
		s.recordError("sign", err)
		return nil, err
	}
	return signed, nil
}

// SendTransaction submits tx. Wallets that send by themselves are used directly;
// otherwise the wallet signs and the session RPC submits.
func (s *Session) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	client, err := s.requireConnected()
	if err != nil {
		return solana.Signature{}, err
	}

	var sig solana.Signature
	switch w := s.adapter.(type) {
	case TransactionSender:
		sig, err = w.SendTransaction(ctx, tx, client)
	case TransactionSigner:
		var signed *solana.Transaction
		signed, err = w.SignTransaction(ctx, tx)
		if err == nil {
			sig, err = client.SendTransactionWithOpts(ctx, signed, rpc.TransactionOpts{
				SkipPreflight:       false,
				PreflightCommitment: rpc.CommitmentConfirmed,
			})
		}
	default:
		return solana.Signature{}, fmt.Errorf("%w: transaction sending", ErrUnsupported)
	}

	if err != nil {
		err = fmt.Errorf("failed to send transaction: %w", err)
		s.recordError("send", err)
		return solana.Signature{}, err
	}
	logger.Info("Transaction sent: %s", sig)
	return sig, nil
}

// ClearError dismisses LastError before its timer fires.
func (s *Session) ClearError() {
	s.mu.Lock()
	if s.state.LastError == nil {
		s.mu.Unlock()
		return
	}
	s.errGen++
	if s.errTimer != nil {
		s.errTimer.Stop()
		s.errTimer = nil
	}
	s.state.LastError = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers fn to receive a snapshot after every state change. fn runs on
// the goroutine that made the change and must not block.
func (s *Session) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Close stops the poller and the error timer. The session cannot reconnect afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopPollLocked()
	if s.errTimer != nil {
		s.errTimer.Stop()
		s.errTimer = nil
	}
}

func (s *Session) requireConnected() (RPC, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Connected {
		return nil, ErrNotConnected
	}
	return s.client, nil
}

func (s *Session) sameEpoch(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch == epoch
}

// recordError stores err as LastError and schedules its removal. A newer error
// cancels the older timer.
func (s *Session) recordError(kind string, err error) {
	msg := err.Error()

	s.mu.Lock()
	s.state.LastError = &msg
	s.errGen++
	gen := s.errGen
	if s.errTimer != nil {
		s.errTimer.Stop()
		s.errTimer = nil
	}
	if !s.closed {
		s.errTimer = time.AfterFunc(s.errorTTL, func() { s.expireError(gen) })
	}
	s.mu.Unlock()

	metrics.SessionErrors.WithLabelValues(kind).Inc()
	logger.Warn("Wallet %s error: %v", kind, err)
	s.notify()
}

func (s *Session) expireError(gen uint64) {
	s.mu.Lock()
	if s.errGen != gen {
		s.mu.Unlock()
		return
	}
	s.state.LastError = nil
	s.errTimer = nil
	s.mu.Unlock()
	s.notify()
}

// startPollLocked queries the balance immediately and then every pollInterval until
// the session disconnects or closes.
func (s *Session) startPollLocked() {
	s.stopPollLocked()
	ctx, cancel := context.WithCancel(context.Background())
	s.stopPoll = cancel

	go func() {
		s.GetBalance(ctx)

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.GetBalance(ctx)
			}
		}
	}()
}

func (s *Session) stopPollLocked() {
	if s.stopPoll != nil {
		s.stopPoll()
		s.stopPoll = nil
	}
}

func (s *Session) snapshotLocked() State {
	st := s.state
	if s.state.Address != nil {
		addr := *s.state.Address
		st.Address = &addr
	}
	if s.state.LastError != nil {
		msg := *s.state.LastError
		st.LastError = &msg
	}
	return st
}

func (s *Session) notify() {
	s.mu.Lock()
	st := s.snapshotLocked()
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
