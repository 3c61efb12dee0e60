// Package tui is the terminal dashboard: wallet panel, token balances and the
// ledger record explorer, styled by the active theme.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlexZinkM/nebula-dashboard/internal/explorer"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/portfolio"
	"github.com/AlexZinkM/nebula-dashboard/internal/theme"
	"github.com/AlexZinkM/nebula-dashboard/internal/wallet"
)

const ackTickInterval = 200 * time.Millisecond

type view int

const (
	viewOverview view = iota
	viewRecords
	viewDetail
)

// Deps are the shared components the dashboard drives.
type Deps struct {
	Session    *wallet.Session
	Aggregator *portfolio.Aggregator
	Records    explorer.Source
	Explorer   *explorer.Explorer
	Themes     *theme.Store
}

// Messages from subscriptions only signal a change; Update re-reads the owner.
type (
	sessionChangedMsg  struct{}
	snapshotChangedMsg struct{}
	themeChangedMsg    struct{}
	recordsMsg         struct {
		records []explorer.LedgerRecord
		err     error
	}
	ackTickMsg time.Time
)

type Model struct {
	deps   Deps
	keys   keyMap
	styles theme.Styles

	state wallet.State
	snap  portfolio.Snapshot

	view       view
	cursor     int
	search     textinput.Model
	spinner    spinner.Model
	loading    bool
	recordsErr error
	ticking    bool

	width  int
	height int
}

func New(deps Deps) Model {
	search := textinput.New()
	search.Placeholder = "signature or address"
	search.Prompt = "/ "
	search.CharLimit = 88

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		deps:    deps,
		keys:    defaultKeyMap(),
		state:   deps.Session.State(),
		snap:    deps.Aggregator.Snapshot(),
		search:  search,
		spinner: sp,
		width:   100,
		height:  30,
	}
	m.applyTheme()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadRecords())
}

func (m *Model) applyTheme() {
	m.styles = m.deps.Themes.Active().Styles()
	m.spinner.Style = m.styles.Accent
	m.search.PromptStyle = m.styles.Accent
	m.search.TextStyle = m.styles.Text
}

func (m Model) connect() tea.Cmd {
	session := m.deps.Session
	return func() tea.Msg {
		session.Connect(context.Background())
		return sessionChangedMsg{}
	}
}

func (m Model) disconnect() tea.Cmd {
	session := m.deps.Session
	return func() tea.Msg {
		session.Disconnect(context.Background())
		return sessionChangedMsg{}
	}
}

func (m Model) refreshTokens() tea.Cmd {
	aggregator := m.deps.Aggregator
	return func() tea.Msg {
		aggregator.Refresh(context.Background())
		return snapshotChangedMsg{}
	}
}

func (m Model) loadRecords() tea.Cmd {
	source := m.deps.Records
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		records, err := source.Records(context.Background())
		return recordsMsg{records: records, err: err}
	}
}

func ackTick() tea.Cmd {
	return tea.Tick(ackTickInterval, func(t time.Time) tea.Msg { return ackTickMsg(t) })
}

// Run starts the dashboard and blocks until the user quits or ctx is done.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen(), tea.WithContext(ctx))

	// Listeners may fire from inside Update, so they must not block on Send.
	send := func(msg tea.Msg) { go p.Send(msg) }
	unsubscribe := []func(){
		deps.Session.Subscribe(func(wallet.State) { send(sessionChangedMsg{}) }),
		deps.Aggregator.Subscribe(func(portfolio.Snapshot) { send(snapshotChangedMsg{}) }),
		deps.Themes.Subscribe(func(theme.Spec) { send(themeChangedMsg{}) }),
	}
	defer func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Info("Dashboard stopped: %v", ctx.Err())
		return nil
	}
	return err
}
