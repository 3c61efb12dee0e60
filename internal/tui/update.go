package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlexZinkM/nebula-dashboard/internal/explorer"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/theme"
)

const (
	fieldSignature = "signature"
	fieldSender    = "sender"
	fieldReceiver  = "receiver"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-20, 10)
		return m, nil

	case sessionChangedMsg:
		prev := m.state
		m.state = m.deps.Session.State()
		if !prev.Connected && m.state.Connected {
			return m, m.loadRecords()
		}
		return m, nil

	case snapshotChangedMsg:
		m.snap = m.deps.Aggregator.Snapshot()
		return m, nil

	case themeChangedMsg:
		m.applyTheme()
		return m, nil

	case recordsMsg:
		m.loading = false
		m.recordsErr = msg.err
		if msg.err != nil {
			logger.Warn("Failed to load records: %v", msg.err)
			return m, nil
		}
		m.deps.Explorer.SetRecords(msg.records)
		m.clampCursor()
		if _, ok := m.deps.Explorer.Selected(); !ok && m.view == viewDetail {
			m.view = viewRecords
		}
		return m, nil

	case ackTickMsg:
		if m.anyCopied() {
			return m, ackTick()
		}
		m.ticking = false
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	f := m.deps.Explorer.Filter()
	if f.Search != m.search.Value() {
		f.Search = m.search.Value()
		m.deps.Explorer.SetFilter(f)
		m.clampCursor()
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ClearError):
		m.deps.Session.ClearError()
		return m, nil
	}

	if m.view == viewDetail {
		return m.updateDetail(msg)
	}

	switch {
	case key.Matches(msg, m.keys.SwitchView):
		if m.view == viewOverview {
			m.view = viewRecords
		} else {
			m.view = viewOverview
		}
		return m, nil

	case key.Matches(msg, m.keys.Connect):
		if m.state.Connected || m.state.Connecting {
			return m, nil
		}
		m.state.Connecting = true
		return m, m.connect()

	case key.Matches(msg, m.keys.Disconnect):
		if !m.state.Connected {
			return m, nil
		}
		return m, m.disconnect()

	case key.Matches(msg, m.keys.Network):
		next := nextNetwork(m.state.Network)
		if err := m.deps.Session.SetNetwork(next); err != nil {
			logger.Error("Failed to switch network: %v", err)
		}
		m.state = m.deps.Session.State()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		if err := m.deps.Themes.SetTheme(nextPreset(m.deps.Themes.PresetName())); err != nil {
			logger.Error("Failed to switch theme: %v", err)
		}
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.ResetTheme):
		if err := m.deps.Themes.ResetTheme(); err != nil {
			logger.Error("Failed to reset theme: %v", err)
		}
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = m.deps.Records != nil
		return m, tea.Batch(m.refreshTokens(), m.loadRecords())
	}

	if m.view == viewRecords {
		return m.updateRecords(msg)
	}
	return m, nil
}

func (m Model) updateRecords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.deps.Explorer.Visible()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.TypeFilter):
		f := m.deps.Explorer.Filter()
		f.Type = cycle(typeOptions(), f.Type)
		m.deps.Explorer.SetFilter(f)
		m.clampCursor()
	case key.Matches(msg, m.keys.StatusFilter):
		f := m.deps.Explorer.Filter()
		f.Status = cycle(statusOptions(), f.Status)
		m.deps.Explorer.SetFilter(f)
		m.clampCursor()
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(visible) {
			if err := m.deps.Explorer.Select(visible[m.cursor].ID); err == nil {
				m.view = viewDetail
			}
		}
	case key.Matches(msg, m.keys.Back):
		if m.search.Value() != "" {
			m.search.SetValue("")
			f := m.deps.Explorer.Filter()
			f.Search = ""
			m.deps.Explorer.SetFilter(f)
			m.clampCursor()
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	record, ok := m.deps.Explorer.Selected()
	if !ok || key.Matches(msg, m.keys.Back) {
		m.deps.Explorer.ClearSelection()
		m.view = viewRecords
		return m, nil
	}

	var field, value string
	switch {
	case key.Matches(msg, m.keys.CopySig):
		field, value = fieldSignature, record.Signature
	case key.Matches(msg, m.keys.CopySender):
		field, value = fieldSender, record.SenderAddress
	case key.Matches(msg, m.keys.CopyReceiver):
		if record.ReceiverAddress == nil {
			return m, nil
		}
		field, value = fieldReceiver, *record.ReceiverAddress
	default:
		return m, nil
	}

	m.deps.Explorer.Copy(field, value)
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, ackTick()
}

func (m *Model) clampCursor() {
	n := len(m.deps.Explorer.Visible())
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m Model) anyCopied() bool {
	for _, f := range []string{fieldSignature, fieldSender, fieldReceiver} {
		if m.deps.Explorer.Copied(f) {
			return true
		}
	}
	return false
}

func typeOptions() []string {
	out := []string{explorer.All}
	for _, t := range explorer.RecordTypes() {
		out = append(out, string(t))
	}
	return out
}

func statusOptions() []string {
	out := []string{explorer.All}
	for _, s := range explorer.RecordStatuses() {
		out = append(out, string(s))
	}
	return out
}

// cycle returns the option after current, wrapping around. An unknown or empty
// current value counts as the first option.
func cycle(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	if len(options) < 2 {
		return options[0]
	}
	return options[1]
}

func nextNetwork(current model.Network) model.Network {
	networks := model.Networks()
	for i, n := range networks {
		if n == current {
			return networks[(i+1)%len(networks)]
		}
	}
	return networks[0]
}

func nextPreset(current string) string {
	return cycle(theme.PresetNames(), current)
}
