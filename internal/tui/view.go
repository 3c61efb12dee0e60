package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/AlexZinkM/nebula-dashboard/internal/common"
	"github.com/AlexZinkM/nebula-dashboard/internal/explorer"
)

const timeLayout = "2006-01-02 15:04:05"

func (m Model) View() string {
	var body string
	var help []key.Binding
	switch m.view {
	case viewRecords:
		body, help = m.recordsView(), m.keys.recordsHelp()
	case viewDetail:
		body, help = m.detailView(), m.keys.detailHelp()
	default:
		body, help = m.overviewView(), m.keys.overviewHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.statusView(),
		m.helpView(help),
	)
}

func (m Model) headerView() string {
	s := m.styles
	title := s.Title.Render("NEBULA DASHBOARD")
	tabs := []string{"overview", "records"}
	active := 0
	if m.view != viewOverview {
		active = 1
	}
	for i, t := range tabs {
		if i == active {
			tabs[i] = s.Selected.Render(" " + t + " ")
		} else {
			tabs[i] = s.Muted.Render(" " + t + " ")
		}
	}
	meta := s.Muted.Render(fmt.Sprintf("%s · theme %s", m.state.Network, m.deps.Themes.PresetName()))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(tabs, ""), "  ", meta) + "\n"
}

func (m Model) walletPanel() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Heading.Render("Wallet"))
	b.WriteString("\n")

	switch {
	case m.state.Connecting:
		fmt.Fprintf(&b, "%s %s\n", m.spinner.View(), s.Warning.Render("connecting…"))
	case m.state.Connected:
		b.WriteString(s.Success.Render("● connected"))
		b.WriteString(s.Muted.Render("  via " + m.state.Wallet))
		b.WriteString("\n")
	default:
		b.WriteString(s.Muted.Render("○ disconnected"))
		b.WriteString("\n")
	}

	if m.state.Address != nil {
		fmt.Fprintf(&b, "%s %s\n", s.Muted.Render("address"), s.Address.Render(m.state.Address.String()))
	}
	fmt.Fprintf(&b, "%s %s\n", s.Muted.Render("balance"), s.Text.Render(m.state.Balance.String()+" SOL"))
	fmt.Fprintf(&b, "%s %s", s.Muted.Render("network"), s.Text.Render(m.state.Network.String()))
	return s.Panel.Render(b.String())
}

func (m Model) tokensPanel() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Heading.Render("Tokens"))
	b.WriteString("\n")

	if len(m.snap.Balances) == 0 {
		b.WriteString(s.Muted.Render("connect a wallet to see balances"))
		return s.Panel.Render(b.String())
	}
	for _, bal := range m.snap.Balances {
		line := fmt.Sprintf("%-8s %18s", bal.Symbol, bal.Balance.String())
		b.WriteString(s.Text.Render(line))
		if bal.FiatValue != nil {
			b.WriteString(s.Muted.Render(fmt.Sprintf("  %s %s", bal.FiatValue.StringFixed(2), strings.ToUpper(m.snap.Currency))))
		}
		b.WriteString("\n")
	}
	for _, e := range m.snap.Errors {
		b.WriteString(s.Error.Render(fmt.Sprintf("%s: %s", e.Symbol, e.Error)))
		b.WriteString("\n")
	}
	if !m.snap.UpdatedAt.IsZero() {
		b.WriteString(s.Muted.Render("updated " + m.snap.UpdatedAt.Local().Format(timeLayout)))
	}
	return s.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) overviewView() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.walletPanel(), " ", m.tokensPanel())
}

func (m Model) recordsView() string {
	s := m.styles
	f := m.deps.Explorer.Filter()
	visible := m.deps.Explorer.Visible()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s   %s\n",
		s.Muted.Render("type"), s.Accent.Render(f.Type),
		s.Muted.Render("status"), s.Accent.Render(f.Status),
		m.search.View())

	switch {
	case m.loading:
		fmt.Fprintf(&b, "%s loading records\n", m.spinner.View())
	case m.recordsErr != nil:
		b.WriteString(s.Error.Render(m.recordsErr.Error()))
		b.WriteString("\n")
	case len(visible) == 0:
		b.WriteString(s.Muted.Render("no records match"))
		b.WriteString("\n")
	}

	rows := max(m.height-10, 5)
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	for i := start; i < len(visible) && i < start+rows; i++ {
		r := visible[i]
		line := fmt.Sprintf("%-20s %-8s %-12s %-12s %s",
			r.Type, r.Status,
			common.ShortAddress(r.SenderAddress),
			common.ShortAddress(valueOrDash(r.ReceiverAddress)),
			r.CreatedAt.Local().Format(timeLayout))
		if i == m.cursor {
			b.WriteString(s.Selected.Render(line))
		} else {
			b.WriteString(statusStyle(m, r.Status).Render(line))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s", s.Muted.Render(fmt.Sprintf("%d of %d records", len(visible), len(m.deps.Explorer.Records()))))
	return s.Panel.Render(b.String())
}

func (m Model) detailView() string {
	s := m.styles
	r, ok := m.deps.Explorer.Selected()
	if !ok {
		return s.Panel.Render(s.Muted.Render("no record selected"))
	}

	copied := func(field string) string {
		if m.deps.Explorer.Copied(field) {
			return " " + s.Success.Render("copied!")
		}
		return ""
	}
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", s.Muted.Render(fmt.Sprintf("%-10s", label)), s.Text.Render(value))
	}

	lines := []string{
		s.Heading.Render(string(r.Type)),
		row("status", string(r.Status)),
		row("signature", r.Signature) + copied(fieldSignature),
		row("sender", r.SenderAddress) + copied(fieldSender),
		row("receiver", valueOrDash(r.ReceiverAddress)) + copied(fieldReceiver),
		row("program", r.ProgramID),
		row("fee", r.Fee.String()+" SOL"),
	}
	if r.Amount != nil {
		lines = append(lines, row("amount", r.Amount.String()))
	}
	lines = append(lines, row("time", r.CreatedAt.Local().Format(timeLayout)))
	if r.Data != nil {
		lines = append(lines, row("data", string(*r.Data)))
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) statusView() string {
	if m.state.LastError == nil {
		return ""
	}
	return m.styles.Error.Render("✗ " + *m.state.LastError)
}

func (m Model) helpView(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.Accent.Render(h.Key)+" "+m.styles.Muted.Render(h.Desc))
	}
	return m.styles.Status.Render(strings.Join(parts, "  "))
}

func statusStyle(m Model, status explorer.RecordStatus) lipgloss.Style {
	if status == explorer.StatusFailed {
		return m.styles.Error
	}
	return m.styles.Text
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
