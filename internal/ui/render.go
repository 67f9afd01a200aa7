package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pump_base/internal/app"
	"pump_base/internal/common"
	"pump_base/internal/model"
	"pump_base/internal/view"
)

const (
	defaultWidth = 80
	cardWidth    = 38
	barWidth     = 20
)

var (
	baseBlue    = lipgloss.Color("#0052ff")
	cyan        = lipgloss.Color("#00d4ff")
	gray        = lipgloss.Color("#6b7280")
	dimGray     = lipgloss.Color("#374151")
	borderColor = lipgloss.Color("#1f1f2e")

	accentStyle = lipgloss.NewStyle().Foreground(baseBlue)
	logoStyle   = lipgloss.NewStyle().Foreground(cyan).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(gray)
	dimStyle    = lipgloss.NewStyle().Foreground(dimGray)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))

	activeTab = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(baseBlue).
			Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Width(cardWidth)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(baseBlue).
			Padding(1, 2).
			Width(50)
)

func (m Model) View() string {
	snap := m.ctrl.View()

	sections := []string{
		m.renderHeader(snap),
		renderHero(),
		m.renderToolbar(snap),
	}

	switch {
	case snap.ShowCreate:
		sections = append(sections, m.renderModal(snap))
	case snap.Loading:
		sections = append(sections, "\n  "+m.spinner.View()+mutedStyle.Render(" loading tokens...")+"\n")
	case snap.Empty:
		sections = append(sections, "\n  "+mutedStyle.Render("no tokens found ser")+"\n")
	default:
		sections = append(sections, m.renderGrid(snap.Tokens))
	}

	sections = append(sections, renderFooter(), m.renderHelp(snap))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(snap app.Snapshot) string {
	logo := logoStyle.Render("pump") + boldStyle.Render(".base") + "  " + mutedStyle.Render("FAIR LAUNCH TOKENS")

	wallet := accentStyle.Render("[⚡ connect]")
	if snap.Wallet.Connected {
		wallet = greenStyle.Render("● ") + accentStyle.Render(snap.Wallet.Address)
	}
	right := mutedStyle.Render("[+ create]") + "  " + wallet

	gap := m.width - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return logo + strings.Repeat(" ", gap) + right
}

func renderHero() string {
	lines := []string{
		"",
		accentStyle.Render("● LIVE ON BASE MAINNET"),
		boldStyle.Render("launch your ") + logoStyle.Render("memecoin"),
		mutedStyle.Render("no presale. no team allocation. fair launch guaranteed."),
		fmt.Sprintf("%s %s   %s %s   %s %s",
			boldStyle.Render("4,207"), mutedStyle.Render("tokens launched"),
			boldStyle.Render("$2.4M"), mutedStyle.Render("total volume"),
			boldStyle.Render("12,847"), mutedStyle.Render("traders")),
		dimStyle.Render("──────────── TRENDING TOKENS ────────────"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderToolbar(snap app.Snapshot) string {
	tabs := make([]string, 0, len(common.SortOptions()))
	for i, opt := range common.SortOptions() {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(view.SortLabel(opt)))
		if opt == snap.SortBy {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}
	return m.search.View() + "\n" + strings.Join(tabs, " ")
}

func (m Model) renderGrid(tokens []model.Token) string {
	cols := m.width / (cardWidth + 4)
	if cols < 1 {
		cols = 1
	}

	rows := make([]string, 0, len(tokens)/cols+1)
	for start := 0; start < len(tokens); start += cols {
		end := start + cols
		if end > len(tokens) {
			end = len(tokens)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(&tokens[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(t *model.Token) string {
	inner := cardWidth - 2
	ago := view.TimeAgo(t.CreatedAt, m.now())
	title := boldStyle.Render(truncate(t.Name, inner-len(t.Ticker)-len(ago)-4)) + " " + mutedStyle.Render("$"+t.Ticker)
	if gap := inner - lipgloss.Width(title) - len(ago); gap > 0 {
		title += strings.Repeat(" ", gap)
	}
	title += dimStyle.Render(ago)

	curve := mutedStyle.Render("BONDING CURVE")
	pct := accentStyle.Render(fmt.Sprintf("%d%%", t.Progress))
	curve += strings.Repeat(" ", maxInt(1, inner-lipgloss.Width(curve)-lipgloss.Width(pct))) + pct

	stats := fmt.Sprintf("↗ %s  💬 %d", view.FormatMarketCap(t.MarketCap), t.Replies)
	trade := accentStyle.Render("[trade]")
	stats += strings.Repeat(" ", maxInt(1, inner-lipgloss.Width(stats)-lipgloss.Width(trade))) + trade

	lines := []string{
		title,
		mutedStyle.Render("by " + t.Creator),
		truncate(t.Description, inner),
		curve,
		progressBar(t.Progress),
		stats,
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderModal(snap app.Snapshot) string {
	label := func(s string, field int) string {
		if m.form.focus == field {
			return accentStyle.Render("▸ " + s)
		}
		return mutedStyle.Render("  " + s)
	}

	button := "⚡ launch token"
	switch {
	case snap.Submitting:
		button = m.spinner.View() + " launching..."
	case !snap.CanSubmit:
		button = dimStyle.Render(button)
	default:
		button = activeTab.Render(button)
	}

	lines := []string{
		boldStyle.Render("create token"),
		mutedStyle.Render("launch your memecoin on base"),
		"",
		label("TOKEN NAME", fieldName),
		m.form.name.View(),
		label("TICKER SYMBOL", fieldTicker),
		m.form.ticker.View(),
		label("DESCRIPTION", fieldDescription),
		m.form.description.View(),
		"",
		accentStyle.Render("fair launch guaranteed"),
		mutedStyle.Render("no presale, no team tokens. 100% of supply goes to the bonding curve."),
		"",
		button,
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func renderFooter() string {
	return dimStyle.Render("base chain · 0% fees · fair launch")
}

func (m Model) renderHelp(snap app.Snapshot) string {
	help := "/ search · 1-4 sort · c create · w wallet · q quit"
	if snap.ShowCreate {
		help = "tab next field · enter launch · esc close"
	} else if m.focus == focusSearch {
		help = "type to filter · enter/esc done"
	}
	out := dimStyle.Render(help)
	if m.status != "" {
		out = accentStyle.Render(m.status) + "  " + out
	}
	return out
}

func progressBar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > common.MAX_PROGRESS {
		progress = common.MAX_PROGRESS
	}
	filled := progress * barWidth / common.MAX_PROGRESS
	return accentStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

// truncate 按字符截断，超长时以…结尾
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
