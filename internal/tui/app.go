// Package tui provides the interactive Bubble Tea interface for costbook.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/theirongolddev/costbook/internal/cli"
	"github.com/theirongolddev/costbook/internal/ledger"
	"github.com/theirongolddev/costbook/internal/model"
	"github.com/theirongolddev/costbook/internal/summary"
	"github.com/theirongolddev/costbook/internal/tui/components"
	"github.com/theirongolddev/costbook/internal/tui/theme"
)

// App is the root Bubble Tea model. It owns the current Book and replaces it
// wholesale after every mutation.
type App struct {
	// Data
	book   ledger.Book
	rows   []model.CostSummaryRow
	totals model.SummaryTotals
	money  cli.Money
	clock  func() time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string

	// Summary tab: selected component name, "" when none.
	selected string

	manage manageState

	// Add forms (huh)
	form     *huh.Form
	formKind formKind
	entry    *entryValues

	notice *notice
}

type notice struct {
	title   string
	message string
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model over book.
func NewApp(book ledger.Book, money cli.Money) App {
	a := App{
		book:  book,
		money: money,
		clock: time.Now,
		manage: manageState{
			budgetSel: -1,
			detailSel: -1,
		},
	}
	a.recompute()
	return a
}

// Book returns the current book.
func (a App) Book() ledger.Book {
	return a.book
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute derives the summary rows from the book from scratch and drops
// selections that no longer point at anything.
func (a *App) recompute() {
	a.rows = a.book.Summary()
	a.totals = summary.Totals(a.rows)

	if a.selected != "" && a.summaryIndex(a.selected) < 0 {
		a.selected = ""
	}
	if a.manage.budgetSel >= len(a.book.Budgets()) {
		a.manage.budgetSel = -1
	}
	if a.manage.detailSel >= len(a.book.Details()) {
		a.manage.detailSel = -1
	}
}

// apply swaps in the next book and recomputes everything derived from it.
func (a *App) apply(next ledger.Book, status string) {
	a.book = next
	a.status = status
	a.recompute()
}

func (a *App) showNotice(err error) {
	title := "Error"
	switch {
	case ledger.IsSelection(err):
		title = "Nothing selected"
	case ledger.IsValidation(err):
		title = "Invalid input"
	}
	a.notice = &notice{title: title, message: err.Error()}
}

func (a App) summaryIndex(component string) int {
	for i, r := range a.rows {
		if r.Component == component {
			return i
		}
	}
	return -1
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidthFor(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.notice != nil || a.form != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a = a.moveSelection(-1)
		case tea.MouseButtonWheelDown:
			a = a.moveSelection(1)
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// A blocking notice swallows the next key.
		if a.notice != nil {
			a.notice = nil
			return a, nil
		}

		if a.form != nil {
			if key == "esc" {
				a.form = nil
				a.status = "cancelled"
				return a, nil
			}
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "j", "down":
			return a.moveSelection(1), nil
		case "k", "up":
			return a.moveSelection(-1), nil
		case "esc":
			return a.clearSelection(), nil
		case "b":
			return a.openForm(formBudget)
		case "d":
			return a.openForm(formDetail)
		}

		if a.activeTab == components.TabManage {
			switch key {
			case "tab":
				a.manage.focus = 1 - a.manage.focus
				return a, nil
			case "x", "delete":
				return a.deleteSelected(), nil
			}
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

// moveSelection moves the selection of the active tab by delta. On the
// summary tab this is the select-component event that drives the detail pane.
func (a App) moveSelection(delta int) App {
	switch a.activeTab {
	case components.TabSummary:
		if len(a.rows) == 0 {
			return a
		}
		idx := a.summaryIndex(a.selected)
		idx = stepCursor(idx, delta, len(a.rows))
		a.selected = a.rows[idx].Component
		log.Debug().Str("component", a.selected).Msg("component selected")
	case components.TabManage:
		if a.manage.focus == focusBudgets {
			a.manage.budgetSel = stepCursor(a.manage.budgetSel, delta, len(a.book.Budgets()))
		} else {
			a.manage.detailSel = stepCursor(a.manage.detailSel, delta, len(a.book.Details()))
		}
	}
	return a
}

func (a App) clearSelection() App {
	switch a.activeTab {
	case components.TabSummary:
		a.selected = ""
	case components.TabManage:
		if a.manage.focus == focusBudgets {
			a.manage.budgetSel = -1
		} else {
			a.manage.detailSel = -1
		}
	}
	return a
}

// stepCursor moves cur by delta within [0, n). A cursor of -1 (nothing
// selected) lands on the first row.
func stepCursor(cur, delta, n int) int {
	if n == 0 {
		return -1
	}
	if cur < 0 {
		return 0
	}
	return min(max(cur+delta, 0), n-1)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.notice != nil {
		return a.viewNotice()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  costbook needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewNotice() string {
	t := theme.Active
	box := components.RenderNotice(a.notice.title, a.notice.message, a.width)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"s c m", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Select row"},
			{"Esc", "Clear selection"},
			{"Tab", "Switch list (Manage)"},
		}},
		{"Records", []struct{ key, desc string }{
			{"b", "Add budget"},
			{"d", "Add detail line"},
			{"x", "Delete selected (Manage)"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	info := fmt.Sprintf("%d budgets · %d details", len(a.book.Budgets()), len(a.book.Details()))
	if a.status != "" {
		info = a.status + "  │  " + info
	}
	statusBar := components.RenderStatusBar(w, a.hints(), info)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case components.TabSummary:
		content = a.renderSummaryTab(cw)
	case components.TabCharts:
		content = a.renderChartsTab(cw)
	case components.TabManage:
		content = a.renderManageTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch a.activeTab {
	case components.TabManage:
		return "[b]udget [d]etail [x]delete [tab]focus  [?]help [q]uit"
	case components.TabSummary:
		return "[j/k]select [b]udget [d]etail  [?]help [q]uit"
	default:
		return "[b]udget [d]etail  [?]help [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the same width rules as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
