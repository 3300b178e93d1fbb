// Package tui provides the interactive Bubble Tea spend overview for spendview.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"spendview/internal/cli"
	"spendview/internal/config"
	"spendview/internal/dataset"
	"spendview/internal/model"
	"spendview/internal/overview"
	"spendview/internal/stats"
	"spendview/internal/tui/components"
	"spendview/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// toastExpireMsg fires when a toast's display window ends. Seq ties the
// expiry to the Show call that scheduled it, so a toast shown later is
// never cleared by an earlier timer.
type toastExpireMsg struct {
	seq int
}

const (
	tabOverview = iota
	tabTransactions
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5
)

// App is the root Bubble Tea model: it owns the dataset, the budget
// ledger, and all view state, and recomputes derived stats after every
// budget mutation.
type App struct {
	// Data
	ds     dataset.Dataset
	ledger *overview.Ledger
	source string // dataset provenance shown in the status bar

	// Controllers
	editor overview.Editor
	expand overview.Expansion
	toast  overview.Toast

	// Derived, rebuilt by recompute()
	stats model.DerivedStats

	// Formatting
	fmtr cli.Formatter
	now  time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int // selected budget card

	// Budget editing
	editInput   textinput.Model
	confirmForm *huh.Form
	confirmVal  bool
	pendingSave float64

	// Settings tab
	themeCursor int
}

// NewApp creates the TUI model over an already-loaded dataset.
func NewApp(ds dataset.Dataset, cfg config.Config, source string) App {
	a := App{
		ds:     ds,
		ledger: overview.NewLedger(ds.Budgets),
		source: source,
		fmtr:   cli.NewFormatter(cfg.General.CurrencySymbol, cfg.General.Locale),
		now:    time.Now(),
	}
	for i, th := range theme.All {
		if th.Name == theme.Active.Name {
			a.themeCursor = i
		}
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// recompute rebuilds every derived value from the fixed transaction set
// and the current budget list. Called after any budget mutation so the
// whole view reflects the new state on the next render.
func (a *App) recompute() {
	a.stats = stats.Compute(a.ds.Transactions, a.ledger.Budgets())

	if a.cursor >= len(a.ledger.Budgets()) {
		a.cursor = len(a.ledger.Budgets()) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.confirmForm != nil {
			a.confirmForm = a.confirmForm.WithWidth(msg.Width)
		}
		return a, nil

	case toastExpireMsg:
		a.toast.Expire(msg.seq)
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward everything else (cursor blinks, form internals).
	if a.confirmForm != nil {
		return a.updateConfirmForm(msg)
	}
	if a.editor.Active() {
		var cmd tea.Cmd
		a.editInput, cmd = a.editInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// The save confirmation intercepts all keys while open.
	if a.confirmForm != nil {
		return a.updateConfirmForm(msg)
	}

	// Budget edit mode intercepts all keys.
	if a.editor.Active() {
		return a.updateEditInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Overview tab owns the card cursor, expansion, and edit entry.
	if a.activeTab == tabOverview {
		budgets := a.ledger.Budgets()
		switch key {
		case "j", "down":
			if a.cursor < len(budgets)-1 {
				a.cursor++
			}
			return a, nil
		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil
		case "enter", " ":
			if len(budgets) > 0 {
				a.expand.Toggle(budgets[a.cursor].Category)
			}
			return a, nil
		case "e":
			return a.beginEdit()
		}
	}

	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			if a.themeCursor < len(theme.All)-1 {
				a.themeCursor++
			}
			return a, nil
		case "k", "up":
			if a.themeCursor > 0 {
				a.themeCursor--
			}
			return a, nil
		case "enter":
			return a.applyTheme()
		}
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// ─── Budget editing ─────────────────────────────────────────────

func (a App) beginEdit() (tea.Model, tea.Cmd) {
	budgets := a.ledger.Budgets()
	if len(budgets) == 0 {
		return a, nil
	}

	b := budgets[a.cursor]
	// Locked budgets stay locked; the affordance is disabled, not an error.
	if !a.editor.Begin(b) {
		return a, nil
	}

	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 14
	ti.Placeholder = strconv.FormatFloat(b.Monthly, 'f', -1, 64)
	ti.SetValue(strconv.FormatFloat(b.Monthly, 'f', -1, 64))
	ti.Focus()
	a.editInput = ti

	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateEditInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editor.Cancel()
		return a, nil

	case "enter":
		raw := strings.TrimSpace(a.editInput.Value())
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			seq := a.toast.Show(fmt.Sprintf("%q is not a number", raw), overview.ToastError)
			return a, toastExpireCmd(seq)
		}
		a.editor.SetDraft(value)
		a.pendingSave = value
		a.confirmForm = a.newConfirmForm()
		return a, a.confirmForm.Init()
	}

	var cmd tea.Cmd
	a.editInput, cmd = a.editInput.Update(msg)
	return a, cmd
}

func (a *App) newConfirmForm() *huh.Form {
	a.confirmVal = false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Lock %s at %s?", a.editor.Category(), a.fmtr.Money(a.pendingSave))).
			Description("A category budget can only be edited once per month.").
			Affirmative("Save & lock").
			Negative("Keep editing").
			Value(&a.confirmVal),
	))
	if a.width > 0 {
		form = form.WithWidth(a.width)
	}
	return form
}

func (a App) updateConfirmForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.confirmForm = f
	}

	switch a.confirmForm.State {
	case huh.StateCompleted:
		confirmed := a.confirmVal
		a.confirmForm = nil
		if !confirmed {
			// Back to the edit field; nothing was mutated.
			return a, a.editInput.Cursor.BlinkCmd()
		}
		return a.saveBudget()

	case huh.StateAborted:
		a.confirmForm = nil
		return a, a.editInput.Cursor.BlinkCmd()
	}

	return a, cmd
}

// saveBudget applies the pending edit. On success the category locks and
// the celebratory toast fires; any rejection routes through the error
// toast without touching budget state.
func (a App) saveBudget() (tea.Model, tea.Cmd) {
	category := a.editor.Category()

	if err := a.ledger.Save(category, a.pendingSave); err != nil {
		seq := a.toast.Show(toastMessageForError(err), overview.ToastError)
		return a, toastExpireCmd(seq)
	}

	a.editor.Cancel()
	a.recompute()
	seq := a.toast.Show(
		fmt.Sprintf("Budget for %s updated & locked for this month!", category),
		overview.ToastSuccess)
	return a, toastExpireCmd(seq)
}

func toastMessageForError(err error) string {
	switch {
	case err == nil:
		return ""
	default:
		// Sentinel errors from the ledger already read well on screen.
		msg := err.Error()
		if i := strings.LastIndex(msg, ": "); i >= 0 {
			msg = msg[i+2:]
		}
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
}

func toastExpireCmd(seq int) tea.Cmd {
	return tea.Tick(overview.ToastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

// ─── Settings ───────────────────────────────────────────────────

func (a App) applyTheme() (tea.Model, tea.Cmd) {
	name := theme.All[a.themeCursor].Name
	theme.SetActive(name)

	// Persist best-effort; the session keeps the theme either way.
	cfg, err := config.Load()
	if err == nil {
		cfg.Appearance.Theme = name
		_ = config.Save(cfg)
	}
	return a, nil
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spendview needs at least %d columns.\n",
		a.width, minTerminalWidth)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	bindings := []struct{ key, desc string }{
		{"o t s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Select budget card / theme"},
		{"Enter", "Expand category / confirm"},
		{"e", "Edit selected budget (once per month)"},
		{"Esc", "Cancel edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w,
		fmt.Sprintf("%s · %s", cli.FormatMonth(a.now), a.source))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabTransactions:
		content = a.renderTransactionsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// The confirm form takes over the content zone while open.
	if a.confirmForm != nil {
		content = a.confirmForm.View()
	}

	// Toast floats above the content, pinned under the tab bar.
	if msg, kind, ok := a.toast.Current(); ok {
		content = components.RenderToast(msg, kind, cw) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

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
