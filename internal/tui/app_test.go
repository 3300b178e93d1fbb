package tui

import (
	"strings"
	"testing"
	"time"

	"spendview/internal/config"
	"spendview/internal/dataset"
	"spendview/internal/overview"

	tea "github.com/charmbracelet/bubbletea"
)

func testApp(t *testing.T) App {
	t.Helper()
	ds := dataset.Demo(time.Date(2026, time.August, 29, 0, 0, 0, 0, time.Local))
	return NewApp(ds, config.Default(), "demo data")
}

func press(t *testing.T, a App, key string) App {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func TestCursorMovesWithinBudgets(t *testing.T) {
	a := testApp(t)

	n := len(a.ledger.Budgets())
	for i := 0; i < n+3; i++ {
		a = press(t, a, "j")
	}
	if a.cursor != n-1 {
		t.Fatalf("cursor = %d after overshooting down, want %d", a.cursor, n-1)
	}

	for i := 0; i < n+3; i++ {
		a = press(t, a, "k")
	}
	if a.cursor != 0 {
		t.Fatalf("cursor = %d after overshooting up, want 0", a.cursor)
	}
}

func TestEnterTogglesSingleExpansion(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "enter")
	if !a.expand.IsExpanded("Food") {
		t.Fatal("Food card not expanded after enter")
	}

	a = press(t, a, "j")
	a = press(t, a, "enter")
	if a.expand.IsExpanded("Food") {
		t.Fatal("Food still expanded after expanding Transport")
	}
	if !a.expand.IsExpanded("Transport") {
		t.Fatal("Transport not expanded")
	}

	a = press(t, a, "enter")
	if a.expand.Expanded() != "" {
		t.Fatalf("expanded = %q after collapse, want empty", a.expand.Expanded())
	}
}

func TestEditKeyOpensEditorSeededWithCurrentValue(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "e")
	if !a.editor.Active() {
		t.Fatal("editor not active after e on an unlocked budget")
	}
	if a.editor.Category() != "Food" {
		t.Fatalf("editing %q, want Food", a.editor.Category())
	}
	if a.editInput.Value() != "8000" {
		t.Fatalf("edit input seeded with %q, want 8000", a.editInput.Value())
	}
}

func TestEditKeyIgnoredOnLockedBudget(t *testing.T) {
	a := testApp(t)

	// Utilities ships locked and sits last in the demo budget list.
	for i := 0; i < len(a.ledger.Budgets()); i++ {
		a = press(t, a, "j")
	}
	if a.ledger.Budgets()[a.cursor].Category != "Utilities" {
		t.Fatalf("cursor on %q, want Utilities", a.ledger.Budgets()[a.cursor].Category)
	}

	a = press(t, a, "e")
	if a.editor.Active() {
		t.Fatal("editor opened on a locked budget")
	}
	if _, _, visible := a.toast.Current(); visible {
		t.Fatal("locked edit raised a toast; the affordance is disabled, not an error")
	}
}

func TestEscCancelsEdit(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "e")
	a = press(t, a, "esc")

	if a.editor.Active() {
		t.Fatal("editor still active after esc")
	}
	b, _ := a.ledger.Get("Food")
	if b.Monthly != 8000 || b.Locked {
		t.Fatalf("cancelled edit touched the ledger: %+v", b)
	}
}

func TestEnterOnUnparsableDraftShowsErrorToast(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "e")
	a.editInput.SetValue("eight thousand")
	a = press(t, a, "enter")

	msg, kind, visible := a.toast.Current()
	if !visible || kind != overview.ToastError {
		t.Fatalf("toast = (%q, %v, %v), want visible error toast", msg, kind, visible)
	}
	if a.confirmForm != nil {
		t.Fatal("confirm form opened for an unparsable value")
	}
	if a.editor.Active() != true {
		t.Fatal("editor closed on a rejected value; the draft should stay editable")
	}
}

func TestEnterOnValidDraftOpensConfirm(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "e")
	a.editInput.SetValue("9500")
	a = press(t, a, "enter")

	if a.confirmForm == nil {
		t.Fatal("confirm form not opened for a valid draft")
	}
	if a.pendingSave != 9500 {
		t.Fatalf("pendingSave = %.0f, want 9500", a.pendingSave)
	}
	b, _ := a.ledger.Get("Food")
	if b.Monthly != 8000 || b.Locked {
		t.Fatal("ledger mutated before the save was confirmed")
	}
}

func TestSaveBudgetLocksAndRecomputes(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "e")
	a.pendingSave = 5000
	before := a.stats.TotalBudget

	m, cmd := a.saveBudget()
	a = m.(App)

	b, _ := a.ledger.Get("Food")
	if b.Monthly != 5000 || !b.Locked {
		t.Fatalf("after save: Monthly=%.0f Locked=%v, want 5000 locked", b.Monthly, b.Locked)
	}
	if a.editor.Active() {
		t.Fatal("editor still active after a successful save")
	}
	if a.stats.TotalBudget != before-3000 {
		t.Fatalf("TotalBudget = %.0f after save, want %.0f", a.stats.TotalBudget, before-3000)
	}

	msg, kind, visible := a.toast.Current()
	if !visible || kind != overview.ToastSuccess {
		t.Fatal("success toast not showing after save")
	}
	if !strings.Contains(msg, "Food") || !strings.Contains(msg, "locked") {
		t.Fatalf("toast message %q does not announce the lock", msg)
	}
	if cmd == nil {
		t.Fatal("save did not schedule a toast expiry")
	}
}

func TestSaveBudgetNegativeShowsErrorAndKeepsState(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "e")
	a.pendingSave = -200

	m, _ := a.saveBudget()
	a = m.(App)

	b, _ := a.ledger.Get("Food")
	if b.Monthly != 8000 || b.Locked {
		t.Fatalf("rejected save touched the ledger: %+v", b)
	}
	_, kind, visible := a.toast.Current()
	if !visible || kind != overview.ToastError {
		t.Fatal("error toast not showing after a rejected save")
	}
}

func TestStaleToastExpiryIgnoredByUpdate(t *testing.T) {
	a := testApp(t)

	first := a.toast.Show("first", overview.ToastSuccess)
	a.toast.Show("second", overview.ToastSuccess)

	m, _ := a.Update(toastExpireMsg{seq: first})
	a = m.(App)

	if msg, _, visible := a.toast.Current(); !visible || msg != "second" {
		t.Fatalf("toast = (%q, %v) after stale expiry, want second still visible", msg, visible)
	}
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "t")
	if a.activeTab != tabTransactions {
		t.Fatalf("activeTab = %d after t, want transactions", a.activeTab)
	}
	a = press(t, a, "s")
	if a.activeTab != tabSettings {
		t.Fatalf("activeTab = %d after s, want settings", a.activeTab)
	}
	a = press(t, a, "o")
	if a.activeTab != tabOverview {
		t.Fatalf("activeTab = %d after o, want overview", a.activeTab)
	}
}

func TestToastMessageForError(t *testing.T) {
	a := testApp(t)

	err := a.ledger.Save("Utilities", 100)
	if err == nil {
		t.Fatal("expected locked error")
	}
	got := toastMessageForError(err)
	if got != "Budget locked for this month" {
		t.Fatalf("toastMessageForError = %q, want %q", got, "Budget locked for this month")
	}
}
