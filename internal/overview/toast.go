package overview

import "time"

// ToastDuration is how long a toast stays visible once shown.
const ToastDuration = 3000 * time.Millisecond

// ToastKind distinguishes success from error banners.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Toast holds at most one visible notification. Each Show bumps a
// sequence number; an expiry only clears the toast when it carries the
// sequence of the message it was scheduled for. That gives the effect of
// a single restarted timer: a toast shown while an older one is pending
// can never be cleared by the older timer firing.
type Toast struct {
	message string
	kind    ToastKind
	visible bool
	seq     int
}

// Show replaces the current toast and returns the sequence the caller
// should attach to the delayed expiry.
func (t *Toast) Show(message string, kind ToastKind) int {
	t.seq++
	t.message = message
	t.kind = kind
	t.visible = true
	return t.seq
}

// Expire clears the toast if seq matches the most recent Show. Stale
// expiries are no-ops.
func (t *Toast) Expire(seq int) {
	if seq != t.seq {
		return
	}
	t.visible = false
}

// Dismiss clears the toast immediately regardless of pending expiries.
func (t *Toast) Dismiss() {
	t.visible = false
}

// Current returns the visible message, its kind, and whether a toast is
// showing at all.
func (t *Toast) Current() (string, ToastKind, bool) {
	if !t.visible {
		return "", ToastSuccess, false
	}
	return t.message, t.kind, true
}
