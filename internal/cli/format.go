// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts and dates the way the configured locale
// expects. The zero value is unusable; build one with NewFormatter.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a Formatter for the given currency glyph and BCP 47
// locale tag. An unparseable tag falls back to en-IN, matching the
// default config.
func NewFormatter(symbol, locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("en-IN")
	}
	return Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Money formats a whole-unit amount with the currency glyph and
// locale-aware digit grouping, e.g. 123456 -> "₹1,23,456" under en-IN.
func (f Formatter) Money(v float64) string {
	n := int64(math.Round(v))
	neg := ""
	if n < 0 {
		neg = "-"
		n = -n
	}
	return neg + f.symbol + f.printer.Sprint(number.Decimal(n))
}

// Percent formats a rounded integer percentage.
func (f Formatter) Percent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Share formats a fractional percentage with one decimal, used for
// category share-of-total values.
func (f Formatter) Share(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatDate renders a transaction date as day plus abbreviated month,
// e.g. "2 Jan".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan")
}

// FormatMonth renders the month banner, e.g. "January 2026".
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}
