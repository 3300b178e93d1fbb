package components

import (
	"fmt"
	"strings"

	"spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	gaugeWidth  = 19
	gaugeHeight = 5
)

// RingGauge renders the overall spend indicator: a ring whose outline
// fills clockwise with the spend percentage, colored by tier, with the
// percentage in the center. Percentages above 100 render a full ring;
// the number itself is not clamped.
func RingGauge(pct int) string {
	t := theme.Active
	tier := t.TierColor(pct)

	filledStyle := lipgloss.NewStyle().Foreground(tier).Bold(true)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(tier).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Perimeter cells clockwise from the top-left corner.
	type cell struct{ row, col int }
	var ring []cell
	for c := 0; c < gaugeWidth; c++ {
		ring = append(ring, cell{0, c})
	}
	for r := 1; r < gaugeHeight; r++ {
		ring = append(ring, cell{r, gaugeWidth - 1})
	}
	for c := gaugeWidth - 2; c >= 0; c-- {
		ring = append(ring, cell{gaugeHeight - 1, c})
	}
	for r := gaugeHeight - 2; r >= 1; r-- {
		ring = append(ring, cell{r, 0})
	}

	frac := float64(pct) / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(len(ring)))

	glyphs := make([][]string, gaugeHeight)
	for r := range glyphs {
		glyphs[r] = make([]string, gaugeWidth)
		for c := range glyphs[r] {
			glyphs[r][c] = " "
		}
	}
	for i, cl := range ring {
		ch := ringGlyph(cl.row, cl.col)
		if i < filled {
			glyphs[cl.row][cl.col] = filledStyle.Render(ch)
		} else {
			glyphs[cl.row][cl.col] = emptyStyle.Render(ch)
		}
	}

	// Center text: percentage on the middle row, caption below it.
	center := gaugeHeight / 2
	placeCenter(glyphs[center], pctStyle.Render(fmt.Sprintf("%d%%", pct)), lipgloss.Width(fmt.Sprintf("%d%%", pct)))
	placeCenter(glyphs[center+1], labelStyle.Render("used"), 4)

	var b strings.Builder
	for r, row := range glyphs {
		b.WriteString(strings.Join(row, ""))
		if r < gaugeHeight-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func ringGlyph(row, col int) string {
	switch {
	case row == 0 && col == 0:
		return "╭"
	case row == 0 && col == gaugeWidth-1:
		return "╮"
	case row == gaugeHeight-1 && col == gaugeWidth-1:
		return "╯"
	case row == gaugeHeight-1 && col == 0:
		return "╰"
	case row == 0 || row == gaugeHeight-1:
		return "─"
	default:
		return "│"
	}
}

// placeCenter overwrites the middle cells of a glyph row with a styled
// string. The rendered string occupies one logical cell per column, so
// the row width stays constant.
func placeCenter(row []string, rendered string, visualW int) {
	start := (len(row) - visualW) / 2
	if start < 1 {
		start = 1
	}
	// The styled string lands in one cell; the rest are blanked.
	row[start] = rendered
	for i := start + 1; i < start+visualW && i < len(row)-1; i++ {
		row[i] = ""
	}
}
