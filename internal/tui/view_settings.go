package tui

import (
	"fmt"
	"strings"

	"spendview/internal/config"
	"spendview/internal/tui/components"
	"spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg, _ := config.Load()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Theme picker
	var themeBody strings.Builder
	for i, th := range theme.All {
		marker := "( )"
		style := labelStyle
		if th.Name == theme.Active.Name {
			marker = "(o)"
		}
		if i == a.themeCursor {
			style = accentStyle
		}
		themeBody.WriteString(style.Render(fmt.Sprintf("%s %s", marker, th.Name)))
		themeBody.WriteString("\n")
	}
	themeBody.WriteString("\n")
	themeBody.WriteString(dimStyle.Render("[j/k] select  [enter] apply"))

	// Read-only config info
	dataFile := cfg.General.DataFile
	if dataFile == "" {
		dataFile = "(bundled demo data)"
	}
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Currency:     ") + valueStyle.Render(cfg.General.CurrencySymbol) + "\n")
	infoBody.WriteString(labelStyle.Render("Locale:       ") + valueStyle.Render(cfg.General.Locale) + "\n")
	infoBody.WriteString(labelStyle.Render("Data file:    ") + valueStyle.Render(dataFile) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n\n")
	infoBody.WriteString(dimStyle.Render("Edit the config file or set SPENDVIEW_* env vars, then restart."))

	var b strings.Builder
	b.WriteString(components.ContentCard("Theme", themeBody.String(), cw, false))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Configuration", infoBody.String(), cw, false))
	return b.String()
}
