package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/ctestdash/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		var s string
		switch v := p.(type) {
		case *pattern.Summary:
			s = t.renderSummary(v)
		case *pattern.TestTable:
			s = t.renderTestTable(v)
		}
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Header.Render(s.Label))
		sb.WriteString("\n")
	}
	for _, m := range s.Metrics {
		icon, style := t.kindStyle(m.Kind)
		sb.WriteString("  ")
		sb.WriteString(style.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderTestTable(tt *pattern.TestTable) string {
	var sb strings.Builder

	icon, style := t.codeStyle(tt.Code)
	sb.WriteString(style.Render(icon + " "))
	sb.WriteString(t.theme.Header.Render(tt.Label))
	sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("  %d tests", len(tt.Results))))
	sb.WriteString("\n")

	// Passing labels stay on one line.
	if tt.Code == "y" {
		return sb.String()
	}

	// Leave room for indent, icon and a details column.
	maxName := 0
	for _, r := range tt.Results {
		if w := runewidth.StringWidth(r.Name); w > maxName {
			maxName = w
		}
	}
	if limit := t.width - 8; limit > 10 && maxName > limit {
		maxName = limit
	}

	for _, r := range tt.Results {
		if r.Status == statusPass {
			continue
		}
		icon, style := t.statusStyle(r.Status)
		sb.WriteString("    ")
		sb.WriteString(style.Render(icon + " "))
		name := runewidth.Truncate(r.Name, maxName, "...")
		sb.WriteString(runewidth.FillRight(name, maxName))
		if r.Details != "" {
			sb.WriteString("  ")
			sb.WriteString(t.theme.Muted.Render(r.Details))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) kindStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Pass, t.theme.Success
	case "error":
		return t.theme.Icons.Fail, t.theme.Error
	case "warning":
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Muted
	}
}

func (t *Terminal) codeStyle(code string) (string, lipgloss.Style) {
	switch code {
	case "n":
		return t.kindStyle("error")
	case "w":
		return t.kindStyle("warning")
	default:
		return t.kindStyle("success")
	}
}

func (t *Terminal) statusStyle(status string) (string, lipgloss.Style) {
	switch status {
	case statusFail:
		return t.kindStyle("error")
	case statusWarn:
		return t.kindStyle("warning")
	default:
		return t.kindStyle("success")
	}
}
