package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/ctestdash/pkg/pattern"
)

// LLM renders patterns as terse plain text for logs and AI consumption.
// Zero ANSI codes, SCOPE line first, passing tests collapsed to a count.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder

	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			sb.WriteString("SCOPE: " + v.Label + "\n")
		case *pattern.TestTable:
			l.renderTable(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderTable(sb *strings.Builder, t *pattern.TestTable) {
	sb.WriteString("\n## " + t.Label)
	if t.Code != "" {
		sb.WriteString(" " + t.Code)
	}
	sb.WriteString("\n")

	passed := 0
	for _, item := range t.Results {
		var prefix string
		switch item.Status {
		case statusFail:
			prefix = "  FAIL "
		case statusWarn:
			prefix = "  WARN "
		default:
			passed++
			continue
		}
		sb.WriteString(prefix + item.Name)
		if item.Details != "" {
			sb.WriteString(" (" + item.Details + ")")
		}
		sb.WriteString("\n")
	}
	if passed > 0 {
		sb.WriteString(fmt.Sprintf("  %d passed\n", passed))
	}
}
