// Package render provides output renderers for the dashboard summary patterns.
package render

import "github.com/dkoosis/ctestdash/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

const (
	statusFail = "fail"
	statusWarn = "warn"
	statusPass = "pass"
)
