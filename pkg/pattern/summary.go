package pattern

// SummaryKind identifies what a summary describes.
type SummaryKind string

const (
	SummaryKindDashboard SummaryKind = "dashboard"
)

// Summary represents high-level metrics and counts.
type Summary struct {
	Label   string        `json:"label"`
	Kind    SummaryKind   `json:"kind"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g., "Labels", "Failed", "Warnings"
	Value string `json:"value"` // formatted value
	Kind  string `json:"kind"`  // "success", "error", "warning" or "info"
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
