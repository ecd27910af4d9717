// Package mapper converts dashboard results into visualization patterns.
package mapper

import (
	"fmt"
	"sort"

	"github.com/dkoosis/ctestdash/pkg/ctestxml"
	"github.com/dkoosis/ctestdash/pkg/dashreport"
	"github.com/dkoosis/ctestdash/pkg/pattern"
)

const (
	statusFail = "fail"
	statusWarn = "warn"
	statusPass = "pass"

	kindSuccess = "success"
	kindError   = "error"
	kindWarning = "warning"
	kindInfo    = "info"
)

// FromDashboard converts per-label results into patterns.
// Returns: Summary + one TestTable per label, failing labels first.
func FromDashboard(results []dashreport.LabelResult, stats ctestxml.Stats) []pattern.Pattern {
	patterns := make([]pattern.Pattern, 0, len(results)+1)
	patterns = append(patterns, dashboardSummary(results, stats))

	sorted := make([]dashreport.LabelResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return codePriority(sorted[i].Code) < codePriority(sorted[j].Code)
	})

	for _, r := range sorted {
		patterns = append(patterns, labelTable(r))
	}
	return patterns
}

// Scope returns PASS, WARN or FAIL for a set of label results.
func Scope(results []dashreport.LabelResult) string {
	scope := "PASS"
	for _, r := range results {
		switch r.Code {
		case ctestxml.CodeFailed:
			return "FAIL"
		case ctestxml.CodeWarning:
			scope = "WARN"
		}
	}
	return scope
}

func dashboardSummary(results []dashreport.LabelResult, s ctestxml.Stats) *pattern.Summary {
	var failedLabels, warnLabels int
	for _, r := range results {
		switch r.Code {
		case ctestxml.CodeFailed:
			failedLabels++
		case ctestxml.CodeWarning:
			warnLabels++
		}
	}

	label := fmt.Sprintf("%s — %d labels, %d tests", Scope(results), len(results), s.Tests)
	if s.Failed > 0 || s.Warned > 0 {
		label += fmt.Sprintf(" (%d fail, %d warn)", s.Failed, s.Warned)
	}

	metrics := []pattern.SummaryItem{
		{Label: "Passed", Value: fmt.Sprintf("%d", s.Passed), Kind: kindSuccess},
	}
	if s.Failed > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Failed",
			Value: fmt.Sprintf("%d (%d labels)", s.Failed, failedLabels),
			Kind:  kindError,
		})
	}
	if s.Warned > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Warnings",
			Value: fmt.Sprintf("%d (%d labels)", s.Warned, warnLabels),
			Kind:  kindWarning,
		})
	}
	if s.NoOut > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "No output",
			Value: fmt.Sprintf("%d", s.NoOut),
			Kind:  kindInfo,
		})
	}
	if s.Unknown > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Unlabeled",
			Value: fmt.Sprintf("%d", s.Unknown),
			Kind:  kindInfo,
		})
	}

	return &pattern.Summary{
		Label:   label,
		Kind:    pattern.SummaryKindDashboard,
		Metrics: metrics,
	}
}

func labelTable(r dashreport.LabelResult) *pattern.TestTable {
	items := make([]pattern.TestTableItem, 0, len(r.Tests))
	for _, t := range r.Tests {
		item := pattern.TestTableItem{Name: t.Name, Status: statusPass, Details: t.OutputPath}
		switch t.Outcome {
		case ctestxml.CodeFailed:
			item.Status = statusFail
			// notrun and disabled tests report their status.
			if t.Status != ctestxml.StatusFailed {
				item.Details = "status: " + t.Status
			}
		case ctestxml.CodeWarning:
			item.Status = statusWarn
		}
		items = append(items, item)
	}
	return &pattern.TestTable{
		Label:   r.Label,
		Code:    r.Code.String(),
		Results: items,
	}
}

func codePriority(c ctestxml.Code) int {
	switch c {
	case ctestxml.CodeFailed:
		return 0
	case ctestxml.CodeWarning:
		return 1
	default:
		return 2
	}
}
