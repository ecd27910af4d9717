package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/ctestdash/pkg/ctestxml"
	"github.com/dkoosis/ctestdash/pkg/dashreport"
	"github.com/dkoosis/ctestdash/pkg/pattern"
)

func sampleResults() []dashreport.LabelResult {
	return []dashreport.LabelResult{
		{Label: "Kernel", Code: ctestxml.CodeOK, Tests: []dashreport.TestOutcome{
			{Name: "k1", Status: ctestxml.StatusPassed, Outcome: ctestxml.CodeOK},
		}},
		{Label: "Mesh", Code: ctestxml.CodeWarning, Tests: []dashreport.TestOutcome{
			{Name: "m1", Status: ctestxml.StatusPassed, Outcome: ctestxml.CodeWarning},
		}},
		{Label: "Misc", Code: ctestxml.CodeFailed, Tests: []dashreport.TestOutcome{
			{Name: "x1", Status: ctestxml.StatusFailed, Outcome: ctestxml.CodeFailed},
			{Name: "x2", Status: ctestxml.StatusNotRun, Outcome: ctestxml.CodeFailed},
		}},
	}
}

func TestFromDashboard_SummaryAndOrder(t *testing.T) {
	stats := ctestxml.Stats{Tests: 4, Passed: 2, Failed: 2, Warned: 1}
	patterns := FromDashboard(sampleResults(), stats)
	require.Len(t, patterns, 4)

	summary, ok := patterns[0].(*pattern.Summary)
	require.True(t, ok)
	assert.Equal(t, "FAIL — 3 labels, 4 tests (2 fail, 1 warn)", summary.Label)
	assert.Equal(t, pattern.SummaryKindDashboard, summary.Kind)

	var labels []string
	for _, p := range patterns[1:] {
		tt, ok := p.(*pattern.TestTable)
		require.True(t, ok)
		labels = append(labels, tt.Label)
	}
	assert.Equal(t, []string{"Misc", "Mesh", "Kernel"}, labels)
}

func TestFromDashboard_ItemStatus(t *testing.T) {
	patterns := FromDashboard(sampleResults(), ctestxml.Stats{})
	misc := patterns[1].(*pattern.TestTable)

	assert.Equal(t, "n", misc.Code)
	require.Len(t, misc.Results, 2)
	assert.Equal(t, statusFail, misc.Results[0].Status)
	assert.Empty(t, misc.Results[0].Details)
	assert.Equal(t, "status: notrun", misc.Results[1].Details)

	mesh := patterns[2].(*pattern.TestTable)
	assert.Equal(t, statusWarn, mesh.Results[0].Status)
}

func TestScope(t *testing.T) {
	assert.Equal(t, "PASS", Scope(nil))
	assert.Equal(t, "PASS", Scope([]dashreport.LabelResult{{Code: ctestxml.CodeOK}}))
	assert.Equal(t, "WARN", Scope([]dashreport.LabelResult{{Code: ctestxml.CodeOK}, {Code: ctestxml.CodeWarning}}))
	assert.Equal(t, "FAIL", Scope([]dashreport.LabelResult{{Code: ctestxml.CodeWarning}, {Code: ctestxml.CodeFailed}}))
}

func TestFromDashboard_AllPassOmitsCounts(t *testing.T) {
	results := []dashreport.LabelResult{{Label: "A", Code: ctestxml.CodeOK}}
	patterns := FromDashboard(results, ctestxml.Stats{Tests: 2, Passed: 2})
	summary := patterns[0].(*pattern.Summary)
	assert.Equal(t, "PASS — 1 labels, 2 tests", summary.Label)
	require.Len(t, summary.Metrics, 1)
	assert.Equal(t, "Passed", summary.Metrics[0].Label)
}

func TestFromDashboard_DetailsPointToOutput(t *testing.T) {
	results := []dashreport.LabelResult{{Label: "Foo", Code: ctestxml.CodeFailed, Tests: []dashreport.TestOutcome{
		{Name: "bad", Status: ctestxml.StatusFailed, Outcome: ctestxml.CodeFailed, OutputPath: "out/Foo/ProgramOutput.bad"},
		{Name: "skipped", Status: ctestxml.StatusNotRun, Outcome: ctestxml.CodeFailed, OutputPath: "out/Foo/ProgramOutput.skipped"},
		{Name: "noisy", Status: ctestxml.StatusPassed, Outcome: ctestxml.CodeWarning, OutputPath: "out/Foo/ProgramOutput.noisy"},
	}}}

	table := FromDashboard(results, ctestxml.Stats{})[1].(*pattern.TestTable)
	require.Len(t, table.Results, 3)
	assert.Equal(t, "out/Foo/ProgramOutput.bad", table.Results[0].Details)
	assert.Equal(t, "status: notrun", table.Results[1].Details)
	assert.Equal(t, "out/Foo/ProgramOutput.noisy", table.Results[2].Details)
}

func TestFromDashboard_NoOutputMetric(t *testing.T) {
	results := []dashreport.LabelResult{{Label: "A", Code: ctestxml.CodeOK}}
	summary := FromDashboard(results, ctestxml.Stats{Tests: 3, Passed: 3, NoOut: 2})[0].(*pattern.Summary)

	require.Len(t, summary.Metrics, 2)
	assert.Equal(t, pattern.SummaryItem{Label: "No output", Value: "2", Kind: kindInfo}, summary.Metrics[1])
}
