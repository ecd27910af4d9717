package ctestxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func rec(status string, output *string) *TestRecord {
	return &TestRecord{Name: "t", Status: status, Output: output}
}

func TestHasWarning(t *testing.T) {
	tests := []struct {
		output string
		want   bool
	}{
		{"warning: unused", true},
		{"a warning occurred", true},
		{"Compiler WARNING", true},
		{"line1\nWarning here", true},
		{"(warning)", true},
		{"no_warning", false},
		{"-warning", false},
		{"Wwarning", false},
		{"foo:warning", false},
		{"a,warning", false},
		{"all good", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			assert.Equal(t, tt.want, HasWarning(tt.output))
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, CodeOK, Outcome(rec(StatusPassed, strPtr("All good"))))
	assert.Equal(t, CodeOK, Outcome(rec(StatusPassed, nil)))
	assert.Equal(t, CodeWarning, Outcome(rec(StatusPassed, strPtr("a warning occurred"))))
	assert.Equal(t, CodeFailed, Outcome(rec(StatusFailed, strPtr("a warning occurred"))))
	assert.Equal(t, CodeFailed, Outcome(rec(StatusNotRun, nil)))
}

func TestAggregate_LastWrite(t *testing.T) {
	pass := rec(StatusPassed, strPtr("ok"))
	warn := rec(StatusPassed, strPtr("warning: x"))
	fail := rec(StatusFailed, nil)

	tests := []struct {
		name    string
		records []*TestRecord
		want    Code
	}{
		{"empty", nil, CodeOK},
		{"all pass", []*TestRecord{pass, pass}, CodeOK},
		{"single fail", []*TestRecord{fail}, CodeFailed},
		{"single warn", []*TestRecord{warn}, CodeWarning},
		{"warn then pass keeps warn", []*TestRecord{warn, pass}, CodeWarning},
		{"fail then pass keeps fail", []*TestRecord{fail, pass}, CodeFailed},
		{"warn then fail", []*TestRecord{warn, fail}, CodeFailed},
		{"fail then warn is overwritten", []*TestRecord{fail, warn}, CodeWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.records, PolicyLastWrite))
		})
	}
}

func TestAggregate_MaxSeverity(t *testing.T) {
	pass := rec(StatusPassed, nil)
	warn := rec(StatusPassed, strPtr("WARNING"))
	fail := rec(StatusFailed, nil)

	assert.Equal(t, CodeFailed, Aggregate([]*TestRecord{fail, warn}, PolicyMaxSeverity))
	assert.Equal(t, CodeFailed, Aggregate([]*TestRecord{warn, fail, pass}, PolicyMaxSeverity))
	assert.Equal(t, CodeWarning, Aggregate([]*TestRecord{pass, warn, pass}, PolicyMaxSeverity))
	assert.Equal(t, CodeOK, Aggregate([]*TestRecord{pass}, PolicyMaxSeverity))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyLastWrite, p)

	p, err = ParsePolicy("max-severity")
	require.NoError(t, err)
	assert.Equal(t, PolicyMaxSeverity, p)

	_, err = ParsePolicy("worst")
	assert.Error(t, err)
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "y", CodeOK.String())
	assert.Equal(t, "n", CodeFailed.String())
	assert.Equal(t, "w", CodeWarning.String())
}

func TestComputeStats(t *testing.T) {
	records := []TestRecord{
		{Name: "a", Status: StatusPassed, Output: strPtr("ok"), Labels: []string{"Foo_Tests"}},
		{Name: "b", Status: StatusFailed, Labels: []string{"Foo_Tests", "Bar_Tests"}},
		{Name: "c", Status: StatusPassed, Output: strPtr("warning"), Labels: []string{DefaultUnknownLabel}},
	}
	s := ComputeStats(records, DefaultUnknownLabel)
	assert.Equal(t, 3, s.Tests)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Warned)
	assert.Equal(t, 1, s.NoOut)
	assert.Equal(t, 1, s.Unknown)
}
