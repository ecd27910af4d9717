package ctestxml

import (
	"fmt"
	"regexp"
)

// Code is the one-character result a label contributes to the results file.
type Code byte

const (
	CodeOK      Code = 'y'
	CodeFailed  Code = 'n'
	CodeWarning Code = 'w'
)

func (c Code) String() string { return string(rune(c)) }

// Policy selects how per-test outcomes fold into a label code.
type Policy string

const (
	// PolicyLastWrite overwrites the code with each failing or warning test
	// in order. A passing test without warnings leaves it untouched, so a
	// later warning can replace an earlier failure.
	PolicyLastWrite Policy = "last-write"
	// PolicyMaxSeverity keeps the most severe outcome: n over w over y.
	PolicyMaxSeverity Policy = "max-severity"
)

// ParsePolicy validates a policy name. Empty selects PolicyLastWrite.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyLastWrite:
		return PolicyLastWrite, nil
	case PolicyMaxSeverity:
		return PolicyMaxSeverity, nil
	default:
		return "", fmt.Errorf("unknown aggregate policy %q (expected %s or %s)", s, PolicyLastWrite, PolicyMaxSeverity)
	}
}

var warningRe = regexp.MustCompile(`(?i)(^|[^a-zA-Z_,:-])warning`)

// HasWarning reports whether output mentions a warning as a standalone word
// start. Identifiers like no_warning and flags like -warning do not count.
func HasWarning(output string) bool {
	return warningRe.MatchString(output)
}

// Outcome classifies a single record: n for a non-passed status, w for a
// passed test whose output mentions a warning, y otherwise.
func Outcome(r *TestRecord) Code {
	if !r.Passed() {
		return CodeFailed
	}
	if r.Output != nil && HasWarning(*r.Output) {
		return CodeWarning
	}
	return CodeOK
}

// Aggregate folds records into a label code under the given policy.
func Aggregate(records []*TestRecord, policy Policy) Code {
	code := CodeOK
	for _, r := range records {
		o := Outcome(r)
		if o == CodeOK {
			continue
		}
		if policy == PolicyMaxSeverity && severity(o) < severity(code) {
			continue
		}
		code = o
	}
	return code
}

func severity(c Code) int {
	switch c {
	case CodeFailed:
		return 2
	case CodeWarning:
		return 1
	default:
		return 0
	}
}
