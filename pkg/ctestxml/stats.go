package ctestxml

// Stats holds aggregate counts across all records.
type Stats struct {
	Tests   int
	Passed  int
	Failed  int
	Warned  int // passed tests whose output mentions a warning
	NoOut   int // tests without captured output
	Unknown int // tests filed under the unknown label only
}

// ComputeStats counts outcomes over records. Each record counts once no
// matter how many labels it carries.
func ComputeStats(records []TestRecord, unknownLabel string) Stats {
	s := Stats{Tests: len(records)}
	for i := range records {
		r := &records[i]
		switch Outcome(r) {
		case CodeFailed:
			s.Failed++
		case CodeWarning:
			s.Passed++
			s.Warned++
		default:
			s.Passed++
		}
		if r.Output == nil {
			s.NoOut++
		}
		if len(r.Labels) == 1 && r.Labels[0] == unknownLabel {
			s.Unknown++
		}
	}
	return s
}
