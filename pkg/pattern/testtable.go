package pattern

// TestTable is one label's tests with their outcome.
type TestTable struct {
	Label   string          `json:"label"`
	Code    string          `json:"code"` // label result: y, n or w
	Results []TestTableItem `json:"results"`
}

// TestTableItem is a single test result.
type TestTableItem struct {
	Name    string `json:"name"`
	Status  string `json:"status"`            // "pass", "fail", "warn"
	Details string `json:"details,omitempty"` // output file or raw CTest status
}

func (t *TestTable) Type() PatternType { return PatternTypeTestTable }
