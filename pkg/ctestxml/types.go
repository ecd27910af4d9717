// Package ctestxml parses CTest dashboard XML (Test.xml) into ordered test
// records and groups them by label.
package ctestxml

// Status values CTest writes into the Test/@Status attribute.
const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusNotRun    = "notrun"
	StatusDisabled  = "disabled"
	EncodingBase64  = "base64"
	CompressionGzip = "gzip"
)

// Defaults for label handling.
const (
	DefaultUnknownLabel = "UNKNOWN_LABEL"
	DefaultLabelSuffix  = "_Tests"
)

// site is the document root CTest writes. The root tag name is not checked.
type site struct {
	Testing *testingSection `xml:"Testing"`
}

type testingSection struct {
	TestList *testList `xml:"TestList"`
	Tests    []test    `xml:"Test"`
}

// testList holds full test names in declaration order. Every child counts,
// whatever its tag.
type testList struct {
	Names []string `xml:",any"`
}

type test struct {
	Status   *string  `xml:"Status,attr"`
	Name     *string  `xml:"Name"`
	FullName *string  `xml:"FullName"`
	Results  *results `xml:"Results"`
	Labels   *labels  `xml:"Labels"`
}

type results struct {
	Measurements []measurement `xml:"Measurement"`
}

type measurement struct {
	Value *Value `xml:"Value"`
}

type labels struct {
	Labels []string `xml:"Label"`
}

// Value is the captured-output element of a test measurement.
type Value struct {
	Encoding    string `xml:"encoding,attr"`
	Compression string `xml:"compression,attr"`
	Text        string `xml:",chardata"`
}

// TestRecord is one <Test> element after decoding.
type TestRecord struct {
	Ordinal  int      // position of FullName within TestList
	FullName string
	Name     string
	Status   string
	Output   *string // nil when the test captured no output
	Labels   []string
}

// Passed reports whether CTest marked the test as passed.
func (r *TestRecord) Passed() bool {
	return r.Status == StatusPassed
}

// OutputText returns the captured output, or "" when there is none.
func (r *TestRecord) OutputText() string {
	if r.Output == nil {
		return ""
	}
	return *r.Output
}
