package ctestxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dkoosis/ctestdash/internal/detect"
	"github.com/klauspost/compress/gzip"
)

var (
	// ErrNoTesting is returned when the document has no <Testing> section.
	ErrNoTesting = errors.New("missing Testing element")
	// ErrMissingElement is returned when a required child or attribute is absent.
	ErrMissingElement = errors.New("missing required element")
	// ErrUnknownTest is returned when a <Test> FullName is not listed in TestList.
	ErrUnknownTest = errors.New("test not listed in TestList")
)

// Options controls record construction.
type Options struct {
	// UnknownLabel is assigned to tests without a <Labels> element.
	UnknownLabel string
}

func (o Options) unknownLabel() string {
	if o.UnknownLabel == "" {
		return DefaultUnknownLabel
	}
	return o.UnknownLabel
}

// ReadFile loads and parses a Test.xml file. gzip-compressed files are
// inflated transparently.
func ReadFile(path string, opts Options) ([]TestRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ctest xml: %w", err)
	}

	if detect.Sniff(data) == detect.Gzip {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open gzip ctest xml: %w", err)
		}
		defer zr.Close()
		return Parse(zr, opts)
	}

	return ParseBytes(data, opts)
}

// ParseBytes is a convenience for parsing from a byte slice.
func ParseBytes(data []byte, opts Options) ([]TestRecord, error) {
	return Parse(bytes.NewReader(data), opts)
}

// Parse decodes a CTest dashboard document and returns its test records
// ordered by their position in TestList.
func Parse(r io.Reader, opts Options) ([]TestRecord, error) {
	var doc site
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode ctest xml: %w", err)
	}
	if doc.Testing == nil {
		return nil, ErrNoTesting
	}
	if doc.Testing.TestList == nil {
		return nil, fmt.Errorf("%w: Testing/TestList", ErrMissingElement)
	}

	ids := make(map[string]int, len(doc.Testing.TestList.Names))
	for i, name := range doc.Testing.TestList.Names {
		ids[name] = i
	}

	byOrdinal := make(map[int]TestRecord, len(doc.Testing.Tests))
	for i := range doc.Testing.Tests {
		rec, err := buildRecord(&doc.Testing.Tests[i], ids, opts)
		if err != nil {
			return nil, fmt.Errorf("test #%d: %w", i, err)
		}
		// A repeated FullName replaces the earlier record.
		byOrdinal[rec.Ordinal] = rec
	}

	ordinals := make([]int, 0, len(byOrdinal))
	for ord := range byOrdinal {
		ordinals = append(ordinals, ord)
	}
	sort.Ints(ordinals)

	records := make([]TestRecord, 0, len(ordinals))
	for _, ord := range ordinals {
		records = append(records, byOrdinal[ord])
	}
	return records, nil
}

func buildRecord(t *test, ids map[string]int, opts Options) (TestRecord, error) {
	if t.FullName == nil {
		return TestRecord{}, fmt.Errorf("%w: FullName", ErrMissingElement)
	}
	if t.Name == nil {
		return TestRecord{}, fmt.Errorf("%w: Name", ErrMissingElement)
	}
	if t.Status == nil {
		return TestRecord{}, fmt.Errorf("%w: Status attribute of %s", ErrMissingElement, *t.Name)
	}

	value, err := outputValue(t)
	if err != nil {
		return TestRecord{}, fmt.Errorf("%s: %w", *t.Name, err)
	}
	output, err := DecodeOutput(value)
	if err != nil {
		return TestRecord{}, fmt.Errorf("%s: %w", *t.Name, err)
	}

	ord, ok := ids[*t.FullName]
	if !ok {
		return TestRecord{}, fmt.Errorf("%w: %q", ErrUnknownTest, *t.FullName)
	}

	var labels []string
	if t.Labels != nil {
		labels = make([]string, 0, len(t.Labels.Labels))
		for _, l := range t.Labels.Labels {
			if l == "" {
				return TestRecord{}, fmt.Errorf("%w: Label text of %s", ErrMissingElement, *t.Name)
			}
			labels = append(labels, l)
		}
	}
	// An empty <Labels/> is treated like a missing one so no test goes unreported.
	if len(labels) == 0 {
		labels = []string{opts.unknownLabel()}
	}

	return TestRecord{
		Ordinal:  ord,
		FullName: *t.FullName,
		Name:     *t.Name,
		Status:   *t.Status,
		Output:   output,
		Labels:   labels,
	}, nil
}

// outputValue returns Results/Measurement/Value, using the first
// Measurement like CTest's own readers do.
func outputValue(t *test) (*Value, error) {
	if t.Results == nil {
		return nil, fmt.Errorf("%w: Results", ErrMissingElement)
	}
	if len(t.Results.Measurements) == 0 {
		return nil, fmt.Errorf("%w: Results/Measurement", ErrMissingElement)
	}
	v := t.Results.Measurements[0].Value
	if v == nil {
		return nil, fmt.Errorf("%w: Results/Measurement/Value", ErrMissingElement)
	}
	return v, nil
}
