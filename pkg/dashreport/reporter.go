package dashreport

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/dkoosis/ctestdash/pkg/ctestxml"
)

const (
	markerPassed = "successful "
	markerFailed = "ERROR:     "
)

var banner = strings.Repeat("-", 66)

// TestOutcome is one test's contribution to a label.
type TestOutcome struct {
	Name       string
	Status     string
	Outcome    ctestxml.Code
	OutputPath string
}

// LabelResult is what pass one wrote for a label.
type LabelResult struct {
	Label string
	Code  ctestxml.Code
	Tests []TestOutcome
}

// Reporter writes dashboard files for grouped test records.
type Reporter struct {
	layout Layout
	policy ctestxml.Policy
	logger *zap.Logger
}

// New creates a Reporter. A nil logger discards log output.
func New(layout Layout, policy ctestxml.Policy, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{layout: layout, policy: policy, logger: logger}
}

// Run performs both passes and returns the per-label results.
func (r *Reporter) Run(groups *ctestxml.Groups) ([]LabelResult, error) {
	results, err := r.WriteResults(groups)
	if err != nil {
		return nil, err
	}
	if err := r.WriteReports(groups); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteResults is pass one. For every label it rewrites error.txt and the
// ProgramOutput files, then appends "<label> <code>" to the results file.
func (r *Reporter) WriteResults(groups *ctestxml.Groups) (out []LabelResult, err error) {
	path := r.layout.ResultsPath()
	results, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	defer closeInto(results, &err)

	for _, grp := range groups.All() {
		res, err := r.writeLabel(grp)
		if err != nil {
			return nil, fmt.Errorf("label %s: %w", grp.Label, err)
		}
		if _, err := fmt.Fprintf(results, "%s %s\n", res.Label, res.Code); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		r.logger.Debug("label result",
			zap.String("label", res.Label),
			zap.Stringer("code", res.Code),
			zap.Int("tests", len(res.Tests)))
		out = append(out, res)
	}
	return out, nil
}

func (r *Reporter) writeLabel(grp *ctestxml.LabelGroup) (res LabelResult, err error) {
	errPath := r.layout.ErrorPath(grp.Label)
	errFile, err := createTruncate(errPath)
	if err != nil {
		return LabelResult{}, err
	}
	defer closeInto(errFile, &err)

	res = LabelResult{
		Label: grp.Label,
		Code:  ctestxml.Aggregate(grp.Records, r.policy),
		Tests: make([]TestOutcome, 0, len(grp.Records)),
	}

	for _, rec := range grp.Records {
		marker := markerFailed
		if rec.Passed() {
			marker = markerPassed
		}
		if _, err := fmt.Fprintf(errFile, "   %s %s\n", marker, rec.Name); err != nil {
			return LabelResult{}, fmt.Errorf("write %s: %w", errPath, err)
		}

		outPath := r.layout.ProgramOutputPath(grp.Label, rec.Name)
		if err := writeFile(outPath, rec.OutputText()); err != nil {
			return LabelResult{}, err
		}
		r.logger.Info("wrote program output", zap.String("path", displayPath(grp.Label, "ProgramOutput."+rec.Name)))

		res.Tests = append(res.Tests, TestOutcome{
			Name:       rec.Name,
			Status:     rec.Status,
			Outcome:    ctestxml.Outcome(rec),
			OutputPath: outPath,
		})
	}
	return res, nil
}

// WriteReports is pass two. It rebuilds each label's TestReport from the
// files pass one left on disk, so it fails if they are missing.
func (r *Reporter) WriteReports(groups *ctestxml.Groups) error {
	for _, grp := range groups.All() {
		if err := r.writeReport(grp); err != nil {
			return fmt.Errorf("label %s: %w", grp.Label, err)
		}
	}
	return nil
}

func (r *Reporter) writeReport(grp *ctestxml.LabelGroup) (err error) {
	errText, err := os.ReadFile(r.layout.ErrorPath(grp.Label))
	if err != nil {
		return fmt.Errorf("read error summary: %w", err)
	}

	path := r.layout.ReportPath(grp.Label)
	f, err := createTruncate(path)
	if err != nil {
		return err
	}
	defer closeInto(f, &err)

	if err := writeSection(f, "Error output from platform "+r.layout.Platform, errText); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	for _, rec := range grp.Records {
		outPath := r.layout.ProgramOutputPath(grp.Label, rec.Name)
		text, err := os.ReadFile(outPath)
		if err != nil {
			return fmt.Errorf("read program output: %w", err)
		}
		if err := writeSection(f, displayPath(grp.Label, "ProgramOutput."+rec.Name), text); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	r.logger.Debug("wrote test report", zap.String("path", path))
	return nil
}

// writeSection writes a titled block: a blank line, the title between two
// rules, a blank line, the body, then two line breaks.
func writeSection(w io.Writer, title string, body []byte) error {
	_, err := fmt.Fprintf(w, "\n%s\n- %s\n%s\n\n%s\n\n", banner, title, banner, body)
	return err
}

func writeFile(path, content string) (err error) {
	f, err := createTruncate(path)
	if err != nil {
		return err
	}
	defer closeInto(f, &err)

	if _, err := io.WriteString(f, content); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// closeInto closes c and records its error in *errp unless one is already set.
func closeInto(c io.Closer, errp *error) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close: %w", cerr)
	}
}
