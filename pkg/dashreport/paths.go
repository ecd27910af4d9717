// Package dashreport writes per-label dashboard files: the shared results
// file, each label's error.txt and ProgramOutput files, and the
// consolidated TestReport.
package dashreport

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Layout resolves output paths under Root.
type Layout struct {
	Root     string
	Tester   string
	Platform string
}

// ResultsPath is the shared results file, appended to across runs.
func (l Layout) ResultsPath() string {
	return filepath.Join(l.Root, fmt.Sprintf("results_%s_%s.txt", l.Tester, l.Platform))
}

// ErrorPath is the per-label pass/fail summary.
func (l Layout) ErrorPath(label string) string {
	return filepath.Join(l.Root, label, "error.txt")
}

// ProgramOutputPath is the captured output file for one test.
func (l Layout) ProgramOutputPath(label, test string) string {
	return filepath.Join(l.Root, label, "ProgramOutput."+test)
}

// ReportPath is the consolidated human-readable report for a label.
func (l Layout) ReportPath(label string) string {
	return filepath.Join(l.Root, label, fmt.Sprintf("TestReport_%s_%s", l.Tester, l.Platform))
}

// displayPath is the label-relative name shown inside reports.
func displayPath(label, file string) string {
	return label + "/" + file
}

// openCreateDir opens path with flag, creating parent directories first.
// A concurrent creator winning the mkdir race is not an error.
func openCreateDir(path string, flag int) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func createTruncate(path string) (*os.File, error) {
	return openCreateDir(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

func openAppend(path string) (*os.File, error) {
	return openCreateDir(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}
