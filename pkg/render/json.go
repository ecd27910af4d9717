package render

import (
	"encoding/json"

	"github.com/dkoosis/ctestdash/pkg/pattern"
)

// Source identifies the dashboard run a JSON document describes.
type Source struct {
	Tester   string
	Platform string
}

// JSON renders the dashboard summary as structured JSON for automation.
type JSON struct {
	src Source
}

// NewJSON creates a JSON renderer for the given run.
func NewJSON(src Source) *JSON {
	return &JSON{src: src}
}

// jsonOutput is the top-level JSON structure. Results mirrors the lines
// appended to the results file; Labels carries the per-test detail.
type jsonOutput struct {
	Version  string               `json:"version"`
	Tester   string               `json:"tester,omitempty"`
	Platform string               `json:"platform,omitempty"`
	Summary  *pattern.Summary     `json:"summary,omitempty"`
	Results  []jsonResult         `json:"results"`
	Labels   []*pattern.TestTable `json:"labels"`
}

type jsonResult struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// Render formats all patterns as one JSON document.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	out := jsonOutput{
		Version:  "1.0",
		Tester:   j.src.Tester,
		Platform: j.src.Platform,
		Results:  []jsonResult{},
		Labels:   []*pattern.TestTable{},
	}

	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			out.Summary = v
		case *pattern.TestTable:
			out.Results = append(out.Results, jsonResult{Label: v.Label, Code: v.Code})
			out.Labels = append(out.Labels, v)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
