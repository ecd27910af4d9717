package ctestxml

import "strings"

// LabelGroup is the ordered set of records sharing one canonical label.
type LabelGroup struct {
	Label   string
	Records []*TestRecord
}

// Groups maps canonical labels to their records. Labels keep first-seen
// order so reports are stable between runs.
type Groups struct {
	order   []string
	byLabel map[string]*LabelGroup
}

// CanonicalLabel removes the first occurrence of suffix from label. This is
// a plain substring removal, not an anchored trim.
func CanonicalLabel(label, suffix string) string {
	if suffix == "" {
		return label
	}
	return strings.Replace(label, suffix, "", 1)
}

// GroupByLabel buckets records by canonical label. Records must already be
// in ordinal order; each group preserves it.
func GroupByLabel(records []TestRecord, suffix string) *Groups {
	g := &Groups{byLabel: make(map[string]*LabelGroup)}
	for i := range records {
		rec := &records[i]
		for _, l := range rec.Labels {
			label := CanonicalLabel(l, suffix)
			grp, ok := g.byLabel[label]
			if !ok {
				grp = &LabelGroup{Label: label}
				g.byLabel[label] = grp
				g.order = append(g.order, label)
			}
			grp.Records = append(grp.Records, rec)
		}
	}
	return g
}

// Labels returns canonical labels in first-seen order.
func (g *Groups) Labels() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// All returns every group in first-seen label order.
func (g *Groups) All() []*LabelGroup {
	out := make([]*LabelGroup, 0, len(g.order))
	for _, l := range g.order {
		out = append(out, g.byLabel[l])
	}
	return out
}

// Len returns the number of labels.
func (g *Groups) Len() int {
	return len(g.order)
}
