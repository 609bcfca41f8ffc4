package report

import (
	"sort"
	"strings"
)

// GroupedRow is one table row: an item and one of its models, with the
// union of all conditions that select that model. Model may be an empty
// string when a rule named no reference at all, which keeps the rule
// visible in the report.
type GroupedRow struct {
	Item       string
	Model      string
	Conditions []string
}

// ConditionList renders the conditions in display form.
func (r GroupedRow) ConditionList() string {
	return strings.Join(r.Conditions, ", ")
}

// PackRows is one archive's section of the report. Err marks an archive
// that could not be scanned; its section renders the failure instead of
// a table.
type PackRows struct {
	Name        string
	Description string
	Rows        []GroupedRow
	Err         error
}

// Report is the full document model, one section per archive in input
// order.
type Report struct {
	Title string
	Packs []PackRows
}

// AllItems returns the sorted distinct item names across every scanned
// section.
func (r Report) AllItems() []string {
	seen := make(map[string]struct{})
	for _, p := range r.Packs {
		for _, row := range p.Rows {
			seen[row.Item] = struct{}{}
		}
	}

	items := make([]string, 0, len(seen))
	for item := range seen {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
