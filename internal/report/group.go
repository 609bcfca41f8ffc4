package report

import (
	"sort"

	"github.com/mcpacktools/packtable/internal/override"
)

// pairKey identifies one output row while merging.
type pairKey struct {
	item  string
	model string
}

// Group merges raw rows into one section. Each (item, model) pair becomes
// a single row carrying the union of its condition sets; a raw row with
// no models contributes a pair under the empty model key. The output is
// sorted by item then model, conditions sorted within each row, so
// grouping already-grouped data is a no-op.
func Group(name string, rows []override.RawRow) PackRows {
	merged := make(map[pairKey]map[string]struct{})
	for _, row := range rows {
		models := row.Models
		if len(models) == 0 {
			models = []string{""}
		}
		for _, model := range models {
			key := pairKey{item: row.Item, model: model}
			set, ok := merged[key]
			if !ok {
				set = make(map[string]struct{})
				merged[key] = set
			}
			for _, w := range row.Whens {
				set[w] = struct{}{}
			}
		}
	}

	grouped := make([]GroupedRow, 0, len(merged))
	for key, set := range merged {
		conditions := make([]string, 0, len(set))
		for w := range set {
			conditions = append(conditions, w)
		}
		sort.Strings(conditions)
		if len(conditions) == 0 {
			conditions = nil
		}
		grouped = append(grouped, GroupedRow{Item: key.item, Model: key.model, Conditions: conditions})
	}

	sort.Slice(grouped, func(i, j int) bool {
		if grouped[i].Item != grouped[j].Item {
			return grouped[i].Item < grouped[j].Item
		}
		return grouped[i].Model < grouped[j].Model
	})

	return PackRows{Name: name, Rows: grouped}
}
