package override

import (
	"sort"
	"strings"

	"github.com/mcpacktools/packtable/internal/modelref"
	"github.com/tidwall/gjson"
)

// collectRefs gathers raw model references from a "model" value. Shapes
// are tried in a fixed order: a direct string is the reference itself; an
// object contributes its "model" string field, then every entry of a
// "models" composite flattened through the same rules, then a bracketed
// marker for its "type" field. Anything else carries no references.
func collectRefs(model gjson.Result) []string {
	if model.Type == gjson.String {
		return []string{model.String()}
	}
	if !model.IsObject() {
		return nil
	}

	var refs []string
	if m := model.Get("model"); m.Type == gjson.String && m.String() != "" {
		refs = append(refs, m.String())
	}
	if list := model.Get("models"); list.IsArray() {
		list.ForEach(func(_, sub gjson.Result) bool {
			refs = append(refs, collectRefs(sub)...)
			return true
		})
	}
	if t := model.Get("type"); t.Type == gjson.String {
		refs = append(refs, modelref.TypeMarker(t.String()))
	}
	return refs
}

// conditionValues renders a "when" value as a sorted, deduplicated list
// of display strings. Arrays contribute one entry per element, anything
// else contributes a single entry. Nulls and blank strings are dropped;
// an empty list is a legitimate outcome.
func conditionValues(when gjson.Result) []string {
	var raw []string
	if when.IsArray() {
		when.ForEach(func(_, v gjson.Result) bool {
			if s, ok := conditionString(v); ok {
				raw = append(raw, s)
			}
			return true
		})
	} else if s, ok := conditionString(when); ok {
		raw = append(raw, s)
	}

	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, s := range raw {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// conditionString renders one when entry. Strings render unquoted,
// everything else keeps its JSON source text, so numbers and booleans
// display the way the pack author wrote them.
func conditionString(v gjson.Result) (string, bool) {
	if v.Type == gjson.Null {
		return "", false
	}
	s := v.Raw
	if v.Type == gjson.String {
		s = v.String()
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
