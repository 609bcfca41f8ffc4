package override

import (
	"github.com/mcpacktools/packtable/internal/modelref"
	"github.com/mcpacktools/packtable/internal/resolver"
	"github.com/tidwall/gjson"
)

// Walk extracts every override rule from a parsed item definition
// document. Each object node holding both "when" and "model" yields
// exactly one RawRow; matched nodes are still descended into, so nested
// rules inside a composite model are found as well. Rows appear in
// document order.
func Walk(doc gjson.Result, item string, res resolver.Resolver) []RawRow {
	var rows []RawRow
	walk(doc, item, res, &rows)
	return rows
}

func walk(node gjson.Result, item string, res resolver.Resolver, out *[]RawRow) {
	switch {
	case node.IsObject():
		var when, model, parent gjson.Result
		node.ForEach(func(key, value gjson.Result) bool {
			switch key.String() {
			case "when":
				when = value
			case "model":
				model = value
			case "parent":
				parent = value
			}
			return true
		})

		if when.Exists() && model.Exists() {
			refs := collectRefs(model)
			if len(refs) == 0 && parent.Type == gjson.String && parent.String() != "" {
				refs = []string{parent.String()}
			}
			*out = append(*out, RawRow{
				Item:   item,
				Whens:  conditionValues(when),
				Models: resolveAll(refs, res),
			})
		}

		node.ForEach(func(_, value gjson.Result) bool {
			walk(value, item, res, out)
			return true
		})
	case node.IsArray():
		node.ForEach(func(_, value gjson.Result) bool {
			walk(value, item, res, out)
			return true
		})
	}
}

// resolveAll maps raw references to candidate files. Every candidate of a
// reference is kept; a reference that resolves to nothing stays in the
// output as its verbatim token so the report never silently loses a rule.
func resolveAll(refs []string, res resolver.Resolver) []string {
	var out []string
	for _, raw := range refs {
		candidates := res.Resolve(modelref.Parse(raw))
		if len(candidates) == 0 {
			out = append(out, raw)
			continue
		}
		out = append(out, candidates...)
	}
	return out
}
