package override

// RawRow is one extracted override rule: the item definition it came
// from, the display conditions that trigger it, and the model references
// it selects after best-effort resolution. Models holds resolved asset
// paths where resolution succeeded and verbatim reference tokens where it
// did not; an empty Models means the rule named no reference at all.
type RawRow struct {
	Item   string
	Whens  []string
	Models []string
}
