package pack

import "github.com/mcpacktools/packtable/internal/override"

// Meta carries the optional self-description of a pack, read from its
// top-level pack.mcmeta. A missing or malformed pack.mcmeta leaves the
// zero value.
type Meta struct {
	Description string
	PackFormat  int64
}

// Result is the outcome of scanning one archive.
type Result struct {
	Rows []override.RawRow
	Meta Meta
}
