package resolver

import "github.com/mcpacktools/packtable/internal/modelref"

// Resolver is the interface for turning a model reference into the asset
// files it names.
type Resolver interface {
	// Resolve returns candidate paths for the reference, slash-separated
	// and relative to the pack root, in probe order. An empty result means
	// the reference matched nothing; callers decide how to report that.
	Resolve(ref modelref.Ref) []string
}
