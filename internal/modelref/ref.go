// internal/modelref/ref.go
package modelref

import "strings"

// String serializes the Ref into its canonical string representation.
// Markers render verbatim; path references render as `namespace:path` or
// a bare path when no namespace is present. The canonical form doubles as
// the resolution cache key.
func (r Ref) String() string {
	if r.IsMarker() {
		return r.Marker
	}

	path := strings.Join(r.Segments, "/")
	if r.Namespace == "" {
		return path
	}
	return r.Namespace + ":" + path
}
