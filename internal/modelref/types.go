// internal/modelref/types.go
package modelref

// Ref is the structured representation of a model reference. Exactly one
// of the two shapes is populated: a type marker carries the verbatim
// marker token, a path reference carries an optional namespace plus the
// slash-separated path segments.
type Ref struct {
	Marker    string
	Namespace string
	Segments  []string
}

// NewRef creates a path reference from a namespace and its segments.
func NewRef(namespace string, segments ...string) Ref {
	return Ref{Namespace: namespace, Segments: segments}
}

// NewMarkerRef creates a marker reference carrying the verbatim token.
func NewMarkerRef(token string) Ref {
	return Ref{Marker: token}
}

// IsMarker returns true if the reference is a type marker rather than an
// asset path.
func (r Ref) IsMarker() bool {
	return r.Marker != ""
}

// Last returns the final path segment, or "" when the reference has none.
// The final segment is the model file name used for cross-namespace search.
func (r Ref) Last() string {
	if len(r.Segments) == 0 {
		return ""
	}
	return r.Segments[len(r.Segments)-1]
}
