// internal/modelref/parser.go
package modelref

import (
	"fmt"
	"strings"
)

// markerPrefix introduces a bracketed type marker, e.g. `[type:minecraft:player_head]`.
const markerPrefix = "[type:"

// jsonSuffix is stripped once from the end of a path reference; packs
// sometimes write the file extension into the reference string.
const jsonSuffix = ".json"

// TypeMarker formats a marker token for the given type name.
func TypeMarker(typeName string) string {
	return fmt.Sprintf("%s%s]", markerPrefix, typeName)
}

// Parse normalizes a raw reference string into a Ref. Parsing never fails:
// malformed input degrades to a reference with fewer (possibly zero)
// segments, which simply resolves to no candidates.
func Parse(raw string) Ref {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(token, markerPrefix) {
		return NewMarkerRef(token)
	}

	token = strings.TrimLeft(token, "/")
	token = strings.TrimSuffix(token, jsonSuffix)

	namespace := ""
	path := token
	if before, after, found := strings.Cut(token, ":"); found {
		namespace = before
		path = after
	}

	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	return Ref{Namespace: namespace, Segments: segments}
}
