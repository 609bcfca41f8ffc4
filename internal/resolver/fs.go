package resolver

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mcpacktools/packtable/internal/modelref"
)

// assetsDir is the fixed top-level directory of a resourcepack tree.
const assetsDir = "assets"

// categoryRoots are leading path segments that already place a reference
// inside a model category. References outside these roots additionally get
// probed under models/item, where most custom item models live.
var categoryRoots = map[string]bool{
	"item":   true,
	"block":  true,
	"entity": true,
}

// FS resolves references against an extracted resourcepack rooted at Root.
// Markers resolve to themselves; path references are probed or searched on
// disk. The zero candidates case is a normal outcome, not a failure.
type FS struct {
	Root string
}

// Resolve implements Resolver.
func (f FS) Resolve(ref modelref.Ref) []string {
	if ref.IsMarker() {
		return []string{ref.Marker}
	}
	if len(ref.Segments) == 0 {
		return nil
	}

	if ref.Namespace != "" {
		return dedupe(f.probeNamespace(ref))
	}
	return dedupe(f.searchAllNamespaces(ref))
}

// probeNamespace checks the two conventional locations for a namespaced
// reference. Both may exist, in which case each contributes a candidate.
func (f FS) probeNamespace(ref modelref.Ref) []string {
	var out []string

	parts := append([]string{assetsDir, ref.Namespace, "models"}, ref.Segments...)
	if rel := path.Join(parts...) + ".json"; f.isFile(rel) {
		out = append(out, rel)
	}

	if !categoryRoots[ref.Segments[0]] {
		parts = append([]string{assetsDir, ref.Namespace, "models", "item"}, ref.Segments...)
		if rel := path.Join(parts...) + ".json"; f.isFile(rel) {
			out = append(out, rel)
		}
	}
	return out
}

// searchAllNamespaces globs every namespace for a file named after the
// reference's final segment, under a models directory at any depth.
func (f FS) searchAllNamespaces(ref modelref.Ref) []string {
	pattern := path.Join(assetsDir, "*", "**", "models", "**", ref.Last()+".json")
	matches, err := doublestar.Glob(os.DirFS(f.Root), pattern)
	if err != nil {
		// Glob metacharacters leaking in from a model name; treat as no match.
		return nil
	}
	return matches
}

func (f FS) isFile(rel string) bool {
	info, err := os.Stat(filepath.Join(f.Root, filepath.FromSlash(rel)))
	return err == nil && info.Mode().IsRegular()
}

// dedupe drops repeated candidates while preserving first-seen order.
func dedupe(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, c := range in {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
