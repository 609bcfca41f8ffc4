package resolver

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mcpacktools/packtable/internal/modelref"
)

// DefaultCacheSize bounds the per-scan resolution cache. Packs repeat the
// same handful of references across hundreds of item files, so a small
// cache absorbs nearly all lookups.
const DefaultCacheSize = 1024

// Cached memoizes another Resolver keyed by the canonical reference
// string. Candidate sets are only meaningful for one extracted tree, so a
// Cached instance must not outlive the scan that created it.
type Cached struct {
	next  Resolver
	cache *lru.Cache[string, []string]
}

// NewCached wraps next with an LRU cache of the given size.
func NewCached(next Resolver, size int) (*Cached, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

// Resolve implements Resolver.
func (c *Cached) Resolve(ref modelref.Ref) []string {
	key := ref.String()
	if hit, ok := c.cache.Get(key); ok {
		return hit
	}
	candidates := c.next.Resolve(ref)
	c.cache.Add(key, candidates)
	return candidates
}
