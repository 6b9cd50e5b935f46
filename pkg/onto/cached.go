package onto

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/reactome-tools/reaction-layout/pkg/cache"
	"github.com/reactome-tools/reaction-layout/pkg/observability"
)

// CachingSource memoizes compartment-tree reductions behind a cache.Cache,
// since the same accession set recurs across many reactions that share a
// cellular location.
type CachingSource struct {
	dag   *DAG
	store cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
	ver   string
}

// NewCachingSource wraps dag with a cache; ver identifies the ontology
// snapshot the DAG was built from, so a cache from a stale snapshot never
// gets served.
func NewCachingSource(dag *DAG, store cache.Cache, keyer cache.Keyer, ver string, ttl time.Duration) *CachingSource {
	return &CachingSource{dag: dag, store: store, keyer: keyer, ver: ver, ttl: ttl}
}

// CompartmentTree returns the cached reduction for accessions, computing
// and storing it on a miss.
func (s *CachingSource) CompartmentTree(accessions []string) *Tree {
	ctx := context.Background()
	sorted := append([]string(nil), accessions...)
	sort.Strings(sorted)
	key := s.keyer.TreeKey(sorted, cache.TreeKeyOpts{OntologyVersion: s.ver})

	if data, hit, err := s.store.Get(ctx, key); err == nil && hit {
		var t Tree
		if json.Unmarshal(data, &t) == nil {
			observability.Cache().OnCacheHit(ctx, "tree")
			return &t
		}
	}
	observability.Cache().OnCacheMiss(ctx, "tree")

	tree := Build(s.dag, accessions)
	if data, err := json.Marshal(tree); err == nil {
		if err := s.store.Set(ctx, key, data, s.ttl); err == nil {
			observability.Cache().OnCacheSet(ctx, "tree", len(data))
		}
	}
	return tree
}
