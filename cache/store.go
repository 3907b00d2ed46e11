// Package cache persists resolved list-pattern candidate sets between
// render passes.
//
// Entries are keyed by a fingerprint of the configured color namespace:
// the hash covers the sorted, deduplicated set of color *names*, not their
// definitions. A name whose underlying RGB value changes without the name
// set changing can therefore serve a stale cached match list; this is a
// known limitation of the design, kept for compatibility. Deleting the
// cache file forces a rebuild.
//
// Caching is strictly an optimization: a store that cannot be read is
// treated as a miss and a store that cannot be written only surfaces a
// write error, never a fatal one.
package cache

import (
	"hash/fnv"
	"slices"
	"time"
)

// Entry is one persisted cache record: the namespace hash it was computed
// under plus every list-pattern color resolved during that pass.
type Entry struct {
	// Hash is the namespace fingerprint the entry was built against.
	Hash uint64

	// Static marks an entry trusted regardless of hash mismatches.
	Static bool

	// CreatedAt records when the entry was built.
	CreatedAt time.Time

	// Lists maps a list-pattern color name to its resolved, ordered
	// candidate names.
	Lists map[string][]string
}

// Usable reports whether the entry may serve lookups for the given
// namespace hash: either the hashes match or the entry is static.
func (e Entry) Usable(hash uint64) bool {
	return e.Static || e.Hash == hash
}

// Store is a narrow key-value interface over one persisted cache slot.
// The on-disk format is an implementation detail, not a cross-version
// contract.
type Store interface {
	// Get returns the stored entry if one exists and is usable for hash.
	// An unreadable or corrupt store reads as a miss.
	Get(hash uint64) (Entry, bool)

	// Put replaces the stored entry. A failed write is reported but must
	// not be treated as fatal by callers.
	Put(Entry) error
}

// NamespaceHash fingerprints a color namespace: the FNV-1a hash of the
// sorted, deduplicated name set. Only the names contribute, never their
// definitions.
func NamespaceHash(names []string) uint64 {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	h := fnv.New64a()
	for _, name := range sorted {
		_, _ = h.Write([]byte(name)) // fnv.Write never returns an error
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// MemStore is an in-memory Store holding a single entry. It is useful for
// tests and for passes that want cache semantics without persistence.
type MemStore struct {
	entry Entry
	ok    bool
}

// Get implements Store.
func (s *MemStore) Get(hash uint64) (Entry, bool) {
	if !s.ok || !s.entry.Usable(hash) {
		return Entry{}, false
	}
	return s.entry, true
}

// Put implements Store.
func (s *MemStore) Put(e Entry) error {
	s.entry = e
	s.ok = true
	return nil
}
