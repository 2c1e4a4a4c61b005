package scope

import (
	"sort"
	"time"
)

// MergeOwned combines the by-owner and by-organization query results into one
// slice, deduplicated by record id and ordered by creation time descending.
// The dedup is a correctness requirement, not an optimization: a record that
// is personally owned and also stamped with the active org satisfies both
// index queries and must appear exactly once. When both slices carry the same
// id, the entry from the by-owner slice wins (they are the same row).
func MergeOwned[T any](byOwner, byOrg []T, id func(T) string, createdAt func(T) time.Time) []T {
	seen := make(map[string]bool, len(byOwner)+len(byOrg))
	merged := make([]T, 0, len(byOwner)+len(byOrg))
	for _, rec := range byOwner {
		if !seen[id(rec)] {
			seen[id(rec)] = true
			merged = append(merged, rec)
		}
	}
	for _, rec := range byOrg {
		if !seen[id(rec)] {
			seen[id(rec)] = true
			merged = append(merged, rec)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return createdAt(merged[i]).After(createdAt(merged[j]))
	})
	return merged
}
