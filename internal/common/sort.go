// internal/common/sort.go
package common

import "sort"

// LessHit defines a stable order for hits (for --sort).
func LessHit(a, b Hit) bool {
	if a.DatabaseID != b.DatabaseID {
		return a.DatabaseID < b.DatabaseID
	}
	if a.QueryID != b.QueryID {
		return a.QueryID < b.QueryID
	}
	if a.QueryStart != b.QueryStart {
		return a.QueryStart < b.QueryStart
	}
	return a.DataStart < b.DataStart
}

// SortHits orders hits by LessHit, keeping pipeline order among equal keys.
func SortHits(hs []Hit) {
	sort.SliceStable(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}
