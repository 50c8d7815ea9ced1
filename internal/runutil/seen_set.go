package runutil

// DefaultSeenCapacity bounds a SeenSet created with capacity <= 0.
const DefaultSeenCapacity = 200_000

// SeenSet is a bounded set of recently added keys kept in two generations
// of capacity/2 each. When the current generation fills it becomes the
// previous one and the old previous generation is dropped, so a key is
// forgotten once it has gone unused for at least capacity/2 inserts.
type SeenSet[K comparable] struct {
	half      int
	cur, prev map[K]struct{}
}

func NewSeenSet[K comparable](capacity int) *SeenSet[K] {
	if capacity <= 0 {
		capacity = DefaultSeenCapacity
	}
	half := max(capacity/2, 1)
	return &SeenSet[K]{half: half, cur: make(map[K]struct{}, min(half, 1<<12))}
}

// Add records k and reports whether it was already held.
func (s *SeenSet[K]) Add(k K) bool {
	if _, ok := s.cur[k]; ok {
		return true
	}
	_, seen := s.prev[k]
	if seen {
		delete(s.prev, k)
	}
	if len(s.cur) >= s.half {
		s.prev, s.cur = s.cur, make(map[K]struct{}, len(s.cur))
	}
	s.cur[k] = struct{}{}
	return seen
}

// Len returns the number of keys held.
func (s *SeenSet[K]) Len() int { return len(s.cur) + len(s.prev) }
