package ecs

// Each2 iterates over entities that have both component A and B.
// It drives the iteration from the smaller store and looks rows up in the
// other one, so a row removed earlier in the pass is never yielded.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for id, a := range sa.All() {
			if b, ok := sb.Get(id); ok {
				fn(id, a, b)
			}
		}
		return
	}
	for id, b := range sb.All() {
		if a, ok := sa.Get(id); ok {
			fn(id, a, b)
		}
	}
}

// Each3 iterates over entities that have components A, B, and C.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, *A, *B, *C)) {
	// Iterate the smallest store
	smallest := sa.Len()
	which := 0
	if sb.Len() < smallest {
		smallest = sb.Len()
		which = 1
	}
	if sc.Len() < smallest {
		which = 2
	}

	switch which {
	case 0:
		for id, a := range sa.All() {
			if b, ok := sb.Get(id); ok {
				if c, ok := sc.Get(id); ok {
					fn(id, a, b, c)
				}
			}
		}
	case 1:
		for id, b := range sb.All() {
			if a, ok := sa.Get(id); ok {
				if c, ok := sc.Get(id); ok {
					fn(id, a, b, c)
				}
			}
		}
	case 2:
		for id, c := range sc.All() {
			if a, ok := sa.Get(id); ok {
				if b, ok := sb.Get(id); ok {
					fn(id, a, b, c)
				}
			}
		}
	}
}
