package component

import "fmt"

// ResourceKind names one counter of a Resources wallet.
type ResourceKind uint8

const (
	R1 ResourceKind = iota
	R2

	resourceKindCount
)

var resourceNames = [resourceKindCount]string{
	R1: "r1",
	R2: "r2",
}

func (k ResourceKind) Valid() bool { return k < resourceKindCount }

func (k ResourceKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ResourceKind(%d)", uint8(k))
	}
	return resourceNames[k]
}

// ParseResourceKind maps a counter name ("r1") to its kind.
func ParseResourceKind(s string) (ResourceKind, error) {
	for k, name := range resourceNames {
		if name == s {
			return ResourceKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q", s)
}

// ResourceKinds returns every valid kind in declaration order.
func ResourceKinds() []ResourceKind {
	kinds := make([]ResourceKind, 0, resourceKindCount)
	for k := ResourceKind(0); k < resourceKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Resources is a per-owner wallet of named integer counters.
type Resources struct {
	counters [resourceKindCount]int
}

func (r *Resources) Get(kind ResourceKind) int {
	if !kind.Valid() {
		return 0
	}
	return r.counters[kind]
}

// Add adds amount to the kind's counter. Returns false for an unknown kind.
func (r *Resources) Add(kind ResourceKind, amount int) bool {
	if !kind.Valid() {
		return false
	}
	r.counters[kind] += amount
	return true
}

func (r *Resources) String() string {
	s := "Resources("
	for k := ResourceKind(0); k < resourceKindCount; k++ {
		if k > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%d", k, r.counters[k])
	}
	return s + ")"
}
