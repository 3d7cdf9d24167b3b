package singletonset

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"reflect"
)

// Set is a container that uses the value's type as its key and holds at
// most one value per type. It can be used to create locally-scoped
// singletons out of any data type without requiring global state.
//
// Each value is stored behind a pointer, so mutations made through the
// pointers handed out by the accessor functions are visible to all
// later reads.
//
// The zero Set is empty and ready to use. A Set is a single-owner
// object and performs no locking, it must not be shared between
// goroutines without external synchronization. Pass it around by
// pointer, go vet flags accidental copies.
type Set struct {
	noCopy noCopy

	// slots maps a type to a pointer to the single value of that type.
	// The pointee type always matches the key.
	slots map[reflect.Type]any

	// hint is the number of slots the caller asked us to have room for.
	hint int
}

// New creates an empty Set. The set does not allocate until the first
// value is inserted.
func New() *Set {
	return &Set{}
}

// WithCapacity creates an empty Set with room for at least capacity
// values. The capacity is a hint forwarded to the underlying map, not
// a guarantee.
func WithCapacity(capacity int) *Set {
	return &Set{
		slots: make(map[reflect.Type]any, capacity),
		hint:  capacity,
	}
}

// Len returns the number of distinct types currently held.
func (s *Set) Len() int {
	return len(s.slots)
}

// IsEmpty returns true if the set holds no values.
func (s *Set) IsEmpty() bool {
	return len(s.slots) == 0
}

// Capacity returns the number of values the set has reserved room for.
// Like WithCapacity, this is a hint based on past reservations, go maps
// do not expose their true capacity.
func (s *Set) Capacity() int {
	return max(s.hint, len(s.slots))
}

// Clear removes all values from the set. Reserved capacity is kept.
func (s *Set) Clear() {
	clear(s.slots)
}

// Reserve makes room for at least additional more values. It panics if
// the new capacity cannot be expressed, use TryReserve if that matters.
func (s *Set) Reserve(additional int) {
	if err := s.TryReserve(additional); err != nil {
		panic(err)
	}
}

// TryReserve makes room for at least additional more values. It returns
// a *ReserveError if the request is impossible to satisfy. The contents
// of the set are untouched in that case.
func (s *Set) TryReserve(additional int) error {
	if additional < 0 || len(s.slots) > math.MaxInt-additional {
		return &ReserveError{Additional: additional}
	}

	target := len(s.slots) + additional
	if target > s.hint {
		s.rebuild(target)
	}

	return nil
}

// ShrinkToFit drops excess reserved capacity.
func (s *Set) ShrinkToFit() {
	s.ShrinkTo(0)
}

// ShrinkTo drops reserved capacity down to at least minCapacity. The
// capacity will not drop below the current number of values.
func (s *Set) ShrinkTo(minCapacity int) {
	target := max(minCapacity, len(s.slots))
	if target < s.Capacity() {
		s.rebuild(target)
	}
}

// rebuild replaces the slot map with one sized for capacity values.
func (s *Set) rebuild(capacity int) {
	slots := make(map[reflect.Type]any, capacity)
	maps.Copy(slots, s.slots)

	s.slots = slots
	s.hint = capacity
}

// ContainsType returns true if the set holds a value of the given type.
// Contains is the generic version.
func (s *Set) ContainsType(ty Type) bool {
	_, ok := s.slots[ty.rtype]
	return ok
}

// Types returns an iterator over the Type of every value currently in
// the set, in no particular order. The order is not stable across
// insertions. Iterating an empty set yields nothing.
func (s *Set) Types() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		for rtype := range s.slots {
			if !yield(Type{rtype: rtype}) {
				return
			}
		}
	}
}

// put stores ptr as the slot for rtype. ptr must point to a value of
// exactly rtype.
func (s *Set) put(rtype reflect.Type, ptr any) {
	if s.slots == nil {
		s.slots = make(map[reflect.Type]any)
	}

	s.slots[rtype] = ptr
}

// ReserveError is returned by Set.TryReserve when a reservation request
// cannot be satisfied.
type ReserveError struct {
	// Additional is the rejected request size.
	Additional int
}

func (e *ReserveError) Error() string {
	return fmt.Sprintf("cannot reserve space for %d additional values", e.Additional)
}
