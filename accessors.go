package singletonset

import (
	"fmt"
	"reflect"
)

// Go methods can not have their own type parameters, so the typed
// accessors live here as package level functions taking the Set as
// their first argument.

// Get returns a copy of the value of type T.
//
// Get never inserts anything and panics if the set holds no value of
// type T. Use TryGet if absence is expected, or GetMut and friends if
// a missing value should be created.
func Get[T any](s *Set) T {
	value, ok := TryGet[T](s)
	if !ok {
		panic(fmt.Sprintf("no value of type %s in set", reflect.TypeFor[T]()))
	}

	return value
}

// TryGet returns a copy of the value of type T, if the set holds one.
// It never inserts anything.
func TryGet[T any](s *Set) (T, bool) {
	ptr, ok := TryGetMut[T](s)
	if !ok {
		var tZero T
		return tZero, false
	}

	return *ptr, true
}

// GetMut returns a pointer to the value of type T, inserting the zero
// value of T first if the set does not hold one yet. Repeated calls
// return the same slot, with any mutations made in between.
func GetMut[T any](s *Set) *T {
	return GetOrInsertWith(s, func() T {
		var tZero T
		return tZero
	})
}

// TryGetMut returns a pointer to the value of type T, if the set holds
// one. It never inserts anything.
func TryGetMut[T any](s *Set) (*T, bool) {
	holder, ok := s.slots[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}

	// the slot for T always holds a *T
	return holder.(*T), true
}

// GetOrInsert returns a pointer to the value of type T, inserting the
// given value first if the set does not hold one yet. If the set
// already holds a value of type T, the given value is discarded.
func GetOrInsert[T any](s *Set, value T) *T {
	if ptr, ok := TryGetMut[T](s); ok {
		return ptr
	}

	s.put(reflect.TypeFor[T](), &value)
	return &value
}

// GetOrInsertWith returns a pointer to the value of type T, inserting
// the return value of makeValue first if the set does not hold one yet.
// makeValue is only called in that case.
func GetOrInsertWith[T any](s *Set, makeValue func() T) *T {
	if ptr, ok := TryGetMut[T](s); ok {
		return ptr
	}

	value := makeValue()
	s.put(reflect.TypeFor[T](), &value)
	return &value
}

// Insert puts value into the slot for T, replacing any value of that
// type already in the set. It returns the replaced value, with ok
// indicating whether there was one. This is the only accessor that
// overwrites an existing value.
func Insert[T any](s *Set, value T) (previous T, ok bool) {
	previous, ok = TryGet[T](s)
	s.put(reflect.TypeFor[T](), &value)
	return previous, ok
}

// Contains returns true if the set holds a value of type T.
func Contains[T any](s *Set) bool {
	_, ok := s.slots[reflect.TypeFor[T]()]
	return ok
}

// With calls fn with a copy of the value of type T and returns fn's
// result. Like Get, it panics if the set holds no value of type T.
func With[T, R any](s *Set, fn func(T) R) R {
	return fn(Get[T](s))
}

// WithMut calls fn with a pointer to the value of type T and returns
// fn's result. Like GetMut, it inserts the zero value of T first if
// the set does not hold one yet.
func WithMut[T, R any](s *Set, fn func(*T) R) R {
	return fn(GetMut[T](s))
}

// WithMutOr is WithMut for types whose zero value is not a useful
// default: if the set does not hold a value of type T, makeValue
// supplies the value to insert. makeValue is only called on a miss,
// fn is always called.
func WithMutOr[T, R any](s *Set, makeValue func() T, fn func(*T) R) R {
	return fn(GetOrInsertWith(s, makeValue))
}
