package singletonset

import (
	"hash/maphash"
	"reflect"
	"strings"
)

var seed = maphash.MakeSeed()

// Type identifies a concrete go type. It is the key type used by Set.
//
// Two Type values are equal exactly if they describe the same go type.
// Equality and hashing are defined on the runtime type descriptor only,
// never on the type's name: names are neither unique nor stable.
type Type struct {
	rtype reflect.Type
}

// TypeFor returns the Type identifying T.
func TypeFor[T any]() Type {
	return Type{rtype: reflect.TypeFor[T]()}
}

// TypeOf returns the Type identifying the dynamic type of value.
func TypeOf(value any) Type {
	return Type{rtype: reflect.TypeOf(value)}
}

// Reflect returns the underlying reflect.Type.
func (t Type) Reflect() reflect.Type {
	return t.rtype
}

// String returns the full type name as reported by the runtime,
// e.g. "singletonset.Type" or "map[string]int". Names are not
// guaranteed to be unique across packages.
func (t Type) String() string {
	return t.rtype.String()
}

// Name returns a shortened form of the type name with the package
// qualifier stripped and any type parameter list cut off.
//
// This is a best effort string heuristic meant for display and debugging.
// It produces reasonable results for common type names and odd ones for
// nested generics or unnamed types. Never compare types by this value,
// compare the Type values themselves.
func (t Type) Name() string {
	name := t.rtype.String()

	end := strings.IndexByte(name, '[')
	if end < 0 {
		end = len(name)
	}

	if start := strings.LastIndexByte(name[:end], '.'); start >= 0 {
		return name[start+1 : end]
	}

	return name[:end]
}

// Hash returns a seeded hash of the type identity. The seed is chosen
// per process, hashes are not stable across runs.
func (t Type) Hash() uint64 {
	return maphash.Comparable(seed, t.rtype)
}
