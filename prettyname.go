// Package prettyname produces short, human-readable names for types for use
// in diagnostics, logging, and debugging.  Given the verbose, fully-qualified
// descriptor of a type (full module paths, explicit lifetimes, exhaustive
// generic arguments), it computes a minimal, visually clean equivalent:
// module-path prefixes are dropped down to their final segment and lifetime
// annotations are elided, recursively through every nested type position,
// while the structure of the type is preserved exactly.
//
// Name computation is memoized per type identity: each Namer computes the
// name of a given type at most once and returns the cached string on every
// later lookup.
package prettyname

import "reflect"

// ErrorName is the sentinel name substituted for any type whose name cannot
// be computed.  Parse and format failures are absorbed rather than surfaced:
// a degraded name is more useful in a diagnostic context than a hard failure.
const ErrorName = "<error>"

// TypeID is a stable identity key for a type.  Identities are unique per
// distinct type and stable across repeated queries for the same type; how
// they are assigned is up to the Source providing them.
type TypeID uint64

// -----------------------------------------------------------------------------

// Source provides the verbose type descriptors that name computation starts
// from.  Descriptors are machine-generated by the host's type-reflection
// facility and are expected to be syntactically well-formed; a descriptor
// that is not parses to the sentinel name instead of failing.
type Source interface {
	// Describe returns the verbose, fully-qualified descriptor of the type
	// with the given identity.
	Describe(id TypeID) (string, bool)

	// Identify returns the type identity of the given value.
	Identify(v any) (TypeID, bool)
}

// -----------------------------------------------------------------------------

// StaticSource is a Source backed by a fixed identity-to-descriptor table.
// It cannot identify values.
type StaticSource map[TypeID]string

func (ss StaticSource) Describe(id TypeID) (string, bool) {
	desc, ok := ss[id]
	return desc, ok
}

func (ss StaticSource) Identify(v any) (TypeID, bool) {
	return 0, false
}

// -----------------------------------------------------------------------------

// MapSource is a Source backed by explicit registration: descriptors are
// registered against a value's reflected type and identities are assigned
// sequentially at registration time.  Like a Namer, a MapSource belongs to a
// single execution context and is not synchronized.
type MapSource struct {
	// The next identity to assign.
	nextID TypeID

	// A mapping from registered reflected types to their identities.
	ids map[reflect.Type]TypeID

	// A mapping from assigned identities to their descriptors.
	descriptors map[TypeID]string
}

// NewMapSource creates a new, empty map source.
func NewMapSource() *MapSource {
	return &MapSource{
		nextID:      1,
		ids:         make(map[reflect.Type]TypeID),
		descriptors: make(map[TypeID]string),
	}
}

// Register records the verbose descriptor for the type of the given value
// and returns the identity assigned to it.  Registering the same type again
// returns its existing identity; the first descriptor wins.
func (ms *MapSource) Register(v any, descriptor string) TypeID {
	rtype := reflect.TypeOf(v)

	if id, ok := ms.ids[rtype]; ok {
		return id
	}

	id := ms.nextID
	ms.nextID++

	ms.ids[rtype] = id
	ms.descriptors[id] = descriptor

	return id
}

func (ms *MapSource) Describe(id TypeID) (string, bool) {
	desc, ok := ms.descriptors[id]
	return desc, ok
}

func (ms *MapSource) Identify(v any) (TypeID, bool) {
	id, ok := ms.ids[reflect.TypeOf(v)]
	return id, ok
}
