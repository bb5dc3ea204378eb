package prettyname

import (
	"strings"

	"prettyname/format"
	"prettyname/syntax"
	"prettyname/types"
)

// Namer computes and caches canonical type names for one execution context.
//
// A Namer is deliberately not synchronized: the design trades cross-context
// cache sharing for the elimination of all contention.  Each goroutine or
// execution context keeps its own Namer, so there is no shared mutable state
// and no lock.  Cache entries are write-once: they are created lazily on the
// first lookup of an identity and retained, unmodified, for the life of the
// Namer.  The cardinality of distinct types named by one program is small
// and static, so unconditional retention is cheaper and simpler than
// reclaiming entries.
type Namer struct {
	// The source of verbose type descriptors.
	source Source

	// The formatting engine used to render canonicalized trees.
	formatter format.Formatter

	// The cache of computed names keyed by type identity.
	cache map[TypeID]string
}

// NewNamer creates a new namer over the given descriptor source using the
// default formatting engine.
func NewNamer(source Source) *Namer {
	return NewNamerWith(source, format.StyleFormatter{})
}

// NewNamerWith creates a new namer over the given descriptor source and
// formatting engine.
func NewNamerWith(source Source, formatter format.Formatter) *Namer {
	return &Namer{
		source:    source,
		formatter: formatter,
		cache:     make(map[TypeID]string),
	}
}

// -----------------------------------------------------------------------------

// Name returns the canonical human-readable name of the type with the given
// identity.  The name is computed at most once per Namer: repeat lookups
// return the cached string without re-parsing or re-rendering.  Name never
// fails: any type whose name cannot be computed yields ErrorName, which is
// cached like any other result since recomputing it would be pointless.
func (n *Namer) Name(id TypeID) string {
	if name, ok := n.cache[id]; ok {
		return name
	}

	name := n.computeName(id)
	n.cache[id] = name

	return name
}

// NameOf returns the canonical human-readable name of the type of the given
// value.  It derives the value's type identity from the source and delegates
// to Name.
func (n *Namer) NameOf(v any) string {
	id, ok := n.source.Identify(v)
	if !ok {
		return ErrorName
	}

	return n.Name(id)
}

// -----------------------------------------------------------------------------

// computeName runs the full naming pipeline for a single identity: fetch the
// verbose descriptor, parse it, canonicalize the tree, and render it.
func (n *Namer) computeName(id TypeID) string {
	desc, ok := n.source.Describe(id)
	if !ok {
		return ErrorName
	}

	typ, err := syntax.ParseDescriptor(desc)
	if err != nil {
		return ErrorName
	}

	types.Truncate(typ)

	return n.render(typ)
}

// The formatting engine formats whole declarations, so the type is embedded
// in a synthetic minimal declaration to obtain correct spacing and the
// scaffold is stripped back off afterwards.
const (
	renderPrefix = "fn main() -> "
	renderSuffix = " {}"
)

// render serializes a canonicalized type expression to its canonical textual
// form via the formatting engine.
func (n *Namer) render(typ types.Expr) string {
	formatted, err := n.formatter.Format(renderPrefix + typ.Repr() + renderSuffix)
	if err != nil {
		return ErrorName
	}

	formatted = strings.TrimRight(formatted, "\r\n")

	// The scaffold must survive formatting intact and without overlap, or the
	// type cannot be sliced back out of the declaration.
	if len(formatted) < len(renderPrefix)+len(renderSuffix) ||
		!strings.HasPrefix(formatted, renderPrefix) || !strings.HasSuffix(formatted, renderSuffix) {
		return ErrorName
	}

	return formatted[len(renderPrefix) : len(formatted)-len(renderSuffix)]
}
