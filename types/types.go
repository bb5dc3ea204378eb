package types

import (
	"strings"

	"prettyname/util"
)

// Expr represents a single syntactic type position within a parsed type
// descriptor.  This must be one of the enumerated expression structs below.
// The set of expression shapes is closed over the descriptor grammar;
// Opaque absorbs anything the grammar may grow in the future.
type Expr interface {
	// Returns the canonical source form of this type expression.
	Repr() string
}

// -----------------------------------------------------------------------------

// Primitive represents a primitive type leaf such as `i32` or `bool`.
type Primitive struct {
	// The raw text of the primitive name.
	Name string
}

func (p *Primitive) Repr() string {
	return p.Name
}

// -----------------------------------------------------------------------------

// Path represents a qualified type path such as `std::vec::Vec<i32>`.
type Path struct {
	// Whether the path begins with a leading `::` root marker.
	Root bool

	// The ordered segments of the path.  A well-formed path always has at
	// least one segment; an empty path is tolerated and renders as visibly
	// degenerate output rather than failing.
	Segments []*Segment
}

func (p *Path) Repr() string {
	sb := strings.Builder{}

	if p.Root {
		sb.WriteString("::")
	}

	for i, seg := range p.Segments {
		if i != 0 {
			sb.WriteString("::")
		}

		sb.WriteString(seg.Repr())
	}

	return sb.String()
}

// Segment represents a single segment of a type path together with its
// optional argument list.  A segment carries either angle-bracketed generic
// arguments, parenthesized arguments, or no arguments at all.
type Segment struct {
	// The segment's identifier.
	Name string

	// The angle-bracketed generic arguments of the segment, if any.
	Args []GenericArg

	// The parenthesized arguments of the segment (eg. `Fn(i32) -> i32`), if
	// any.
	Paren *ParenArgs
}

func (s *Segment) Repr() string {
	if len(s.Args) > 0 {
		reprs := util.Map(s.Args, func(arg GenericArg) string { return arg.Repr() })
		return s.Name + "<" + strings.Join(reprs, ", ") + ">"
	}

	if s.Paren != nil {
		return s.Name + s.Paren.Repr()
	}

	return s.Name
}

// ParenArgs represents the parenthesized arguments of a path segment: the
// input types and the optional output type of a callable bound.
type ParenArgs struct {
	// The input types of the callable.
	Inputs []Expr

	// The output type of the callable.  This is nil if the callable has no
	// return type.
	Output Expr
}

func (pa *ParenArgs) Repr() string {
	reprs := util.Map(pa.Inputs, func(input Expr) string { return input.Repr() })
	repr := "(" + strings.Join(reprs, ", ") + ")"

	if pa.Output != nil {
		repr += " -> " + pa.Output.Repr()
	}

	return repr
}

// -----------------------------------------------------------------------------

// GenericArg represents a single argument inside an angle-bracketed generic
// argument list.  This must be one of the enumerated argument structs below.
type GenericArg interface {
	// Returns the canonical source form of this argument.
	Repr() string
}

// TypeArg is a generic argument which is itself a type.
type TypeArg struct {
	// The argument type.
	Type Expr
}

func (ta *TypeArg) Repr() string {
	return ta.Type.Repr()
}

// LifetimeArg is a generic argument which is a lifetime such as `'static`.
type LifetimeArg struct {
	// The lifetime's name without the leading quote.
	Name string
}

func (la *LifetimeArg) Repr() string {
	return "'" + la.Name
}

// ConstArg is a generic argument which is a constant such as `5`.
type ConstArg struct {
	// The raw text of the constant.
	Text string
}

func (ca *ConstArg) Repr() string {
	return ca.Text
}

// BindingArg is an associated type binding such as `Item = i32`.
type BindingArg struct {
	// The name of the associated type being bound.
	Name string

	// The type the associated type is bound to.
	Type Expr
}

func (ba *BindingArg) Repr() string {
	return ba.Name + " = " + ba.Type.Repr()
}

// -----------------------------------------------------------------------------

// Reference represents a reference type such as `&'a mut T`.
type Reference struct {
	// The reference's lifetime tag without the leading quote.  This is empty
	// if the reference carries no lifetime.
	Lifetime string

	// Whether the reference is mutable.
	Mut bool

	// The type being referenced.
	Elem Expr
}

func (rt *Reference) Repr() string {
	sb := strings.Builder{}

	sb.WriteRune('&')

	if rt.Lifetime != "" {
		sb.WriteString("'" + rt.Lifetime + " ")
	}

	if rt.Mut {
		sb.WriteString("mut ")
	}

	sb.WriteString(rt.Elem.Repr())

	return sb.String()
}

// RawPointer represents a raw pointer type such as `*const i32`.
type RawPointer struct {
	// Whether the pointer is mutable.
	Mut bool

	// The type being pointed to.
	Elem Expr
}

func (pt *RawPointer) Repr() string {
	if pt.Mut {
		return "*mut " + pt.Elem.Repr()
	} else {
		return "*const " + pt.Elem.Repr()
	}
}

// -----------------------------------------------------------------------------

// Array represents a fixed-size array type such as `[i32; 5]`.
type Array struct {
	// The element type of the array.
	Elem Expr

	// The raw text of the array's length.
	Len string
}

func (at *Array) Repr() string {
	return "[" + at.Elem.Repr() + "; " + at.Len + "]"
}

// Slice represents a slice type such as `[i32]`.
type Slice struct {
	// The element type of the slice.
	Elem Expr
}

func (st *Slice) Repr() string {
	return "[" + st.Elem.Repr() + "]"
}

// -----------------------------------------------------------------------------

// Tuple represents a tuple type such as `(i32, bool)`.  A tuple with no
// elements is the unit type `()`.
type Tuple struct {
	// The element types of the tuple in order.
	Elems []Expr
}

func (tt *Tuple) Repr() string {
	sb := strings.Builder{}

	sb.WriteRune('(')

	for i, elem := range tt.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(elem.Repr())
	}

	// Single-element tuples keep the trailing comma which distinguishes them
	// from a parenthesized type.
	if len(tt.Elems) == 1 {
		sb.WriteRune(',')
	}

	sb.WriteRune(')')

	return sb.String()
}

// -----------------------------------------------------------------------------

// BareFunc represents a bare function signature such as
// `unsafe extern "C" fn(i32) -> i32`.
type BareFunc struct {
	// Whether the signature is unsafe.
	Unsafe bool

	// Whether the signature carries an extern qualifier.
	Extern bool

	// The ABI string of the signature's calling convention (eg. `C`).  This
	// is empty if the extern qualifier names no explicit ABI.
	ABI string

	// The parameter types of the signature in order.
	Params []Expr

	// The return type of the signature.  This is nil if the signature has no
	// return type.
	Return Expr
}

func (bf *BareFunc) Repr() string {
	sb := strings.Builder{}

	if bf.Unsafe {
		sb.WriteString("unsafe ")
	}

	if bf.Extern {
		sb.WriteString("extern ")

		if bf.ABI != "" {
			sb.WriteString("\"" + bf.ABI + "\" ")
		}
	}

	sb.WriteString("fn(")

	for i, param := range bf.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.Repr())
	}

	sb.WriteRune(')')

	if bf.Return != nil {
		sb.WriteString(" -> ")
		sb.WriteString(bf.Return.Repr())
	}

	return sb.String()
}

// -----------------------------------------------------------------------------

// Bound represents a single bound of a trait-object or impl-trait type.
// This must be one of the enumerated bound structs below.
type Bound interface {
	// Returns the canonical source form of this bound.
	Repr() string
}

// TraitBound is a bound naming a trait path such as `std::fmt::Debug`.
type TraitBound struct {
	// The path of the bound trait.
	Path *Path
}

func (tb *TraitBound) Repr() string {
	return tb.Path.Repr()
}

// LifetimeBound is a bound naming a lifetime such as `'static`.
type LifetimeBound struct {
	// The lifetime's name without the leading quote.
	Name string
}

func (lb *LifetimeBound) Repr() string {
	return "'" + lb.Name
}

// TraitObject represents a trait-object type such as `dyn Debug + Send`.
type TraitObject struct {
	// The bounds of the trait object in declaration order.
	Bounds []Bound
}

func (to *TraitObject) Repr() string {
	return "dyn " + reprBounds(to.Bounds)
}

// ImplTrait represents an opaque impl-trait type such as
// `impl Iterator<Item = i32>`.
type ImplTrait struct {
	// The bounds of the impl trait in declaration order.
	Bounds []Bound
}

func (it *ImplTrait) Repr() string {
	return "impl " + reprBounds(it.Bounds)
}

// reprBounds renders a bound list in declaration order.
func reprBounds(bounds []Bound) string {
	reprs := util.Map(bounds, func(bound Bound) string { return bound.Repr() })
	return strings.Join(reprs, " + ")
}

// -----------------------------------------------------------------------------

// Paren represents a parenthesized type such as `(dyn Debug)`.  It is
// semantically transparent: it exists only to preserve the grouping that
// appeared in the descriptor.
type Paren struct {
	// The inner type.
	Elem Expr
}

func (pt *Paren) Repr() string {
	return "(" + pt.Elem.Repr() + ")"
}

// Infer represents the inferred-type placeholder `_`.
type Infer struct{}

func (it *Infer) Repr() string {
	return "_"
}

// Never represents the never type `!`.
type Never struct{}

func (nt *Never) Repr() string {
	return "!"
}

// Opaque represents a verbatim token stream the parser recognized as a type
// position but not as any structured shape: macro-produced types and any
// forward-compatible grammar extensions land here.
type Opaque struct {
	// The raw text of the type.
	Text string
}

func (ot *Opaque) Repr() string {
	return ot.Text
}
