package types

// Truncate simplifies a type expression tree in place so that it reads the
// way a human would write it: every qualified path is collapsed to its final
// segment and every reference lifetime is discarded.  The structure of the
// tree is never changed: arities of tuples, signatures, and generic argument
// lists are preserved exactly.
//
// Truncate is total.  It never fails, and expression shapes it does not
// recognize are left untouched so that grammar extensions degrade to
// pass-through rather than crashing.
func Truncate(typ Expr) {
	switch v := typ.(type) {
	case *Array:
		Truncate(v.Elem)
	case *Slice:
		Truncate(v.Elem)
	case *RawPointer:
		Truncate(v.Elem)
	case *Paren:
		Truncate(v.Elem)

	case *Reference:
		// Lifetimes carry no information useful in a diagnostic name.
		v.Lifetime = ""
		Truncate(v.Elem)

	case *Path:
		TruncatePath(v)

	case *BareFunc:
		for _, param := range v.Params {
			Truncate(param)
		}

		if v.Return != nil {
			Truncate(v.Return)
		}

	case *Tuple:
		for _, elem := range v.Elems {
			Truncate(elem)
		}

	case *TraitObject:
		truncateBounds(v.Bounds)
	case *ImplTrait:
		truncateBounds(v.Bounds)
	}

	// Primitive, Infer, Never, Opaque, and any unrecognized shapes carry no
	// path or lifetime to simplify.
}

// TruncatePath collapses a path to its final segment, dropping the leading
// root marker, and recurses into the final segment's arguments.  An empty
// path stays empty: downstream rendering surfaces it as degenerate output.
func TruncatePath(p *Path) {
	p.Root = false

	if len(p.Segments) == 0 {
		return
	}

	last := p.Segments[len(p.Segments)-1]
	p.Segments = []*Segment{last}

	for _, arg := range last.Args {
		switch a := arg.(type) {
		case *TypeArg:
			Truncate(a.Type)
		case *BindingArg:
			Truncate(a.Type)
		}
	}

	if last.Paren != nil {
		for _, input := range last.Paren.Inputs {
			Truncate(input)
		}

		if last.Paren.Output != nil {
			Truncate(last.Paren.Output)
		}
	}
}

// truncateBounds path-truncates every trait bound in a bound list.  Marker
// traits are truncated the same way as the primary trait; lifetime bounds
// carry no path to simplify.  Declaration order is preserved.
func truncateBounds(bounds []Bound) {
	for _, bound := range bounds {
		if tb, ok := bound.(*TraitBound); ok {
			TruncatePath(tb.Path)
		}
	}
}
