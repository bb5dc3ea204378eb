package syntax

import (
	"prettyname/types"
)

// type = ref_type | ptr_type | bracket_type | tuple_type | fn_type
//      | trait_type | path_type | '_' | '!' ;
func (p *Parser) parseType() (types.Expr, error) {
	switch p.tok.Kind {
	case TOK_AMP:
		return p.parseRefType()
	case TOK_STAR:
		return p.parsePtrType()
	case TOK_LBRACKET:
		return p.parseBracketType()
	case TOK_LPAREN:
		return p.parseTupleType()
	case TOK_FN, TOK_UNSAFE, TOK_EXTERN:
		return p.parseFnType()
	case TOK_DYN:
		if err := p.next(); err != nil {
			return nil, err
		}

		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}

		return &types.TraitObject{Bounds: bounds}, nil
	case TOK_IMPL:
		if err := p.next(); err != nil {
			return nil, err
		}

		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}

		return &types.ImplTrait{Bounds: bounds}, nil
	case TOK_INFER:
		if err := p.next(); err != nil {
			return nil, err
		}

		return &types.Infer{}, nil
	case TOK_BANG:
		if err := p.next(); err != nil {
			return nil, err
		}

		return &types.Never{}, nil
	case TOK_PRIM:
		prim := &types.Primitive{Name: p.tok.Value}

		if err := p.next(); err != nil {
			return nil, err
		}

		return prim, nil
	case TOK_IDENT, TOK_COLONCOLON:
		return p.parsePathType()
	default:
		return nil, p.reject()
	}
}

// -----------------------------------------------------------------------------

// ref_type = '&' [LIFETIME] ['mut'] type ;
func (p *Parser) parseRefType() (types.Expr, error) {
	ref := &types.Reference{}

	if err := p.next(); err != nil {
		return nil, err
	}

	if p.got(TOK_LIFETIME) {
		ref.Lifetime = p.tok.Value

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if p.got(TOK_MUT) {
		ref.Mut = true

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	ref.Elem = elem
	return ref, nil
}

// ptr_type = '*' ('const' | 'mut') type ;
func (p *Parser) parsePtrType() (types.Expr, error) {
	ptr := &types.RawPointer{}

	if err := p.next(); err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case TOK_CONST:
	case TOK_MUT:
		ptr.Mut = true
	default:
		return nil, p.reject()
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	ptr.Elem = elem
	return ptr, nil
}

// bracket_type = '[' type [';' INTLIT] ']' ;
func (p *Parser) parseBracketType() (types.Expr, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.got(TOK_SEMI) {
		if err := p.next(); err != nil {
			return nil, err
		}

		if err := p.assert(TOK_INTLIT); err != nil {
			return nil, err
		}

		length := p.tok.Value

		if err := p.next(); err != nil {
			return nil, err
		}

		if err := p.assertAndNext(TOK_RBRACKET); err != nil {
			return nil, err
		}

		return &types.Array{Elem: elem, Len: length}, nil
	}

	if err := p.assertAndNext(TOK_RBRACKET); err != nil {
		return nil, err
	}

	return &types.Slice{Elem: elem}, nil
}

// -----------------------------------------------------------------------------

// tuple_type = '(' ')'
//            | '(' type ')'                       -- a parenthesized type
//            | '(' type ',' [type {',' type} [',']] ')' ;
func (p *Parser) parseTupleType() (types.Expr, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	// The unit type.
	if p.got(TOK_RPAREN) {
		if err := p.next(); err != nil {
			return nil, err
		}

		return &types.Tuple{}, nil
	}

	first, err := p.parseType()
	if err != nil {
		return nil, err
	}

	// A single type with no trailing comma is a grouping, not a tuple.
	if p.got(TOK_RPAREN) {
		if err := p.next(); err != nil {
			return nil, err
		}

		return &types.Paren{Elem: first}, nil
	}

	elems := []types.Expr{first}
	for p.got(TOK_COMMA) {
		if err := p.next(); err != nil {
			return nil, err
		}

		// Trailing commas are allowed: `(i32,)` is a one-element tuple.
		if p.got(TOK_RPAREN) {
			break
		}

		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}

		elems = append(elems, elem)
	}

	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return nil, err
	}

	return &types.Tuple{Elems: elems}, nil
}

// -----------------------------------------------------------------------------

// fn_type = ['unsafe'] ['extern' [STRINGLIT]] 'fn' '(' [type {',' type} [',']] ')' ['->' type] ;
func (p *Parser) parseFnType() (types.Expr, error) {
	fn := &types.BareFunc{}

	if p.got(TOK_UNSAFE) {
		fn.Unsafe = true

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if p.got(TOK_EXTERN) {
		fn.Extern = true

		if err := p.next(); err != nil {
			return nil, err
		}

		if p.got(TOK_STRINGLIT) {
			fn.ABI = p.tok.Value

			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.assertAndNext(TOK_FN); err != nil {
		return nil, err
	}

	if err := p.assertAndNext(TOK_LPAREN); err != nil {
		return nil, err
	}

	for !p.got(TOK_RPAREN) {
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}

		fn.Params = append(fn.Params, param)

		if p.got(TOK_COMMA) {
			if err := p.next(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}

	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return nil, err
	}

	if p.got(TOK_ARROW) {
		if err := p.next(); err != nil {
			return nil, err
		}

		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}

		fn.Return = ret
	}

	return fn, nil
}

// -----------------------------------------------------------------------------

// bounds = bound {'+' bound} ;
// bound = LIFETIME | path_type ;
func (p *Parser) parseBounds() ([]types.Bound, error) {
	var bounds []types.Bound

	for {
		if p.got(TOK_LIFETIME) {
			bounds = append(bounds, &types.LifetimeBound{Name: p.tok.Value})

			if err := p.next(); err != nil {
				return nil, err
			}
		} else {
			path, err := p.parsePath()
			if err != nil {
				return nil, err
			}

			bounds = append(bounds, &types.TraitBound{Path: path})
		}

		if !p.got(TOK_PLUS) {
			break
		}

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	return bounds, nil
}

// -----------------------------------------------------------------------------

// path_type = path ;
func (p *Parser) parsePathType() (types.Expr, error) {
	return p.parsePath()
}

// path = ['::'] segment {'::' segment} ;
func (p *Parser) parsePath() (*types.Path, error) {
	path := &types.Path{}

	if p.got(TOK_COLONCOLON) {
		path.Root = true

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	for {
		seg, err := p.parseSegment()
		if err != nil {
			return nil, err
		}

		path.Segments = append(path.Segments, seg)

		if !p.got(TOK_COLONCOLON) {
			break
		}

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	return path, nil
}

// segment = IDENT ['<' generic_arg {',' generic_arg} '>' | paren_args] ;
func (p *Parser) parseSegment() (*types.Segment, error) {
	if err := p.assert(TOK_IDENT); err != nil {
		return nil, err
	}

	seg := &types.Segment{Name: p.tok.Value}

	if err := p.next(); err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case TOK_LT:
		if err := p.next(); err != nil {
			return nil, err
		}

		for {
			arg, err := p.parseGenericArg()
			if err != nil {
				return nil, err
			}

			seg.Args = append(seg.Args, arg)

			if !p.got(TOK_COMMA) {
				break
			}

			if err := p.next(); err != nil {
				return nil, err
			}
		}

		if err := p.assertAndNext(TOK_GT); err != nil {
			return nil, err
		}
	case TOK_LPAREN:
		paren, err := p.parseParenArgs()
		if err != nil {
			return nil, err
		}

		seg.Paren = paren
	}

	return seg, nil
}

// generic_arg = LIFETIME | INTLIT | binding | type ;
// binding = IDENT '=' type ;
func (p *Parser) parseGenericArg() (types.GenericArg, error) {
	switch p.tok.Kind {
	case TOK_LIFETIME:
		arg := &types.LifetimeArg{Name: p.tok.Value}

		if err := p.next(); err != nil {
			return nil, err
		}

		return arg, nil
	case TOK_INTLIT:
		arg := &types.ConstArg{Text: p.tok.Value}

		if err := p.next(); err != nil {
			return nil, err
		}

		return arg, nil
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	// A bare identifier followed by `=` is an associated type binding, not a
	// type argument.  The distinction only becomes visible after the type
	// has been parsed, so the path is reinterpreted here.
	if p.got(TOK_ASSIGN) {
		path, ok := typ.(*types.Path)
		if !ok || path.Root || len(path.Segments) != 1 ||
			len(path.Segments[0].Args) != 0 || path.Segments[0].Paren != nil {
			return nil, p.reject()
		}

		if err := p.next(); err != nil {
			return nil, err
		}

		bound, err := p.parseType()
		if err != nil {
			return nil, err
		}

		return &types.BindingArg{Name: path.Segments[0].Name, Type: bound}, nil
	}

	return &types.TypeArg{Type: typ}, nil
}

// paren_args = '(' [type {',' type} [',']] ')' ['->' type] ;
func (p *Parser) parseParenArgs() (*types.ParenArgs, error) {
	paren := &types.ParenArgs{}

	if err := p.next(); err != nil {
		return nil, err
	}

	for !p.got(TOK_RPAREN) {
		input, err := p.parseType()
		if err != nil {
			return nil, err
		}

		paren.Inputs = append(paren.Inputs, input)

		if p.got(TOK_COMMA) {
			if err := p.next(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}

	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return nil, err
	}

	if p.got(TOK_ARROW) {
		if err := p.next(); err != nil {
			return nil, err
		}

		output, err := p.parseType()
		if err != nil {
			return nil, err
		}

		paren.Output = output
	}

	return paren, nil
}
