package syntax

import (
	"bufio"
	"strings"
	"testing"
)

// tokenize lexes a full descriptor into its tokens, excluding the EOF token.
func tokenize(src string) ([]*Token, error) {
	lexer := NewLexer(bufio.NewReader(strings.NewReader(src)))

	var toks []*Token
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}

		if tok.Kind == TOK_EOF {
			return toks, nil
		}

		toks = append(toks, tok)
	}
}

func TestParseDescriptorRoundTrip(t *testing.T) {
	// Each descriptor should parse and then repr back to its canonical
	// spelling with no canonicalization applied.
	tests := []struct {
		desc string
		want string
	}{
		// Primitives.
		{"i32", "i32"},
		{"bool", "bool"},
		{"str", "str"},
		{"usize", "usize"},

		// Leaves.
		{"_", "_"},
		{"!", "!"},

		// Paths.
		{"String", "String"},
		{"std::string::String", "std::string::String"},
		{"::alloc::vec::Vec<i32>", "::alloc::vec::Vec<i32>"},
		{"std::collections::HashMap<String, Vec<i32>>", "std::collections::HashMap<String, Vec<i32>>"},
		{"Wrapper<i32, 5>", "Wrapper<i32, 5>"},
		{"Ref<'a, i32>", "Ref<'a, i32>"},
		{"Iterator<Item = i32>", "Iterator<Item = i32>"},

		// References.
		{"&i32", "&i32"},
		{"&'static str", "&'static str"},
		{"&mut String", "&mut String"},
		{"&'a mut str", "&'a mut str"},
		{"&&&str", "&&&str"},
		{"&[i32]", "&[i32]"},

		// Raw pointers.
		{"*const i32", "*const i32"},
		{"*mut [u8]", "*mut [u8]"},
		{"*const *mut i32", "*const *mut i32"},
		{"&*const i32", "&*const i32"},

		// Arrays and slices.
		{"[i32]", "[i32]"},
		{"[i32; 5]", "[i32; 5]"},
		{"[[i32; 2]; 3]", "[[i32; 2]; 3]"},
		{"[(i32, bool); 10]", "[(i32, bool); 10]"},
		{"[u8; 1_024]", "[u8; 1024]"},

		// Tuples and groupings.
		{"()", "()"},
		{"(i32,)", "(i32,)"},
		{"(i32, String, bool)", "(i32, String, bool)"},
		{"(i32, (String, bool))", "(i32, (String, bool))"},
		{"(i32, bool,)", "(i32, bool)"},
		{"(dyn Debug)", "(dyn Debug)"},

		// Function signatures.
		{"fn()", "fn()"},
		{"fn(i32) -> i32", "fn(i32) -> i32"},
		{"fn(i32, String, bool)", "fn(i32, String, bool)"},
		{"fn() -> fn(i32) -> i32", "fn() -> fn(i32) -> i32"},
		{"fn() -> !", "fn() -> !"},
		{"unsafe fn()", "unsafe fn()"},
		{"extern \"C\" fn(i32) -> i32", "extern \"C\" fn(i32) -> i32"},
		{"unsafe extern \"C\" fn(i32)", "unsafe extern \"C\" fn(i32)"},
		{"extern fn()", "extern fn()"},
		{"Vec<fn(i32) -> i32>", "Vec<fn(i32) -> i32>"},

		// Trait objects and impl traits.
		{"dyn Debug", "dyn Debug"},
		{"dyn core::fmt::Debug + Send", "dyn core::fmt::Debug + Send"},
		{"dyn Debug + Send + Sync", "dyn Debug + Send + Sync"},
		{"dyn Debug + 'static", "dyn Debug + 'static"},
		{"impl Iterator<Item = i32>", "impl Iterator<Item = i32>"},
		{"dyn Fn(i32) -> i32 + Send", "dyn Fn(i32) -> i32 + Send"},
		{"Box<dyn FnOnce()>", "Box<dyn FnOnce()>"},

		// Whitespace in descriptors is insignificant.
		{"  std :: vec :: Vec < i32 >  ", "std::vec::Vec<i32>"},
	}

	for _, test := range tests {
		typ, err := ParseDescriptor(test.desc)
		if err != nil {
			t.Errorf("failed to parse `%s`: %s", test.desc, err)
			continue
		}

		if repr := typ.Repr(); repr != test.want {
			t.Errorf("ParseDescriptor(`%s`).Repr() = `%s`, want `%s`", test.desc, repr, test.want)
		}
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	tests := []string{
		"",                // empty descriptor
		"Vec<",            // unclosed generic argument list
		"Vec<i32",         // unclosed generic argument list
		"&",               // dangling reference
		"*i32",            // raw pointer without mutability
		"[i32",            // unclosed bracket
		"[i32; ]",         // missing array length
		"(i32",            // unclosed tuple
		"123",             // literal in type position
		"%",               // unknown rune
		"foo::",           // dangling path separator
		"fn(i32",          // unclosed parameter list
		"dyn",             // missing bound
		"i32 i32",         // trailing tokens
		"Iterator<Item=>", // binding without a type
	}

	for _, desc := range tests {
		if _, err := ParseDescriptor(desc); err == nil {
			t.Errorf("expected `%s` to fail to parse", desc)
		}
	}
}

func TestLexerTokens(t *testing.T) {
	toks, err := tokenize("&'a mut Vec<i32>")
	if err != nil {
		t.Fatalf("failed to tokenize: %s", err)
	}

	wantKinds := []int{TOK_AMP, TOK_LIFETIME, TOK_MUT, TOK_IDENT, TOK_LT, TOK_PRIM, TOK_GT}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}

	for i, tok := range toks {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d: expected kind %d, got %d", i, wantKinds[i], tok.Kind)
		}
	}

	if toks[1].Value != "a" {
		t.Errorf("expected lifetime value `a`, got `%s`", toks[1].Value)
	}
}
