package prettyname

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource wraps a StaticSource and counts descriptor fetches so that
// tests can observe cache behavior.
type countingSource struct {
	source    StaticSource
	describes int
}

func (cs *countingSource) Describe(id TypeID) (string, bool) {
	cs.describes++
	return cs.source.Describe(id)
}

func (cs *countingSource) Identify(v any) (TypeID, bool) {
	return cs.source.Identify(v)
}

// failingFormatter always rejects its input.
type failingFormatter struct{}

func (failingFormatter) Format(src string) (string, error) {
	return "", errors.New("rejected")
}

// fixedFormatter always succeeds with the same output regardless of input.
type fixedFormatter struct {
	output string
}

func (ff fixedFormatter) Format(src string) (string, error) {
	return ff.output, nil
}

// -----------------------------------------------------------------------------

func TestName(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"core::option::Option<i32>", "Option<i32>"},
		{"&'static str", "&str"},
		{"alloc::boxed::Box<dyn core::fmt::Debug + core::marker::Send>", "Box<dyn Debug + Send>"},
		{"std::collections::HashMap<std::string::String, std::vec::Vec<i32>>", "HashMap<String, Vec<i32>>"},
		{"(core::option::Option<i32>, core::result::Result<alloc::string::String, ()>)", "(Option<i32>, Result<String, ()>)"},
		{"alloc::vec::Vec<core::option::Option<core::result::Result<alloc::boxed::Box<dyn core::fmt::Debug>, alloc::string::String>>>", "Vec<Option<Result<Box<dyn Debug>, String>>>"},
		{"fn(alloc::vec::Vec<&str>) -> core::option::Option<i32>", "fn(Vec<&str>) -> Option<i32>"},
		{"unsafe extern \"C\" fn(i32)", "unsafe extern \"C\" fn(i32)"},
		{"[(core::option::Option<i32>, &'a str); 5]", "[(Option<i32>, &str); 5]"},
		{"core::marker::PhantomData<&'a str>", "PhantomData<&str>"},
		{"()", "()"},
		{"(i32,)", "(i32,)"},
	}

	for _, test := range tests {
		source := StaticSource{1: test.desc}
		namer := NewNamer(source)

		assert.Equal(t, test.want, namer.Name(1), "descriptor: %s", test.desc)
	}
}

func TestNameSentinel(t *testing.T) {
	source := StaticSource{
		1: "not a type!!!",
		2: "Vec<",
	}
	namer := NewNamer(source)

	// Parse failures are absorbed into the sentinel, never surfaced.
	assert.Equal(t, ErrorName, namer.Name(1))
	assert.Equal(t, ErrorName, namer.Name(2))

	// An identity with no descriptor behaves the same way.
	assert.Equal(t, ErrorName, namer.Name(99))
}

func TestNameIdempotent(t *testing.T) {
	cs := &countingSource{source: StaticSource{1: "std::string::String"}}
	namer := NewNamer(cs)

	first := namer.Name(1)
	second := namer.Name(1)

	require.Equal(t, "String", first)
	assert.Equal(t, first, second)

	// The pipeline ran exactly once: the second lookup was a cache hit.
	assert.Equal(t, 1, cs.describes)
}

func TestNameCachesSentinel(t *testing.T) {
	cs := &countingSource{source: StaticSource{1: "%%%"}}
	namer := NewNamer(cs)

	require.Equal(t, ErrorName, namer.Name(1))
	require.Equal(t, ErrorName, namer.Name(1))

	// Failures are deterministic, so they are cached like any other result.
	assert.Equal(t, 1, cs.describes)
}

func TestNameFormatterFailure(t *testing.T) {
	source := StaticSource{1: "std::string::String"}
	namer := NewNamerWith(source, failingFormatter{})

	assert.Equal(t, ErrorName, namer.Name(1))
}

func TestNameFormatterMangledOutput(t *testing.T) {
	source := StaticSource{1: "std::string::String"}

	// A formatter that destroys the scaffold, or returns output too short to
	// contain it without overlap, must degrade to the sentinel and never panic.
	tests := []string{
		"fn main() -> {}",
		"fn main() ->",
		"{}",
		"",
		"something else entirely",
	}

	for _, output := range tests {
		namer := NewNamerWith(source, fixedFormatter{output: output})

		assert.Equal(t, ErrorName, namer.Name(1), "formatter output: %q", output)
	}
}

func TestNameBoundOrderPreserved(t *testing.T) {
	// Bound order is pinned to declaration order: it is never normalized.
	source := StaticSource{1: "dyn b::Zeta + a::Alpha + core::marker::Send"}
	namer := NewNamer(source)

	assert.Equal(t, "dyn Zeta + Alpha + Send", namer.Name(1))
}

func TestNameArityPreserved(t *testing.T) {
	source := StaticSource{
		1: "fn(i32, alloc::string::String, bool)",
		2: "(i32, alloc::string::String, bool)",
	}
	namer := NewNamer(source)

	assert.Equal(t, "fn(i32, String, bool)", namer.Name(1))
	assert.Equal(t, "(i32, String, bool)", namer.Name(2))
}

func TestNameOf(t *testing.T) {
	source := NewMapSource()
	id := source.Register([]int{}, "alloc::vec::Vec<i32>")

	namer := NewNamer(source)

	assert.Equal(t, "Vec<i32>", namer.NameOf([]int{1, 2, 3}))
	assert.Equal(t, namer.Name(id), namer.NameOf([]int{}))

	// Values of unregistered types degrade to the sentinel.
	assert.Equal(t, ErrorName, namer.NameOf("unregistered"))
}

func TestMapSourceRegisterTwice(t *testing.T) {
	source := NewMapSource()

	first := source.Register([]int{}, "alloc::vec::Vec<i32>")
	second := source.Register([]int{}, "some::other::Descriptor")

	// Registering the same type again returns its existing identity; the
	// first descriptor wins.
	require.Equal(t, first, second)

	desc, ok := source.Describe(first)
	require.True(t, ok)
	assert.Equal(t, "alloc::vec::Vec<i32>", desc)
}
