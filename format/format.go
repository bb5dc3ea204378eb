// Package format provides the formatting engine used to render canonicalized
// type expressions.  The engine is a general-purpose code formatter: it
// operates on whole declarations, not bare types, so callers wrap the type
// they want formatted inside a synthetic minimal declaration and strip the
// scaffold from the result.
package format

// Formatter formats a self-contained source fragment.  A Formatter is a pure
// function: formatting the same fragment always produces the same result,
// and a failed format is deterministic, so retrying is never useful.
type Formatter interface {
	// Format returns the canonically formatted form of the given fragment,
	// or an error if the fragment cannot be tokenized.
	Format(src string) (string, error)
}
