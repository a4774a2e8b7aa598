// Package errors define the error taxonomy of the geometry compiler.
//
// All failures are fatal and synchronous: geometry construction is
// deterministic, so nothing here is ever retried. Lookup failures carry the
// attempted key and the legal alternatives so the caller can present them;
// no interactive prompting happens inside the resolution logic.
package errors

import (
	"fmt"
	"strings"
)

// Lookup report a failed key lookup against a closed enumeration or a
// database level. Available holds the legal alternatives at the level that
// failed.
type Lookup struct {
	Kind      string
	Key       string
	Available []string
}

func (e *Lookup) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
	}
	return fmt.Sprintf(
		"%s %q not found, available: %s", e.Kind, e.Key, strings.Join(e.Available, ", "),
	)
}

// NewLookup constructs a Lookup error.
func NewLookup(kind, key string, available ...string) *Lookup {
	return &Lookup{Kind: kind, Key: key, Available: available}
}

// Schema report a required metadata field absent after the merge. Surfaces
// at first access of the missing field, not at merge time.
type Schema struct {
	Field string
}

func (e *Schema) Error() string {
	return fmt.Sprintf("metadata field %q missing or empty", e.Field)
}

// Unverified report a request for a geometry branch that is not verified
// for production use. This is a deliberate safety gate, not a missing
// feature.
type Unverified struct {
	Assembly string
}

func (e *Unverified) Error() string {
	return fmt.Sprintf(
		"assembly %q is not verified for production geometries, pass allow-unverified to build it anyway",
		e.Assembly,
	)
}

// Shape report a geometry template that produced an unexpected number of
// top-level volumes. Indicates a malformed template, never bad user input.
type Shape struct {
	Template string
	Volumes  int
}

func (e *Shape) Error() string {
	return fmt.Sprintf(
		"template %q produced %d top-level volumes, expected exactly 1", e.Template, e.Volumes,
	)
}

// Malformed report structurally invalid user input, like a measurement
// identifier with the wrong number of fields.
type Malformed struct {
	Input  string
	Reason string
}

func (e *Malformed) Error() string {
	return fmt.Sprintf("malformed input %q: %s", e.Input, e.Reason)
}
