package lametta

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch        = "type_mismatch"
	CodeMissingField        = "missing_field"
	CodeUnexpectedField     = "unexpected_field"
	CodeArityMismatch       = "arity_mismatch"
	CodeDiscriminantMissing = "discriminant_missing"
	CodeNoMatchingVariant   = "no_matching_variant"
	// CodeAmbiguousVariant marks an internal invariant violation: more than one
	// union variant matched a discriminant value. It is unreachable for
	// descriptors that passed registration and indicates a schema-construction
	// bug, not bad input.
	CodeAmbiguousVariant = "ambiguous_variant"
	CodeParseError       = "parse_error"
)

// Schema-build error codes. These qualify a schema id, never an input path,
// and are surfaced as *SchemaError rather than Issues.
const (
	SchemaCodeDuplicate         = "duplicate_schema"
	SchemaCodeInconsistentUnion = "inconsistent_union"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dotted/indexed location (for example: backend.collection, items[2]).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"integer",
	// "actual":"string"}) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		p := it.Path
		if p == "" {
			p = "(root)"
		}
		// e.g. type_mismatch at backend.collection
		fmt.Fprintf(b, "%s at %s", it.Code, p)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaError reports a failed schema registration. It is qualified by the
// schema id being registered, not by an input path: build-time problems are
// fatal to that registration and are never deferred to validation time.
type SchemaError struct {
	SchemaID string
	Code     string // SchemaCodeDuplicate or SchemaCodeInconsistentUnion.
	Message  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("lametta: schema %q: %s: %s", e.SchemaID, e.Code, e.Message)
}

// AsSchemaError extracts a *SchemaError from an error chain.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
