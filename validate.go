package lametta

import (
	"context"
	"sort"

	"github.com/lametta/lametta-go/i18n"
)

// Validate walks v against td and returns either the fully constructed Value
// or the complete list of path-qualified problems found in this input.
// Validation is pure and synchronous: td is immutable, v is owned by the
// caller, and concurrent calls against the same descriptor need no
// synchronization.
//
// No coercion is performed at any level. Composite nodes aggregate all child
// issues rather than stopping at the first; the only short-circuits are
// tuple arity mismatch and union resolution failure, where continuing is
// meaningless.
func Validate(ctx context.Context, td *TypeDescriptor, v any, opts ...ParseOpt) (Value, error) {
	if td == nil {
		return Value{}, Issues{Issue{Code: CodeParseError, Message: "nil descriptor"}}
	}
	opt := lastOpt(opts)
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	out, iss := validateAt(ctx, td, v, "")
	if len(iss) > 0 {
		return Value{}, iss
	}
	return out, nil
}

func validateAt(ctx context.Context, td *TypeDescriptor, v any, path string) (Value, Issues) {
	switch td.kind {
	case KindString, KindInteger, KindFloat, KindBool:
		return validateScalar(td, v, path)
	case KindSequence:
		return validateSequence(ctx, td, v, path)
	case KindTuple:
		return validateTuple(ctx, td, v, path)
	case KindObject:
		return validateObject(ctx, td, v, path)
	case KindUnion:
		return validateUnion(ctx, td, v, path)
	default:
		return Value{}, Issues{Issue{Path: path, Code: CodeParseError, Message: "invalid descriptor kind"}}
	}
}

func mismatch(path string, expected string, v any) Issue {
	actual := kindOfValue(v)
	return Issue{
		Path:    path,
		Code:    CodeTypeMismatch,
		Message: i18n.T(CodeTypeMismatch, map[string]string{"expected": expected, "actual": actual}),
		Params:  map[string]any{"expected": expected, "actual": actual},
	}
}

func validateScalar(td *TypeDescriptor, v any, path string) (Value, Issues) {
	ok := false
	switch td.kind {
	case KindString:
		_, ok = v.(string)
	case KindInteger:
		_, ok = v.(int64)
	case KindFloat:
		_, ok = v.(float64)
	case KindBool:
		_, ok = v.(bool)
	}
	if !ok {
		return Value{}, Issues{mismatch(path, td.kind.String(), v)}
	}
	return scalarValue(td.kind, v), nil
}

func validateSequence(ctx context.Context, td *TypeDescriptor, v any, path string) (Value, Issues) {
	src, ok := v.([]any)
	if !ok {
		return Value{}, Issues{mismatch(path, td.kind.String(), v)}
	}
	items := make([]Value, 0, len(src))
	var iss Issues
	for i, el := range src {
		ev, i2 := validateAt(ctx, td.elem, el, indexPath(path, i))
		if len(i2) > 0 {
			iss = AppendIssues(iss, i2...)
			if IsFailFast(ctx) {
				return Value{}, iss
			}
			continue
		}
		items = append(items, ev)
	}
	if len(iss) > 0 {
		return Value{}, iss
	}
	return listValue(KindSequence, items), nil
}

func validateTuple(ctx context.Context, td *TypeDescriptor, v any, path string) (Value, Issues) {
	src, ok := v.([]any)
	if !ok {
		return Value{}, Issues{mismatch(path, td.kind.String(), v)}
	}
	// Positions are undefined when the length is wrong; report the arity and
	// stop this subtree.
	if len(src) != len(td.elems) {
		return Value{}, Issues{Issue{
			Path:    path,
			Code:    CodeArityMismatch,
			Message: i18n.T(CodeArityMismatch, nil),
			Params:  map[string]any{"expected": len(td.elems), "actual": len(src)},
		}}
	}
	items := make([]Value, 0, len(src))
	var iss Issues
	for i, el := range src {
		ev, i2 := validateAt(ctx, td.elems[i], el, indexPath(path, i))
		if len(i2) > 0 {
			iss = AppendIssues(iss, i2...)
			if IsFailFast(ctx) {
				return Value{}, iss
			}
			continue
		}
		items = append(items, ev)
	}
	if len(iss) > 0 {
		return Value{}, iss
	}
	return listValue(KindTuple, items), nil
}

func validateObject(ctx context.Context, td *TypeDescriptor, v any, path string) (Value, Issues) {
	src, ok := v.(map[string]any)
	if !ok {
		return Value{}, Issues{mismatch(path, td.kind.String(), v)}
	}
	out := make(map[string]Value, len(td.fields))
	var iss Issues
	// declared fields in sorted-name order for deterministic reports
	for _, k := range td.sortedKeys {
		f := td.fields[k]
		fv, exists := src[k]
		if !exists {
			iss = AppendIssues(iss, Issue{
				Path:    fieldPath(path, k),
				Code:    CodeMissingField,
				Message: i18n.T(CodeMissingField, nil),
			})
			if IsFailFast(ctx) {
				return Value{}, iss
			}
			continue
		}
		cv, i2 := validateAt(ctx, f.typ, fv, fieldPath(path, k))
		if len(i2) > 0 {
			iss = AppendIssues(iss, i2...)
			if IsFailFast(ctx) {
				return Value{}, iss
			}
			continue
		}
		out[k] = cv
	}
	// unknown keys in sorted order; strict, no unknown keys tolerated
	uks := make([]string, 0)
	for k := range src {
		if _, known := td.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		iss = AppendIssues(iss, Issue{
			Path:    fieldPath(path, k),
			Code:    CodeUnexpectedField,
			Message: i18n.T(CodeUnexpectedField, nil),
		})
		if IsFailFast(ctx) {
			return Value{}, iss
		}
	}
	if len(iss) > 0 {
		return Value{}, iss
	}
	return objectValue(out), nil
}

func validateUnion(ctx context.Context, td *TypeDescriptor, v any, path string) (Value, Issues) {
	src, ok := v.(map[string]any)
	if !ok {
		return Value{}, Issues{mismatch(path, KindObject.String(), v)}
	}
	variant, iss := resolveUnion(td, src, path)
	if len(iss) > 0 {
		return Value{}, iss
	}
	// The discriminant field is validated like any other field of the variant:
	// it must still be present and correctly typed.
	ov, i2 := validateObject(ctx, variant.obj, src, path)
	if len(i2) > 0 {
		return Value{}, i2
	}
	return ov.withVariant(variant.tag), nil
}
