package lametta

// ApplyDefaults returns a copy of v with declared field defaults merged in
// wherever the input omits the field. The input is never mutated. Defaults
// are a declaration-layer concern: after merging, the Validator still treats
// every declared field as required and validates merged defaults exactly
// like written input.
//
// Shapes that do not match the descriptor are returned unchanged; Validate
// reports those.
func ApplyDefaults(td *TypeDescriptor, v any) any {
	if td == nil {
		return v
	}
	switch td.kind {
	case KindSequence:
		src, ok := v.([]any)
		if !ok {
			return v
		}
		out := make([]any, len(src))
		for i, el := range src {
			out[i] = ApplyDefaults(td.elem, el)
		}
		return out
	case KindTuple:
		src, ok := v.([]any)
		if !ok || len(src) != len(td.elems) {
			return v
		}
		out := make([]any, len(src))
		for i, el := range src {
			out[i] = ApplyDefaults(td.elems[i], el)
		}
		return out
	case KindObject:
		src, ok := v.(map[string]any)
		if !ok {
			return v
		}
		out := make(map[string]any, len(src))
		for k, e := range src {
			out[k] = e
		}
		for _, name := range td.sortedKeys {
			f := td.fields[name]
			if fv, exists := out[name]; exists {
				out[name] = ApplyDefaults(f.typ, fv)
				continue
			}
			if f.hasDefault {
				out[name] = copyTree(f.def)
			}
		}
		return out
	case KindUnion:
		src, ok := v.(map[string]any)
		if !ok {
			return v
		}
		// Defaults of a union merge only after the variant is known; an
		// unresolvable discriminant leaves the input as-is for Validate to
		// report.
		variant, iss := resolveUnion(td, src, "")
		if len(iss) > 0 {
			return v
		}
		return ApplyDefaults(variant.obj, v)
	default:
		return v
	}
}

// copyTree deep-copies a default value so validated outputs never alias the
// schema declaration.
func copyTree(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyTree(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyTree(e)
		}
		return out
	default:
		return v
	}
}
