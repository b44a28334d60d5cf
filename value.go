package lametta

import "sort"

// Value is the typed output tree of a successful validation. Its shape
// mirrors the TypeDescriptor it was validated against: scalars hold the
// input value unchanged, sequences and tuples hold ordered children, objects
// hold named children, and union results additionally carry the tag of the
// variant that matched. Values are immutable once returned; callers project
// them into their own representation via the accessors, Interface, or Bind.
type Value struct {
	kind   Kind
	scalar any // string | int64 | float64 | bool
	items  []Value
	fields map[string]Value
	keys   []string // sorted field names
	tag    any      // union variant tag; nil unless resolved through a union
}

// Kind returns the value's kind: one of the scalar kinds, KindSequence,
// KindTuple, or KindObject (union results are objects tagged with Variant).
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload.
func (v Value) Str() (string, bool) {
	s, ok := v.scalar.(string)
	return s, ok
}

// Int returns the integer payload.
func (v Value) Int() (int64, bool) {
	n, ok := v.scalar.(int64)
	return n, ok
}

// Float returns the float payload.
func (v Value) Float() (float64, bool) {
	f, ok := v.scalar.(float64)
	return f, ok
}

// Bool returns the boolean payload.
func (v Value) Bool() (bool, bool) {
	b, ok := v.scalar.(bool)
	return b, ok
}

// Len returns the number of children of a sequence or tuple.
func (v Value) Len() int { return len(v.items) }

// At returns the i-th child of a sequence or tuple.
func (v Value) At(i int) (Value, bool) {
	if i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Field returns the named child of an object.
func (v Value) Field(name string) (Value, bool) {
	f, ok := v.fields[name]
	return f, ok
}

// Keys returns an object's field names in sorted order.
func (v Value) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Variant returns the discriminant tag of the union variant this object was
// resolved through, or false when the value did not pass through a union.
func (v Value) Variant() (any, bool) {
	return v.tag, v.tag != nil
}

// Interface converts the value back into a plain Go tree (scalars, []any,
// map[string]any), suitable for Bind or re-serialization by the caller.
func (v Value) Interface() any {
	switch v.kind {
	case KindSequence, KindTuple:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = it.Interface()
		}
		return out
	case KindObject:
		m := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			m[k] = f.Interface()
		}
		return m
	default:
		return v.scalar
	}
}

func scalarValue(kind Kind, v any) Value {
	return Value{kind: kind, scalar: v}
}

func listValue(kind Kind, items []Value) Value {
	return Value{kind: kind, items: items}
}

func objectValue(fields map[string]Value) Value {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Value{kind: KindObject, fields: fields, keys: keys}
}

func (v Value) withVariant(tag any) Value {
	v.tag = tag
	return v
}
