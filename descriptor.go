package lametta

import (
	"fmt"
	"sort"
)

// Kind identifies the shape a TypeDescriptor expects.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindSequence
	KindTuple
	KindObject
	KindUnion
)

// String renders the kind the way Issues report it.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindSequence:
		return "sequence"
	case KindTuple:
		return "tuple"
	case KindObject:
		return "mapping"
	case KindUnion:
		return "union"
	default:
		return "invalid"
	}
}

// IsScalar reports whether the kind is one of the four scalar kinds.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindInteger, KindFloat, KindBool:
		return true
	default:
		return false
	}
}

// TypeDescriptor is an immutable description of one schema node. Descriptors
// are constructed once, registered, and shared by reference across
// validations; nothing mutates them afterward, so concurrent validation
// against the same descriptor needs no synchronization.
type TypeDescriptor struct {
	kind Kind

	elem  *TypeDescriptor   // sequence element
	elems []*TypeDescriptor // tuple positions

	fields     map[string]Field // object fields by name
	sortedKeys []string         // cached for deterministic traversal

	discriminant string    // union discriminant field name
	variants     []Variant // union variants in declaration order
}

// Field describes one declared object field. Every field reaching the
// Validator is required; a default, when present, is merged into the input by
// ApplyDefaults before validation ever sees it.
type Field struct {
	name       string
	typ        *TypeDescriptor
	hasDefault bool
	def        any
}

// NewField declares a required field of the given type.
func NewField(name string, typ *TypeDescriptor) Field {
	return Field{name: name, typ: typ}
}

// NewFieldWithDefault declares a field whose value is merged from def when
// the input omits it. The default itself must satisfy the field's type; it is
// validated like any other input value after merging.
func NewFieldWithDefault(name string, typ *TypeDescriptor, def any) Field {
	return Field{name: name, typ: typ, hasDefault: true, def: normalizeLiteral(def)}
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// Type returns the field's declared descriptor.
func (f Field) Type() *TypeDescriptor { return f.typ }

// Default returns the declared default value, if any.
func (f Field) Default() (any, bool) { return f.def, f.hasDefault }

// Variant is one alternative object shape of a discriminated union, selected
// when the input's discriminant field equals Tag exactly.
type Variant struct {
	tag any
	obj *TypeDescriptor
}

// NewVariant pairs a discriminant literal with the object descriptor it
// selects.
func NewVariant(tag any, obj *TypeDescriptor) Variant {
	return Variant{tag: normalizeLiteral(tag), obj: obj}
}

// Tag returns the discriminant literal of the variant.
func (v Variant) Tag() any { return v.tag }

// Object returns the variant's object descriptor.
func (v Variant) Object() *TypeDescriptor { return v.obj }

// ---- constructors ----

// String returns the string scalar descriptor.
func String() *TypeDescriptor { return scalarString }

// Int returns the integer scalar descriptor. Floats are not accepted where an
// integer is declared, and vice versa.
func Int() *TypeDescriptor { return scalarInt }

// Float returns the float scalar descriptor.
func Float() *TypeDescriptor { return scalarFloat }

// Bool returns the boolean scalar descriptor.
func Bool() *TypeDescriptor { return scalarBool }

// Scalar kinds are stateless; one instance per kind is shared process-wide.
var (
	scalarString = &TypeDescriptor{kind: KindString}
	scalarInt    = &TypeDescriptor{kind: KindInteger}
	scalarFloat  = &TypeDescriptor{kind: KindFloat}
	scalarBool   = &TypeDescriptor{kind: KindBool}
)

// SequenceOf returns a descriptor for an ordered homogeneous sequence of
// elem, arbitrary length >= 0.
func SequenceOf(elem *TypeDescriptor) *TypeDescriptor {
	if elem == nil {
		panic("lametta: SequenceOf requires an element descriptor")
	}
	return &TypeDescriptor{kind: KindSequence, elem: elem}
}

// TupleOf returns a descriptor for a fixed-arity heterogeneous sequence;
// input length must equal len(elems) and position i validates against
// elems[i].
func TupleOf(elems ...*TypeDescriptor) *TypeDescriptor {
	if len(elems) == 0 {
		panic("lametta: TupleOf requires at least one position")
	}
	cp := make([]*TypeDescriptor, len(elems))
	for i, e := range elems {
		if e == nil {
			panic("lametta: TupleOf position descriptor is nil")
		}
		cp[i] = e
	}
	return &TypeDescriptor{kind: KindTuple, elems: cp}
}

// ObjectOf returns a nested-object descriptor. Field names must be unique.
func ObjectOf(fields ...Field) (*TypeDescriptor, error) {
	fm := make(map[string]Field, len(fields))
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.name == "" {
			return nil, fmt.Errorf("lametta: object field with empty name")
		}
		if f.typ == nil {
			return nil, fmt.Errorf("lametta: object field %q has no type", f.name)
		}
		if _, dup := fm[f.name]; dup {
			return nil, fmt.Errorf("lametta: duplicate object field %q", f.name)
		}
		fm[f.name] = f
		keys = append(keys, f.name)
	}
	sort.Strings(keys)
	return &TypeDescriptor{kind: KindObject, fields: fm, sortedKeys: keys}, nil
}

// MustObjectOf is like ObjectOf but panics on error.
func MustObjectOf(fields ...Field) *TypeDescriptor {
	td, err := ObjectOf(fields...)
	if err != nil {
		panic(err)
	}
	return td
}

// UnionOf returns a discriminated-union descriptor over the given variants.
// Only structural requirements are enforced here (object variants, non-empty
// discriminant); the full consistency checks of CheckUnions run at
// registration, where a violation fails the registration with
// SchemaCodeInconsistentUnion.
func UnionOf(discriminant string, variants ...Variant) (*TypeDescriptor, error) {
	if discriminant == "" {
		return nil, fmt.Errorf("lametta: union requires a discriminant field name")
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("lametta: union requires at least one variant")
	}
	cp := make([]Variant, len(variants))
	for i, v := range variants {
		if v.obj == nil || v.obj.kind != KindObject {
			return nil, fmt.Errorf("lametta: union variant %d is not an object descriptor", i)
		}
		cp[i] = v
	}
	return &TypeDescriptor{kind: KindUnion, discriminant: discriminant, variants: cp}, nil
}

// MustUnionOf is like UnionOf but panics on error.
func MustUnionOf(discriminant string, variants ...Variant) *TypeDescriptor {
	td, err := UnionOf(discriminant, variants...)
	if err != nil {
		panic(err)
	}
	return td
}

// ---- accessors ----

// Kind returns the descriptor's kind.
func (td *TypeDescriptor) Kind() Kind { return td.kind }

// Elem returns the element descriptor of a sequence, or nil.
func (td *TypeDescriptor) Elem() *TypeDescriptor { return td.elem }

// Elems returns the positional descriptors of a tuple.
func (td *TypeDescriptor) Elems() []*TypeDescriptor {
	out := make([]*TypeDescriptor, len(td.elems))
	copy(out, td.elems)
	return out
}

// Arity returns the tuple arity, or 0 for non-tuples.
func (td *TypeDescriptor) Arity() int { return len(td.elems) }

// Fields returns an object's fields in sorted name order.
func (td *TypeDescriptor) Fields() []Field {
	out := make([]Field, 0, len(td.fields))
	for _, k := range td.sortedKeys {
		out = append(out, td.fields[k])
	}
	return out
}

// FieldNamed looks up an object field by name.
func (td *TypeDescriptor) FieldNamed(name string) (Field, bool) {
	f, ok := td.fields[name]
	return f, ok
}

// Discriminant returns the union's discriminant field name.
func (td *TypeDescriptor) Discriminant() string { return td.discriminant }

// Variants returns the union's variants in declaration order.
func (td *TypeDescriptor) Variants() []Variant {
	out := make([]Variant, len(td.variants))
	copy(out, td.variants)
	return out
}

// kindOfValue classifies a decoded input value for error reporting.
func kindOfValue(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// scalarKindOf maps a discriminant literal to its scalar kind, or KindInvalid
// when the value is not a supported scalar.
func scalarKindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case int64:
		return KindInteger
	case float64:
		return KindFloat
	case bool:
		return KindBool
	default:
		return KindInvalid
	}
}

// normalizeLiteral brings schema-side literals (variant tags, defaults) into
// the decoded-input representation: integers widen to int64, nested
// containers are normalized recursively. Cross-kind conversions (int to
// float, number to string) are never performed.
func normalizeLiteral(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeLiteral(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeLiteral(e)
		}
		return out
	default:
		return v
	}
}

// scalarEqual compares two scalar literals exactly: equal only when both kind
// and value match. No cross-kind equality (1 != 1.0 != "1" != true).
func scalarEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}
