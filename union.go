package lametta

import (
	"fmt"

	"github.com/lametta/lametta-go/i18n"
)

// CheckUnions walks td and verifies every nested union:
//
//   - each variant tag is a scalar literal,
//   - tags are unique across variants (exact kind+value equality),
//   - each variant object declares the discriminant field itself,
//   - the discriminant field's declared type is a scalar whose kind matches
//     every tag used by the union.
//
// Registration runs this check and converts a violation into a
// SchemaCodeInconsistentUnion error; the dsl builders run it eagerly so a bad
// union fails at declaration rather than at registration.
func CheckUnions(td *TypeDescriptor) error {
	if td == nil {
		return nil
	}
	switch td.kind {
	case KindSequence:
		return CheckUnions(td.elem)
	case KindTuple:
		for _, e := range td.elems {
			if err := CheckUnions(e); err != nil {
				return err
			}
		}
	case KindObject:
		for _, k := range td.sortedKeys {
			if err := CheckUnions(td.fields[k].typ); err != nil {
				return err
			}
		}
	case KindUnion:
		if err := checkUnion(td); err != nil {
			return err
		}
		for _, v := range td.variants {
			if err := CheckUnions(v.obj); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkUnion(u *TypeDescriptor) error {
	tagKind := KindInvalid
	for i, v := range u.variants {
		k := scalarKindOf(v.tag)
		if k == KindInvalid {
			return fmt.Errorf("union on %q: variant %d tag %v is not a scalar literal", u.discriminant, i, v.tag)
		}
		if tagKind == KindInvalid {
			tagKind = k
		} else if k != tagKind {
			return fmt.Errorf("union on %q: variant %d tag %v is %s, earlier tags are %s", u.discriminant, i, v.tag, k, tagKind)
		}
		for j := 0; j < i; j++ {
			if scalarEqual(u.variants[j].tag, v.tag) {
				return fmt.Errorf("union on %q: duplicate variant tag %v", u.discriminant, v.tag)
			}
		}
		df, ok := v.obj.fields[u.discriminant]
		if !ok {
			return fmt.Errorf("union on %q: variant %v does not declare the discriminant field", u.discriminant, v.tag)
		}
		if df.typ.kind != k {
			return fmt.Errorf("union on %q: variant %v declares discriminant as %s, tag is %s", u.discriminant, v.tag, df.typ.kind, k)
		}
	}
	return nil
}

// resolveUnion selects the single variant whose tag equals the input's
// discriminant value. Resolution failures short-circuit the union subtree:
// without a variant there are no field descriptors to validate against.
func resolveUnion(u *TypeDescriptor, input map[string]any, path string) (Variant, Issues) {
	dv, ok := input[u.discriminant]
	if !ok {
		return Variant{}, Issues{Issue{
			Path:    path,
			Code:    CodeDiscriminantMissing,
			Message: i18n.T(CodeDiscriminantMissing, nil),
			Hint:    fmt.Sprintf("discriminant field %q missing", u.discriminant),
			Params:  map[string]any{"discriminant": u.discriminant},
		}}
	}
	matched := -1
	for i, v := range u.variants {
		if !scalarEqual(v.tag, dv) {
			continue
		}
		if matched >= 0 {
			// Unreachable for registered schemas; CheckUnions rejects duplicate
			// tags before registration completes.
			return Variant{}, Issues{Issue{
				Path:    path,
				Code:    CodeAmbiguousVariant,
				Message: i18n.T(CodeAmbiguousVariant, nil),
				Hint:    "schema registry bug: duplicate variant tags",
				Params:  map[string]any{"discriminant": u.discriminant, "value": dv},
			}}
		}
		matched = i
	}
	if matched < 0 {
		return Variant{}, Issues{Issue{
			Path:    path,
			Code:    CodeNoMatchingVariant,
			Message: i18n.T(CodeNoMatchingVariant, nil),
			Hint:    fmt.Sprintf("no variant matches %s=%v", u.discriminant, dv),
			Params:  map[string]any{"discriminant": u.discriminant, "value": dv},
		}}
	}
	return u.variants[matched], nil
}
