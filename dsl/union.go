package dsl

import (
	lametta "github.com/lametta/lametta-go"
)

// UnionBuilder accumulates variants of a discriminated union. Unlike
// registration-time checking, the builder runs the full consistency checks at
// Build so a bad union fails where it is declared.
type UnionBuilder struct {
	discriminant string
	variants     []lametta.Variant
}

// Union starts a discriminated union dispatching on the literal value of
// field.
func Union(field string) *UnionBuilder {
	return &UnionBuilder{discriminant: field}
}

// Variant adds an alternative selected when the discriminant equals tag
// exactly. The variant object must itself declare the discriminant field with
// a scalar type matching the tag.
func (u *UnionBuilder) Variant(tag any, obj *lametta.TypeDescriptor) *UnionBuilder {
	u.variants = append(u.variants, lametta.NewVariant(tag, obj))
	return u
}

// Build validates the union and returns its descriptor.
func (u *UnionBuilder) Build() (*lametta.TypeDescriptor, error) {
	td, err := lametta.UnionOf(u.discriminant, u.variants...)
	if err != nil {
		return nil, err
	}
	if err := lametta.CheckUnions(td); err != nil {
		return nil, err
	}
	return td, nil
}

// MustBuild is like Build but panics on error.
func (u *UnionBuilder) MustBuild() *lametta.TypeDescriptor {
	td, err := u.Build()
	if err != nil {
		panic(err)
	}
	return td
}
