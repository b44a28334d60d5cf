package dsl

import (
	"fmt"

	lametta "github.com/lametta/lametta-go"
)

// ObjectBuilder accumulates field declarations for a nested-object
// descriptor. Field order is irrelevant to validation; traversal is always
// sorted by field name.
type ObjectBuilder struct {
	fields []lametta.Field
	seen   map[string]struct{}
	err    error
}

// fieldStep allows per-field chaining (Default) before returning to the
// builder.
type fieldStep struct {
	b *ObjectBuilder
}

// Object creates a new object builder. Objects are strict: input keys not
// declared here are reported as unexpected_field.
func Object() *ObjectBuilder {
	return &ObjectBuilder{seen: map[string]struct{}{}}
}

// Field declares a required field of the given type.
func (b *ObjectBuilder) Field(name string, typ *lametta.TypeDescriptor) *fieldStep {
	if b.err == nil {
		if _, dup := b.seen[name]; dup {
			b.err = fmt.Errorf("dsl: duplicate object field %q", name)
		} else {
			b.seen[name] = struct{}{}
			b.fields = append(b.fields, lametta.NewField(name, typ))
		}
	}
	return &fieldStep{b: b}
}

// Default sets a default for the field just declared. The default is merged
// into the input by ApplyDefaults/ParseFrom when the field is absent and is
// then validated like written input.
func (f *fieldStep) Default(v any) *ObjectBuilder {
	b := f.b
	if b.err == nil && len(b.fields) > 0 {
		last := b.fields[len(b.fields)-1]
		b.fields[len(b.fields)-1] = lametta.NewFieldWithDefault(last.Name(), last.Type(), v)
	}
	return b
}

// Field continues declaring on the builder.
func (f *fieldStep) Field(name string, typ *lametta.TypeDescriptor) *fieldStep {
	return f.b.Field(name, typ)
}

// Build finalizes the step's builder.
func (f *fieldStep) Build() (*lametta.TypeDescriptor, error) { return f.b.Build() }

// MustBuild is like Build but panics on error.
func (f *fieldStep) MustBuild() *lametta.TypeDescriptor { return f.b.MustBuild() }

// Build validates the declaration and returns the descriptor.
func (b *ObjectBuilder) Build() (*lametta.TypeDescriptor, error) {
	if b.err != nil {
		return nil, b.err
	}
	return lametta.ObjectOf(b.fields...)
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() *lametta.TypeDescriptor {
	td, err := b.Build()
	if err != nil {
		panic(err)
	}
	return td
}
