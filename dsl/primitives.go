package dsl

import (
	lametta "github.com/lametta/lametta-go"
)

// String returns the string scalar descriptor.
func String() *lametta.TypeDescriptor { return lametta.String() }

// Int returns the integer scalar descriptor. No widening: a float never
// satisfies Int and an integer never satisfies Float.
func Int() *lametta.TypeDescriptor { return lametta.Int() }

// Float returns the float scalar descriptor.
func Float() *lametta.TypeDescriptor { return lametta.Float() }

// Bool returns the boolean scalar descriptor.
func Bool() *lametta.TypeDescriptor { return lametta.Bool() }

// SequenceOf declares an ordered homogeneous sequence of elem.
func SequenceOf(elem *lametta.TypeDescriptor) *lametta.TypeDescriptor {
	return lametta.SequenceOf(elem)
}

// TupleOf declares a fixed-arity heterogeneous sequence.
func TupleOf(elems ...*lametta.TypeDescriptor) *lametta.TypeDescriptor {
	return lametta.TupleOf(elems...)
}
