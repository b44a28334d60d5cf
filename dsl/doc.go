// Package dsl is the declaration surface for lametta schemas. It produces
// plain lametta.TypeDescriptor trees; the Validator neither knows nor cares
// how a descriptor was authored.
//
//	import d "github.com/lametta/lametta-go/dsl"
//
//	server := d.Object().
//		Field("host", d.String()).
//		Field("port", d.Int()).Default(8080).
//		Field("tags", d.SequenceOf(d.String())).
//		MustBuild()
//
// Builders validate eagerly: duplicate fields, non-object union variants and
// inconsistent discriminants fail at Build rather than at registration.
package dsl
