package lametta

// Package lametta validates untyped configuration mappings against declared
// schemas with exact typing:
//
// - Immutable TypeDescriptor trees (scalars, sequences, tuples, objects,
//   discriminated unions) declared once and registered in a Registry
// - A recursive Validator that never coerces (a textual "1" is not an
//   integer, an integer is not a float) and aggregates every problem it
//   finds into path-qualified Issues in a single pass
// - Discriminated unions dispatched on the literal value of one field, with
//   variant consistency enforced at registration time
// - Sources for JSON/YAML/TOML documents that preserve the integer/float
//   distinction the Validator depends on
//
// Design policy:
// - Keep only public APIs in the root package; the declaration DSL lives
//   under dsl/ and message catalogs under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	backend := dsl.Union("type").
//		Variant("filesystem", dsl.Object().
//			Field("type", dsl.String()).
//			Field("root", dsl.String()).
//			MustBuild()).
//		Variant("mongodb", dsl.Object().
//			Field("type", dsl.String()).
//			Field("database", dsl.String()).
//			Field("collection", dsl.String()).
//			MustBuild()).
//		MustBuild()
//	lametta.MustRegister("backend", backend)
//
//	v, err := lametta.ParseFrom(ctx, backend, lametta.TOMLBytes(data))
