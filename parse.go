package lametta

import "context"

// ParseFrom is the primary document entry point. It decodes the Source into
// the generic nested form, merges declared defaults into the result (unless
// SkipDefaults is set), and delegates to Validate.
func ParseFrom(ctx context.Context, td *TypeDescriptor, src Source, opts ...ParseOpt) (Value, error) {
	if src == nil {
		return Value{}, Issues{Issue{Code: CodeParseError, Message: "nil source"}}
	}
	v, err := src.Decode()
	if err != nil {
		return Value{}, Issues{Issue{
			Code:    CodeParseError,
			Message: err.Error(),
			Hint:    src.Format() + " document could not be decoded",
			Cause:   err,
		}}
	}
	opt := lastOpt(opts)
	if !opt.SkipDefaults {
		v = ApplyDefaults(td, v)
	}
	return Validate(ctx, td, v, opt)
}

// ParseRegistered is ParseFrom against a schema registered in the default
// registry.
func ParseRegistered(ctx context.Context, id string, src Source, opts ...ParseOpt) (Value, error) {
	td, ok := Resolve(id)
	if !ok {
		return Value{}, Issues{Issue{Code: CodeParseError, Message: "unknown schema \"" + id + "\""}}
	}
	return ParseFrom(ctx, td, src, opts...)
}
