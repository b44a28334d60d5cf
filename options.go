package lametta

import "context"

// ParseOpt bundles per-call options. Validation itself is option-free by
// default: every problem in the input is collected in one pass.
type ParseOpt struct {
	// FailFast stops at the first issue instead of aggregating the full
	// report.
	FailFast bool
	// SkipDefaults makes ParseFrom validate the decoded document exactly as
	// written, without merging declared field defaults first.
	SkipDefaults bool
}

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast validation
// behavior. Set by Validate/ParseFrom from ParseOpt and consumed during the
// recursive walk.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current validation should stop on the first
// issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}
