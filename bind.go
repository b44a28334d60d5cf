package lametta

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Bind projects a validated Value onto a caller struct via mapstructure.
// Fields map by `lametta:"name"` tags, falling back to case-insensitive
// field-name matching. Bind performs no validation of its own: the Value
// already carries exactly the declared shape, so a Bind failure means the
// target struct disagrees with the schema, not with the input.
func Bind(v Value, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "lametta",
	})
	if err != nil {
		return fmt.Errorf("lametta: bind: %w", err)
	}
	if err := dec.Decode(v.Interface()); err != nil {
		return fmt.Errorf("lametta: bind: %w", err)
	}
	return nil
}
