package config

import (
	"fmt"
	"strings"
)

// ValidationError reports a config value outside its allowed set.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s: %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}
