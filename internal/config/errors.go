package config

import "fmt"

// Error is the ConfigError spec.md §6 calls for: "invalid values surface a
// ConfigError with the offending key and value."
type Error struct {
	Key    string
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: invalid value %q for key %q: %s", e.Value, e.Key, e.Reason)
}
