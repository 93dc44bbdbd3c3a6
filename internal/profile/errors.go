package profile

import "fmt"

// ConfigError means the rule table and the domain/category enumerations
// disagree. It indicates a deployment mismatch: callers should abort startup
// rather than serve requests.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "profile config: " + e.Msg }

// ValidationError is malformed input reaching the engine boundary. The input
// is discarded; nothing derived from it is persisted.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Msg
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
