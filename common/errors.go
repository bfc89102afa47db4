package common

import "fmt"

// ConfigError reports a value that cannot be used to construct a component or
// system. It is returned at construction time; nothing falls back to a default.
type ConfigError struct {
	Component string
	Field     string
	Reason    string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: %s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("config: %s.%s: %s", e.Component, e.Field, e.Reason)
}

// NewConfigError builds a ConfigError.
func NewConfigError(component, field, reason string) *ConfigError {
	return &ConfigError{Component: component, Field: field, Reason: reason}
}
