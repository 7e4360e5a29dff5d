package runout

import "fmt"

// ConfigError reports a parameter or input outside its domain.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("runout: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("runout: %s %s, got %v", e.Field, e.Reason, e.Value)
}
