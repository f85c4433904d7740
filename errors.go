// File: cascade/errors.go
package cascade

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks misuse of the configuration surface: a missing
	// name, a deprecated attribute, an unrecognized cache-buster shorthand,
	// or a malformed asset-host result. Check with errors.Is.
	ErrConfiguration = errors.New("configuration error")

	// ErrConfigNotFound is returned when a configuration file does not exist.
	// It is not fatal; callers may proceed with defaults.
	ErrConfigNotFound = errors.New("configuration file not found")
)

// configErrorf wraps ErrConfiguration with a formatted detail message.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
