// File: cascade/convenience.go
package cascade

import (
	"errors"
	"fmt"
)

// Quick assembles a configuration scope with the standard layering in a
// single call: defaults, then PREFIX_* environment variables, then the
// configuration file, then the given overrides. A missing file is returned
// as ErrConfigNotFound together with a usable Configuration.
func Quick(name, configFile, envPrefix string, overrides map[string]any) (*Configuration, error) {
	return NewBuilder(name).
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		WithAttributes(overrides).
		Build()
}

// MustQuick is like Quick but panics on fatal errors.
func MustQuick(name, configFile, envPrefix string, overrides map[string]any) *Configuration {
	cfg, err := Quick(name, configFile, envPrefix, overrides)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("cascade: configuration initialization failed: %v", err))
	}
	return cfg
}
