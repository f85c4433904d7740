// File: cascade/builder.go
package cascade

import (
	"errors"
	"fmt"
)

// ValidatorFunc validates a fully assembled Configuration. It runs at the
// end of the build and should return an error describing what is wrong.
type ValidatorFunc func(c *Configuration) error

// Builder assembles a Configuration from layered sources. Sources apply
// lowest precedence first: declared defaults, host environment, the user's
// configuration file, then invocation-time attribute overrides.
type Builder struct {
	name       string
	parent     *Configuration
	frameworks FrameworkRegistry
	attrs      map[string]any
	file       string
	envPrefix  string
	validators []ValidatorFunc
}

// NewBuilder starts building a configuration scope with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// WithParent links the scope under an existing configuration.
func (b *Builder) WithParent(parent *Configuration) *Builder {
	b.parent = parent
	return b
}

// WithFrameworks injects the framework registry.
func (b *Builder) WithFrameworks(reg FrameworkRegistry) *Builder {
	b.frameworks = reg
	return b
}

// WithFile sets the configuration file to load.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFileDiscovery locates the configuration file with the given options
// instead of an explicit path. Discovery failure simply leaves no file
// configured.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path, found := DiscoverFile(opts); found {
		b.file = path
	}
	return b
}

// WithEnvPrefix enables host-environment defaults with the given variable
// prefix, e.g. "CASCADE_".
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	return b
}

// WithAttributes sets invocation-time overrides applied after all other
// sources. Unknown keys are ignored, as in SetAll.
func (b *Builder) WithAttributes(attrs map[string]any) *Builder {
	if b.attrs == nil {
		b.attrs = make(map[string]any, len(attrs))
	}
	for k, v := range attrs {
		b.attrs[k] = v
	}
	return b
}

// WithValidator adds a validation function run at the end of the build.
// Multiple validators execute in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles the Configuration. A missing configuration file is
// reported as ErrConfigNotFound alongside the usable Configuration; every
// other failure is fatal to the build.
func (b *Builder) Build() (*Configuration, error) {
	var opts []Option
	if b.parent != nil {
		opts = append(opts, WithParent(b.parent))
	}
	if b.frameworks != nil {
		opts = append(opts, WithFrameworks(b.frameworks))
	}

	cfg, err := New(b.name, opts...)
	if err != nil {
		return nil, err
	}

	if b.envPrefix != "" {
		if err := cfg.LoadEnv(b.envPrefix); err != nil {
			return nil, fmt.Errorf("failed to load environment defaults: %w", err)
		}
	}

	var notFound error
	if b.file != "" {
		if err := cfg.LoadFile(b.file); err != nil {
			if !errors.Is(err, ErrConfigNotFound) {
				return nil, err
			}
			notFound = err
		}
	}

	if err := cfg.SetAll(b.attrs); err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrConfigNotFound or nil
	return cfg, notFound
}

// MustBuild is like Build but panics on error. ErrConfigNotFound is not
// fatal; the configuration proceeds on defaults and environment values.
func (b *Builder) MustBuild() *Configuration {
	cfg, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("cascade: configuration build failed: %v", err))
	}
	return cfg
}
