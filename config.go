// File: cascade/config.go
package cascade

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Configuration is one named configuration scope. Scopes form a singly
// linked chain through their parent: attribute lookups fall back to the
// parent, list attributes accumulate along the chain, and the chain root
// owns the shared asset resolvers.
type Configuration struct {
	name       string
	parent     *Configuration // not owned, fallback lookup only
	frameworks FrameworkRegistry
	hooks      *HookRegistry

	mutex       sync.RWMutex
	attrs       map[string]any
	watches     []Watch
	collections []*AssetCollection

	// Resolver memos, populated on the chain root only.
	urlResolver    *AssetURLResolver
	spriteResolver *AssetURLResolver
}

// Option configures a Configuration at construction.
type Option func(*Configuration)

// WithParent links the new scope under an existing one for fallback lookup.
func WithParent(parent *Configuration) Option {
	return func(c *Configuration) {
		c.parent = parent
	}
}

// WithFrameworks injects the registry consulted by Require, Load and
// Discover. Without it those operations only track their arguments.
func WithFrameworks(reg FrameworkRegistry) Option {
	return func(c *Configuration) {
		c.frameworks = reg
	}
}

// New creates a configuration scope. The name is required and immutable.
func New(name string, opts ...Option) (*Configuration, error) {
	if name == "" {
		return nil, configErrorf("a configuration must be named")
	}

	c := &Configuration{
		name:  name,
		attrs: make(map[string]any),
		hooks: NewHookRegistry(),
	}
	for _, apply := range opts {
		apply(c)
	}
	if c.parent == c {
		return nil, configErrorf("configuration %q cannot inherit from itself", name)
	}

	for _, event := range LifecycleEvents {
		c.hooks.Define(event)
	}

	return c, nil
}

// Inherit creates a child scope that falls back to c for attribute lookup.
// The child shares the parent's framework registry.
func (c *Configuration) Inherit(name string) (*Configuration, error) {
	return New(name, WithParent(c), WithFrameworks(c.frameworks))
}

// Name returns the scope's identifier.
func (c *Configuration) Name() string {
	return c.name
}

// Parent returns the scope this one inherits from, or nil at the chain root.
func (c *Configuration) Parent() *Configuration {
	return c.parent
}

// Root returns the top of the inheritance chain. The root owns the shared
// asset resolvers; children delegate to it.
func (c *Configuration) Root() *Configuration {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Hooks returns the lifecycle hook registry owned by this scope.
func (c *Configuration) Hooks() *HookRegistry {
	return c.hooks
}

// Get returns the effective value of a declared attribute. Scalars resolve
// to the nearest scope that set them, then to the declared default. List
// attributes concatenate inherited entries before local ones. The second
// return is false only for names missing from the attribute schema.
func (c *Configuration) Get(name string) (any, bool) {
	spec, ok := schema[name]
	if !ok {
		return nil, false
	}
	if spec.kind == attrList {
		return c.listValue(name, spec), true
	}
	return c.scalarValue(name, spec), true
}

func (c *Configuration) scalarValue(name string, spec attrSpec) any {
	c.mutex.RLock()
	v, set := c.attrs[name]
	c.mutex.RUnlock()
	if set {
		return v
	}
	if c.parent != nil {
		return c.parent.scalarValue(name, spec)
	}
	return spec.def
}

func (c *Configuration) listValue(name string, spec attrSpec) []any {
	var inherited []any
	if c.parent != nil {
		inherited = c.parent.listValue(name, spec)
	}

	c.mutex.RLock()
	local, _ := c.attrs[name].([]any)
	c.mutex.RUnlock()

	merged := make([]any, 0, len(inherited)+len(local))
	merged = append(merged, inherited...)
	merged = append(merged, local...)
	if spec.dedup {
		merged = dedupValues(merged)
	}
	return merged
}

// dedupValues drops repeated entries, keeping the first occurrence.
func dedupValues(values []any) []any {
	seen := make(map[any]bool, len(values))
	out := values[:0:0]
	for _, v := range values {
		if !hashable(v) {
			out = append(out, v)
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// hashable reports whether v can be a map key without panicking.
func hashable(v any) bool {
	switch v.(type) {
	case string, bool, int, int64, float64, nil:
		return true
	}
	return false
}

// IsSet reports whether the attribute was explicitly set in this scope or
// any ancestor, as opposed to falling back to the declared default.
func (c *Configuration) IsSet(name string) bool {
	c.mutex.RLock()
	_, set := c.attrs[name]
	c.mutex.RUnlock()
	if set {
		return true
	}
	if c.parent != nil {
		return c.parent.IsSet(name)
	}
	return false
}

// Set assigns an attribute locally. Scalars shadow inherited values and
// overwrite previous local ones; list attributes append (a slice value
// appends each element). Path attributes have trailing separators stripped.
// Deprecated attributes and the removed "relative" shorthand fail with a
// ConfigurationError naming the replacement.
func (c *Configuration) Set(name string, value any) error {
	spec, ok := schema[name]
	if !ok {
		return configErrorf("unknown attribute %q", name)
	}
	if spec.deprecated != "" {
		return configErrorf("%s is no longer supported, set %s instead", name, spec.deprecated)
	}
	if s, isString := value.(string); isString {
		if strings.HasPrefix(name, "http_") && s == relativeShorthand {
			return configErrorf("the %q shorthand for %s was removed, set relative_assets to true instead", relativeShorthand, name)
		}
		if spec.stripSlash {
			value = normalizePath(s)
		}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if spec.kind == attrList {
		local, _ := c.attrs[name].([]any)
		c.attrs[name] = append(local, asValues(value)...)
		return nil
	}
	c.attrs[name] = value
	return nil
}

// asValues flattens a slice argument into individual list entries.
func asValues(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []any{value}
	}
}

// Append adds entries to a list attribute in this scope.
func (c *Configuration) Append(name string, values ...any) error {
	spec, ok := schema[name]
	if !ok {
		return configErrorf("unknown attribute %q", name)
	}
	if spec.kind != attrList {
		return configErrorf("attribute %q is not list-valued", name)
	}
	return c.Set(name, values)
}

// Unset removes a local assignment, re-exposing the inherited value.
func (c *Configuration) Unset(name string) {
	c.mutex.Lock()
	delete(c.attrs, name)
	c.mutex.Unlock()
}

// SetAll bulk-assigns a configuration record. Keys missing from the
// attribute schema are silently skipped so forward-compatible records load
// cleanly; deprecated attributes still fail. Keys are applied in sorted
// order so repeated loads behave identically.
func (c *Configuration) SetAll(record map[string]any) error {
	keys := make([]string, 0, len(record))
	for key := range record {
		if _, known := schema[key]; known {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		if err := c.Set(key, record[key]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// local returns a copy of the attributes set directly on this scope.
func (c *Configuration) local() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make(map[string]any, len(c.attrs))
	for name, v := range c.attrs {
		out[name] = v
	}
	return out
}
