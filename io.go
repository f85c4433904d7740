// File: cascade/io.go
package cascade

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// LoadFile reads a configuration record from a TOML or YAML file (chosen
// by extension, TOML by default) and bulk-applies it to this scope. Keys
// missing from the attribute schema are ignored; deprecated attributes
// still fail. A missing file returns ErrConfigNotFound, which is not
// fatal: callers may proceed on defaults.
func (c *Configuration) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	record := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	}

	return c.SetAll(record)
}

// LoadEnv applies host-environment defaults: every schema attribute is
// checked for a PREFIX_ATTRIBUTE_NAME environment variable and matches are
// applied through the normal setters. List attributes split on the OS
// path-list separator.
func (c *Configuration) LoadEnv(prefix string) error {
	names := AttributeNames()
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		envVar := prefix + strings.ToUpper(name)
		raw, exists := os.LookupEnv(envVar)
		if !exists {
			continue
		}

		if schema[name].kind == attrList {
			entries := strings.Split(raw, string(os.PathListSeparator))
			if err := c.Set(name, entries); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := c.Set(name, parseValue(raw)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Serializable returns the effective attribute table as a plain record:
// every schema attribute that resolves to a non-nil, non-callable value,
// including the tracked lists accumulated along the chain. The result is
// safe to hand to any encoder.
func (c *Configuration) Serializable() map[string]any {
	out := make(map[string]any)
	for name, spec := range schema {
		if spec.deprecated != "" {
			continue
		}
		if spec.kind == attrList {
			values := c.listValue(name, spec)
			if len(values) > 0 {
				out[name] = values
			}
			continue
		}
		val := c.scalarValue(name, spec)
		if val == nil || isCallable(val) {
			continue
		}
		out[name] = val
	}
	return out
}

// isCallable filters strategy functions out of serialized records.
func isCallable(v any) bool {
	switch v.(type) {
	case HostFunc, func(string) string, CacheBusterFunc, func(string, *os.File) (*CacheBusterResult, error):
		return true
	}
	return false
}

// SaveFile writes the effective configuration to a TOML or YAML file
// (chosen by extension) using an atomic temp-file-and-rename write.
func (c *Configuration) SaveFile(path string) error {
	record := c.Serializable()

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(record)
	default:
		data, err = tomlMarshal(record)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file in '%s': %w", dir, err)
	}
	tempFilePath := tempFile.Name()
	defer os.Remove(tempFilePath) // no-op after successful rename

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tempFilePath, err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tempFilePath, err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tempFilePath, err)
	}

	if err := os.Chmod(tempFilePath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on temp config file '%s': %w", tempFilePath, err)
	}
	if err := os.Rename(tempFilePath, path); err != nil {
		return fmt.Errorf("failed to rename temp file '%s' to '%s': %w", tempFilePath, path, err)
	}

	return nil
}

// tomlMarshal encodes a record with the BurntSushi encoder.
func tomlMarshal(record map[string]any) ([]byte, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(record); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
