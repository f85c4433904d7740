// File: cascade/decode.go
package cascade

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the effective configuration into a target struct or map.
// The target must be a non-nil pointer. Fields map through the "toml"
// struct tag with weak typing, so a "true" string fills a bool field and
// a comma-separated string fills a slice.
func (c *Configuration) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(c.Serializable()); err != nil {
		return fmt.Errorf("failed to scan configuration %q into %T: %w", c.name, target, err)
	}
	return nil
}
