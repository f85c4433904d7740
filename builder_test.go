// File: cascade/builder_test.go
package cascade

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderLayering tests source precedence: defaults < env < file <
// invocation overrides
func TestBuilderLayering(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cascade.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
output_style = "compact"
environment = "staging"
css_dir = "styles"
`), 0644))

	t.Setenv("CASCADE_OUTPUT_STYLE", "expanded")
	t.Setenv("CASCADE_ENVIRONMENT", "development")
	t.Setenv("CASCADE_SASS_DIR", "scss")

	cfg, err := NewBuilder("layered").
		WithEnvPrefix("CASCADE_").
		WithFile(file).
		WithAttributes(map[string]any{"output_style": "compressed"}).
		Build()
	require.NoError(t, err)

	// Overrides beat the file, the file beats the environment, the
	// environment beats declared defaults.
	val, _ := cfg.Get("output_style")
	assert.Equal(t, "compressed", val)
	val, _ = cfg.Get("environment")
	assert.Equal(t, "staging", val)
	val, _ = cfg.Get("sass_dir")
	assert.Equal(t, "scss", val)
	val, _ = cfg.Get("images_dir")
	assert.Equal(t, "images", val)
}

// TestBuilderMissingFile tests the non-fatal not-found contract
func TestBuilderMissingFile(t *testing.T) {
	cfg, err := NewBuilder("nofile").
		WithFile(filepath.Join(t.TempDir(), "absent.toml")).
		Build()

	assert.ErrorIs(t, err, ErrConfigNotFound)
	require.NotNil(t, cfg, "the configuration is usable on defaults")
	val, _ := cfg.Get("output_style")
	assert.Equal(t, "nested", val)
}

// TestBuilderValidation tests validator execution order and failure
func TestBuilderValidation(t *testing.T) {
	t.Run("ValidatorsRunInOrder", func(t *testing.T) {
		var order []string
		_, err := NewBuilder("validated").
			WithValidator(func(c *Configuration) error {
				order = append(order, "first")
				return nil
			}).
			WithValidator(func(c *Configuration) error {
				order = append(order, "second")
				return nil
			}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("ValidationFailureIsFatal", func(t *testing.T) {
		cfg, err := NewBuilder("validated").
			WithAttributes(map[string]any{"output_style": "bogus"}).
			WithValidator(func(c *Configuration) error {
				style, _ := c.GetString("output_style")
				if style == "bogus" {
					return configErrorf("unsupported output style %q", style)
				}
				return nil
			}).
			Build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("MustBuildPanicsOnFailure", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder("").MustBuild()
		})
	})

	t.Run("MustBuildToleratesMissingFile", func(t *testing.T) {
		cfg := NewBuilder("nofile").
			WithFile(filepath.Join(t.TempDir(), "absent.toml")).
			MustBuild()
		assert.NotNil(t, cfg)
	})
}

// TestBuilderChaining tests parent linking and discovery through the builder
func TestBuilderChaining(t *testing.T) {
	root, err := New("root")
	require.NoError(t, err)
	require.NoError(t, root.Set("output_style", "compressed"))

	child, err := NewBuilder("child").WithParent(root).Build()
	require.NoError(t, err)

	assert.Same(t, root, child.Root())
	val, _ := child.Get("output_style")
	assert.Equal(t, "compressed", val)
}

// TestBuilderFileDiscovery tests the discovery hookup
func TestBuilderFileDiscovery(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "cascade.toml"), []byte(`output_style = "compact"`), 0644))

	cfg, err := NewBuilder("discovered").
		WithFileDiscovery(FileDiscoveryOptions{
			Name:       "cascade",
			Extensions: []string{".toml"},
			Paths:      []string{dir},
		}).
		Build()
	require.NoError(t, err)

	val, _ := cfg.Get("output_style")
	assert.Equal(t, "compact", val)
}

// TestQuick tests the single-call initializer
func TestQuick(t *testing.T) {
	cfg, err := Quick("quick", "", "", map[string]any{"environment": "production"})
	require.NoError(t, err)
	val, _ := cfg.Get("environment")
	assert.Equal(t, "production", val)

	assert.NotPanics(t, func() {
		MustQuick("quick", filepath.Join(t.TempDir(), "absent.toml"), "", nil)
	})
}
