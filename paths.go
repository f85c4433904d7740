// File: cascade/paths.go
package cascade

// Computed project locations. Each derives from the explicit override
// attribute when set, falling back to the conventional composition of
// http_path / project_path with the matching *_dir attribute.

// HTTPImagesPath returns the URL prefix images are served from.
func (c *Configuration) HTTPImagesPath() string {
	return c.httpPathFor("http_images_path", "images_dir")
}

// HTTPGeneratedImagesPath returns the URL prefix for generated sprite
// images. Falls back to the regular images prefix composition.
func (c *Configuration) HTTPGeneratedImagesPath() string {
	return c.httpPathFor("http_generated_images_path", "generated_images_dir")
}

// HTTPFontsPath returns the URL prefix fonts are served from.
func (c *Configuration) HTTPFontsPath() string {
	return c.httpPathFor("http_fonts_path", "fonts_dir")
}

// HTTPStylesheetsPath returns the URL prefix compiled stylesheets are
// served from.
func (c *Configuration) HTTPStylesheetsPath() string {
	return c.httpPathFor("http_stylesheets_path", "css_dir")
}

func (c *Configuration) httpPathFor(override, dirAttr string) string {
	if c.IsSet(override) {
		if v, err := c.GetString(override); err == nil && v != "" {
			return v
		}
	}
	httpPath, _ := c.GetString("http_path")
	dir, _ := c.GetString(dirAttr)
	return joinURL(httpPath, dir)
}

// ProjectCollection wraps the project's own directories as an asset
// collection: project_path as the root, http_path as the URL prefix, and
// the images/fonts sub-directories from the attribute table. It returns
// nil when project_path is unset.
func (c *Configuration) ProjectCollection() *AssetCollection {
	if !c.IsSet("project_path") {
		return nil
	}
	projectPath, _ := c.GetString("project_path")
	if projectPath == "" {
		return nil
	}
	httpPath, _ := c.GetString("http_path")
	imagesDir, _ := c.GetString("images_dir")
	fontsDir, _ := c.GetString("fonts_dir")

	opts := CollectionOptions{
		Name:      c.name,
		RootPath:  projectPath,
		HTTPPath:  httpPath,
		ImagesDir: imagesDir,
		FontsDir:  fontsDir,
	}
	if c.IsSet("http_images_path") {
		opts.HTTPImagesPath, _ = c.GetString("http_images_path")
	}
	if c.IsSet("http_fonts_path") {
		opts.HTTPFontsPath, _ = c.GetString("http_fonts_path")
	}
	return NewAssetCollection(opts)
}
