// File: cascade/schema.go
package cascade

// attrKind distinguishes attributes that hold a single value from attributes
// that accumulate entries across the inheritance chain.
type attrKind int

const (
	attrScalar attrKind = iota
	attrList
)

// attrSpec describes one entry of the fixed attribute schema.
type attrSpec struct {
	kind       attrKind
	dedup      bool   // list attributes: drop duplicate entries on read
	stripSlash bool   // strip trailing path separators on write
	deprecated string // non-empty: setting fails, pointing at this replacement
	def        any    // declared default, nil when unset
}

// schema is the complete attribute table. It is fixed at compile time;
// bulk setters silently skip keys that are not listed here.
var schema = map[string]attrSpec{
	// Project layout
	"project_path":         {kind: attrScalar, stripSlash: true},
	"css_dir":              {kind: attrScalar, stripSlash: true, def: "stylesheets"},
	"sass_dir":             {kind: attrScalar, stripSlash: true, def: "sass"},
	"images_dir":           {kind: attrScalar, stripSlash: true, def: "images"},
	"generated_images_dir": {kind: attrScalar, stripSlash: true, def: "images"},
	"fonts_dir":            {kind: attrScalar, stripSlash: true, def: "fonts"},
	"javascripts_dir":      {kind: attrScalar, stripSlash: true, def: "javascripts"},
	"cache_dir":            {kind: attrScalar, stripSlash: true, def: ".sass-cache"},

	// HTTP layout
	"http_path":                  {kind: attrScalar, def: "/"},
	"http_stylesheets_path":      {kind: attrScalar},
	"http_images_path":           {kind: attrScalar},
	"http_generated_images_path": {kind: attrScalar},
	"http_fonts_path":            {kind: attrScalar},
	"http_javascripts_path":      {kind: attrScalar},

	// Removed *_dir variants of the HTTP attributes. Setting them reports
	// the replacement instead of silently accepting the old value.
	"http_images_dir":      {kind: attrScalar, deprecated: "http_images_path"},
	"http_stylesheets_dir": {kind: attrScalar, deprecated: "http_stylesheets_path"},
	"http_fonts_dir":       {kind: attrScalar, deprecated: "http_fonts_path"},
	"http_javascripts_dir": {kind: attrScalar, deprecated: "http_javascripts_path"},

	// Output behavior
	"output_style":     {kind: attrScalar, def: "nested"},
	"environment":      {kind: attrScalar, def: "development"},
	"line_comments":    {kind: attrScalar, def: false},
	"relative_assets":  {kind: attrScalar, def: false},
	"cache":            {kind: attrScalar, def: true},
	"preferred_syntax": {kind: attrScalar, def: "scss"},

	// Asset URL strategies. Values are HostFunc / CacheBusterFunc callables,
	// or the "none" shorthand for the cache buster.
	"asset_host":         {kind: attrScalar},
	"asset_cache_buster": {kind: attrScalar},

	// Tracked lists, accumulated across the chain.
	"required_libraries":      {kind: attrList},
	"loaded_frameworks":       {kind: attrList},
	"framework_path":          {kind: attrList, dedup: true},
	"additional_import_paths": {kind: attrList, dedup: true},
	"sprite_load_path":        {kind: attrList},
}

// relativeShorthand is the removed magic value once accepted by the http_*
// path attributes to request document-relative URLs.
const relativeShorthand = "relative"

// AttributeNames returns every name in the attribute schema. Useful for
// serialization and for mapping attributes to environment variables.
func AttributeNames() []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	return names
}
