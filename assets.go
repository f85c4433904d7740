// File: cascade/assets.go
package cascade

import (
	"os"
	"path/filepath"
)

// AssetKind classifies logical asset paths for collection lookup.
type AssetKind int

const (
	AssetImage AssetKind = iota
	AssetFont
	AssetGeneratedImage
)

// String returns the kind's name for diagnostics.
func (k AssetKind) String() string {
	switch k {
	case AssetImage:
		return "image"
	case AssetFont:
		return "font"
	case AssetGeneratedImage:
		return "generated image"
	default:
		return "unknown"
	}
}

// CollectionOptions is the recognized configuration record for one asset
// collection. Zero values fall back to the conventional sub-paths.
type CollectionOptions struct {
	// Name identifies the collection in diagnostics. Defaults to RootPath.
	Name string

	// RootPath is the filesystem root assets are served from.
	RootPath string

	// HTTPPath is the URL prefix corresponding to RootPath.
	HTTPPath string

	// ImagesDir and FontsDir are sub-paths under RootPath holding each
	// asset kind. Empty means assets of that kind live at the root itself.
	ImagesDir string
	FontsDir  string

	// HTTPImagesPath and HTTPFontsPath override the synthesized URL
	// sub-path for a kind. When empty the URL mirrors the directory layout.
	HTTPImagesPath string
	HTTPFontsPath  string

	// ImagesOnly restricts the collection to image assets. Sprite load
	// paths are wrapped in image-only collections.
	ImagesOnly bool
}

// AssetCollection is one searchable root from which assets may be served.
// Construction touches no files; existence checks happen at resolution
// time, so a collection may be registered before its root exists (sprite
// output directories appear mid-build).
type AssetCollection struct {
	opts CollectionOptions
}

// NewAssetCollection creates a collection from an options record.
func NewAssetCollection(opts CollectionOptions) *AssetCollection {
	if opts.Name == "" {
		opts.Name = opts.RootPath
	}
	opts.RootPath = normalizePath(opts.RootPath)
	return &AssetCollection{opts: opts}
}

// Name returns the collection's diagnostic identifier.
func (ac *AssetCollection) Name() string {
	return ac.opts.Name
}

// serves reports whether the collection handles the asset kind at all.
func (ac *AssetCollection) serves(kind AssetKind) bool {
	return !ac.opts.ImagesOnly || kind != AssetFont
}

// subDir returns the directory under the root holding the asset kind.
func (ac *AssetCollection) subDir(kind AssetKind) string {
	if kind == AssetFont {
		return ac.opts.FontsDir
	}
	return ac.opts.ImagesDir
}

// DiskPath returns where the logical path would live under this root.
func (ac *AssetCollection) DiskPath(logical string, kind AssetKind) string {
	return filepath.Join(ac.opts.RootPath, filepath.FromSlash(ac.subDir(kind)), filepath.FromSlash(logical))
}

// Contains reports whether a file currently exists under this root for the
// logical path and kind. This is the only filesystem access the collection
// performs.
func (ac *AssetCollection) Contains(logical string, kind AssetKind) bool {
	if !ac.serves(kind) {
		return false
	}
	info, err := os.Stat(ac.DiskPath(logical, kind))
	return err == nil && !info.IsDir()
}

// URLFor synthesizes the URL for a logical path: the HTTP prefix, the
// kind-specific sub-path, then the logical path, with duplicate separators
// collapsed. It does not check existence; pair it with Contains.
func (ac *AssetCollection) URLFor(logical string, kind AssetKind) string {
	if override := ac.httpOverride(kind); override != "" {
		return joinURL(override, logical)
	}
	return joinURL(ac.opts.HTTPPath, ac.subDir(kind), logical)
}

func (ac *AssetCollection) httpOverride(kind AssetKind) string {
	if kind == AssetFont {
		return ac.opts.HTTPFontsPath
	}
	return ac.opts.HTTPImagesPath
}
