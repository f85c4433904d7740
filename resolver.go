// File: cascade/resolver.go
package cascade

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// HostFunc selects the asset host for a resolved root-relative URL. It
// must return a fully qualified URL carrying a scheme.
type HostFunc func(url string) string

// CacheBusterResult carries the replacement components returned by a cache
// buster. An empty Path leaves the URL's path untouched; Query is a bare
// query string appended to whatever the URL already carries.
type CacheBusterResult struct {
	Path  string
	Query string
}

// CacheBusterFunc computes a cache-busting token for a resolved URL. The
// file handle points at the on-disk asset and may be nil: generated
// sprites are resolved before they are rendered. Returning nil leaves the
// URL unchanged.
type CacheBusterFunc func(url string, file *os.File) (*CacheBusterResult, error)

// CacheBusterNone is the recognized asset_cache_buster shorthand that
// disables cache busting entirely.
const CacheBusterNone = "none"

// MTimeCacheBuster appends the asset's modification time as the query
// string. Assets without a backing file pass through unchanged. This is
// the buster used when asset_cache_buster is unset.
func MTimeCacheBuster(_ string, file *os.File) (*CacheBusterResult, error) {
	if file == nil {
		return nil, nil
	}
	info, err := file.Stat()
	if err != nil {
		return nil, nil
	}
	return &CacheBusterResult{Query: fmt.Sprintf("%d", info.ModTime().Unix())}, nil
}

// AssetURLResolver maps logical asset paths to URLs by consulting an
// ordered list of collections. One resolver exists per chain root, built
// lazily and reused; treat it as immutable once first resolved.
type AssetURLResolver struct {
	cfg         *Configuration
	collections []*AssetCollection
}

// Collections returns the resolver's search order.
func (r *AssetURLResolver) Collections() []*AssetCollection {
	return r.collections
}

// Resolve maps a logical path to a URL. The first collection containing
// the path wins, then the configured host strategy and cache buster apply
// in that order. When no collection matches, the path passes through
// as-is with found=false and a warning is logged; the caller decides how
// to treat it. Errors report strategy misconfiguration, never a miss.
func (r *AssetURLResolver) Resolve(logical string, kind AssetKind) (resolved string, found bool, err error) {
	path, suffix := splitQuery(logical)

	var base, diskPath string
	for _, ac := range r.collections {
		if ac.Contains(path, kind) {
			base = ac.URLFor(path, kind)
			diskPath = ac.DiskPath(path, kind)
			found = true
			break
		}
	}
	if !found {
		slog.Warn("no asset collection contains path, passing through",
			"path", logical, "kind", kind.String(), "configuration", r.cfg.Name())
		base = path
	}
	resolved = base + suffix

	resolved, err = r.applyHost(resolved)
	if err != nil {
		return "", found, err
	}
	resolved, err = r.applyCacheBuster(resolved, diskPath)
	if err != nil {
		return "", found, err
	}
	return resolved, found, nil
}

// applyHost runs the asset_host strategy, validating that its result is
// scheme-qualified.
func (r *AssetURLResolver) applyHost(u string) (string, error) {
	fn, err := r.cfg.assetHost()
	if err != nil || fn == nil {
		return u, err
	}

	hosted := fn(u)
	parsed, parseErr := url.Parse(hosted)
	if parseErr != nil || parsed.Scheme == "" {
		return "", configErrorf("asset host returned %q for %q, expected a fully qualified URL with a scheme", hosted, u)
	}
	return hosted, nil
}

// applyCacheBuster runs the asset_cache_buster strategy. diskPath may name
// a file that does not exist yet; the buster then receives a nil handle.
func (r *AssetURLResolver) applyCacheBuster(u, diskPath string) (string, error) {
	fn, err := r.cfg.assetCacheBuster()
	if err != nil || fn == nil {
		return u, err
	}

	var file *os.File
	if diskPath != "" {
		if f, openErr := os.Open(diskPath); openErr == nil {
			file = f
			defer file.Close()
		}
	}

	result, err := fn(u, file)
	if err != nil {
		return "", fmt.Errorf("cache buster failed for %q: %w", u, err)
	}
	if result == nil {
		return u, nil
	}

	parsed, parseErr := url.Parse(u)
	if parseErr != nil {
		return appendQuery(u, result.Query), nil
	}
	if result.Path != "" {
		parsed.Path = result.Path
	}
	if result.Query != "" {
		q := strings.TrimPrefix(result.Query, "?")
		if parsed.RawQuery != "" {
			parsed.RawQuery += "&" + q
		} else {
			parsed.RawQuery = q
		}
	}
	return parsed.String(), nil
}

// assetHost extracts the host strategy from the attribute table.
func (c *Configuration) assetHost() (HostFunc, error) {
	val, _ := c.Get("asset_host")
	switch v := val.(type) {
	case nil:
		return nil, nil
	case HostFunc:
		return v, nil
	case func(string) string:
		return v, nil
	default:
		return nil, configErrorf("asset_host must be a HostFunc, got %T", val)
	}
}

// assetCacheBuster extracts the cache-buster strategy. Unset defaults to
// MTimeCacheBuster; the "none" shorthand disables busting; any other
// shorthand is a configuration error.
func (c *Configuration) assetCacheBuster() (CacheBusterFunc, error) {
	val, _ := c.Get("asset_cache_buster")
	switch v := val.(type) {
	case nil:
		return MTimeCacheBuster, nil
	case string:
		if v == CacheBusterNone {
			return nil, nil
		}
		return nil, configErrorf("unrecognized cache buster shorthand %q, expected %q or a CacheBusterFunc", v, CacheBusterNone)
	case CacheBusterFunc:
		return v, nil
	case func(string, *os.File) (*CacheBusterResult, error):
		return v, nil
	default:
		return nil, configErrorf("asset_cache_buster must be a CacheBusterFunc, got %T", val)
	}
}

// AddCollection registers a searchable asset root on the chain root and
// invalidates the memoized resolvers so the next resolution sees it.
// Collections must be added before resolution begins.
func (c *Configuration) AddCollection(opts CollectionOptions) *AssetCollection {
	root := c.Root()
	ac := NewAssetCollection(opts)

	root.mutex.Lock()
	root.collections = append(root.collections, ac)
	root.urlResolver = nil
	root.spriteResolver = nil
	root.mutex.Unlock()

	return ac
}

// Collections returns the explicitly registered collections on the chain
// root, in registration order.
func (c *Configuration) Collections() []*AssetCollection {
	root := c.Root()
	root.mutex.RLock()
	defer root.mutex.RUnlock()

	out := make([]*AssetCollection, len(root.collections))
	copy(out, root.collections)
	return out
}

// URLResolver returns the shared asset URL resolver. Only the chain root
// constructs and owns it; children delegate through Root().
func (c *Configuration) URLResolver() *AssetURLResolver {
	root := c.Root()

	root.mutex.RLock()
	r := root.urlResolver
	root.mutex.RUnlock()
	if r != nil {
		return r
	}

	built := root.buildResolver(false)
	root.mutex.Lock()
	if root.urlResolver == nil {
		root.urlResolver = built
	}
	r = root.urlResolver
	root.mutex.Unlock()
	return r
}

// SpriteResolver returns the resolver variant used for sprite-sheet source
// images. It searches the explicitly registered collections first, then
// each sprite_load_path directory wrapped as an image-only collection.
// Children delegate to the root's sprite resolver.
func (c *Configuration) SpriteResolver() *AssetURLResolver {
	root := c.Root()

	root.mutex.RLock()
	r := root.spriteResolver
	root.mutex.RUnlock()
	if r != nil {
		return r
	}

	built := root.buildResolver(true)
	root.mutex.Lock()
	if root.spriteResolver == nil {
		root.spriteResolver = built
	}
	r = root.spriteResolver
	root.mutex.Unlock()
	return r
}

// buildResolver assembles the collection search order: the project's own
// collection when configured, then explicit registrations, then (for the
// sprite variant) the sprite load paths.
func (c *Configuration) buildResolver(sprites bool) *AssetURLResolver {
	var collections []*AssetCollection
	if project := c.ProjectCollection(); project != nil {
		collections = append(collections, project)
	}
	collections = append(collections, c.Collections()...)

	if sprites {
		loadPaths, _ := c.GetStrings("sprite_load_path")
		httpPath := c.HTTPGeneratedImagesPath()
		for _, dir := range loadPaths {
			collections = append(collections, NewAssetCollection(CollectionOptions{
				Name:       dir,
				RootPath:   dir,
				HTTPPath:   httpPath,
				ImagesOnly: true,
			}))
		}
	}

	return &AssetURLResolver{cfg: c, collections: collections}
}
