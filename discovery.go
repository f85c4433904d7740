// File: cascade/discovery.go
package cascade

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic configuration file discovery.
type FileDiscoveryOptions struct {
	// Name is the base file name without extension.
	Name string

	// Extensions to try, in order.
	Extensions []string

	// Paths are extra directories searched before the defaults.
	Paths []string

	// EnvVar names an environment variable holding an explicit path.
	EnvVar string

	// UseXDG searches the XDG config directory.
	UseXDG bool

	// UseCurrentDir searches the working directory.
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns the conventional search for an app:
// $APPNAME_CONFIG, then ./appname.toml|.yaml|.yml, then the XDG config
// directory.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".yml"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverFile locates a configuration file. The environment variable
// wins when set and existing, then each search directory is tried with
// each extension in order.
func DiscoverFile(opts FileDiscoveryOptions) (string, bool) {
	if opts.EnvVar != "" {
		if path, set := os.LookupEnv(opts.EnvVar); set && fileExists(path) {
			return path, true
		}
	}

	var dirs []string
	dirs = append(dirs, opts.Paths...)
	if opts.UseCurrentDir {
		dirs = append(dirs, ".")
	}
	if opts.UseXDG {
		if configDir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, filepath.Join(configDir, opts.Name))
		}
	}

	for _, dir := range dirs {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if fileExists(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
