// File: cascade/frameworks.go
package cascade

// FrameworkRegistry performs the actual library and framework loading on
// behalf of a Configuration. It is injected at construction rather than
// reached through a global, so hosts control discovery and tests can
// observe it.
type FrameworkRegistry interface {
	// Require loads a single library by name.
	Require(library string) error

	// LoadDirectory loads one framework from a directory.
	LoadDirectory(dir string) error

	// Discover scans a directory and loads every framework found in it.
	Discover(dir string) error
}

// Require loads a library through the framework registry and records it in
// the required_libraries tracked list. With no registry configured the
// library is only recorded, for serialization and diagnostics.
func (c *Configuration) Require(library string) error {
	if c.frameworks != nil {
		if err := c.frameworks.Require(library); err != nil {
			return err
		}
	}
	return c.Append("required_libraries", library)
}

// Load loads one framework directory and records it in loaded_frameworks.
func (c *Configuration) Load(frameworkDir string) error {
	frameworkDir = normalizePath(frameworkDir)
	if c.frameworks != nil {
		if err := c.frameworks.LoadDirectory(frameworkDir); err != nil {
			return err
		}
	}
	return c.Append("loaded_frameworks", frameworkDir)
}

// Discover scans a directory of frameworks and records it in the
// framework_path tracked list. framework_path dedups on append, so
// discovering the same directory twice records it once.
func (c *Configuration) Discover(frameworksDir string) error {
	frameworksDir = normalizePath(frameworksDir)
	if c.frameworks != nil {
		if err := c.frameworks.Discover(frameworksDir); err != nil {
			return err
		}
	}
	return c.Append("framework_path", frameworksDir)
}
