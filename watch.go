// File: cascade/watch.go
package cascade

import "path/filepath"

// WatchCallback is invoked by the host application's file watcher when a
// path matching the registered glob changes. The mechanics of watching
// live outside this package; only registration does.
type WatchCallback func(path string)

// Watch pairs a file-glob pattern with a callback.
type Watch struct {
	Glob     string
	Callback WatchCallback
}

// Watch registers a glob pattern and callback on this scope. Patterns use
// path/filepath.Match syntax and are validated up front.
func (c *Configuration) Watch(glob string, fn WatchCallback) error {
	if _, err := filepath.Match(glob, ""); err != nil {
		return configErrorf("invalid watch pattern %q: %v", glob, err)
	}

	c.mutex.Lock()
	c.watches = append(c.watches, Watch{Glob: glob, Callback: fn})
	c.mutex.Unlock()
	return nil
}

// Watches returns this scope's registered watches in registration order.
// A scope with no local watches returns its parent's, read-through rather
// than merged: declaring any local watch shadows the inherited set.
func (c *Configuration) Watches() []Watch {
	c.mutex.RLock()
	local := c.watches
	c.mutex.RUnlock()

	if len(local) > 0 {
		out := make([]Watch, len(local))
		copy(out, local)
		return out
	}
	if c.parent != nil {
		return c.parent.Watches()
	}
	return nil
}
