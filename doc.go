// File: cascade/doc.go

// Package cascade provides hierarchical configuration and asset URL
// resolution for stylesheet build tooling.
//
// Configuration scopes form a parent-linked chain: scalar attributes
// resolve to the nearest scope that set them, list attributes accumulate
// along the chain, and the chain root owns the shared asset resolvers.
// Attribute names come from a fixed schema, so bulk setters skip unknown
// keys and forward-compatible records load cleanly.
//
// Features:
//   - Layered sources with fixed precedence: defaults, environment
//     variables, configuration file (TOML or YAML), invocation overrides
//   - Scalar override vs. list append merge semantics per attribute
//   - Named lifecycle hooks with ordered, synchronous dispatch
//   - Asset URL resolution across prioritized collections, with pluggable
//     host selection and cache-busting strategies
//   - Watch registration with read-through inheritance
//
// Quick Start:
//
//	cfg, err := cascade.NewBuilder("site").
//	    WithEnvPrefix("CASCADE_").
//	    WithFile("cascade.toml").
//	    WithAttributes(map[string]any{"output_style": "compressed"}).
//	    Build()
//	if err != nil && !errors.Is(err, cascade.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//
//	cfg.AddCollection(cascade.CollectionOptions{
//	    RootPath: "/srv/site/assets",
//	    HTTPPath: "/assets",
//	})
//	url, found, err := cfg.URLResolver().Resolve("icons/close.png", cascade.AssetImage)
//
// Thread Safety:
// Attribute access is guarded by a read-write mutex per scope. Resolvers
// are built lazily on the chain root and must be treated as immutable once
// first resolved; register collections before resolution begins.
package cascade
