// File: cascade/hooks.go
package cascade

import (
	"fmt"
	"sync"
)

// Lifecycle event names fired by the stylesheet and sprite pipelines.
// They are pre-declared on every Configuration's hook registry.
const (
	EventStylesheetSaved   = "stylesheet_saved"
	EventStylesheetRemoved = "stylesheet_removed"
	EventStylesheetError   = "stylesheet_error"
	EventSourcemapSaved    = "sourcemap_saved"
	EventSourcemapRemoved  = "sourcemap_removed"
	EventSpriteSaved       = "sprite_saved"
	EventSpriteGenerated   = "sprite_generated"
	EventSpriteRemoved     = "sprite_removed"
)

// LifecycleEvents lists every pre-declared event channel.
var LifecycleEvents = []string{
	EventStylesheetSaved,
	EventStylesheetRemoved,
	EventStylesheetError,
	EventSourcemapSaved,
	EventSourcemapRemoved,
	EventSpriteSaved,
	EventSpriteGenerated,
	EventSpriteRemoved,
}

// Listener observes one lifecycle event. The payload is event-specific:
// typically a filename, or filename plus message for error events.
type Listener func(payload ...any)

// HookRegistry holds named event channels with ordered listener chains.
// Dispatch is synchronous and purely side-effecting; listeners are invoked
// in registration order and collect no return value.
type HookRegistry struct {
	mu     sync.Mutex
	events map[string][]Listener
	firing map[string]bool
}

// NewHookRegistry creates an empty registry with no declared events.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{
		events: make(map[string][]Listener),
		firing: make(map[string]bool),
	}
}

// Define declares an event channel. Defining an already-declared event is
// a no-op; registered listeners are kept.
func (r *HookRegistry) Define(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, declared := r.events[event]; !declared {
		r.events[event] = nil
	}
}

// Defined reports whether the event channel has been declared.
func (r *HookRegistry) Defined(event string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, declared := r.events[event]
	return declared
}

// On appends a listener to an event's chain. Listeners registered by
// unrelated extensions coexist; ordering is the only isolation guarantee.
// Registering on an undeclared event is a programming error and panics.
func (r *HookRegistry) On(event string, fn Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, declared := r.events[event]; !declared {
		panic(fmt.Sprintf("cascade: listener registered on undefined event %q", event))
	}
	r.events[event] = append(r.events[event], fn)
}

// ListenerCount returns the number of listeners registered for an event.
func (r *HookRegistry) ListenerCount(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events[event])
}

// Fire invokes every listener of the event once, in registration order,
// with the given payload. Firing an event with no listeners is a no-op.
// Firing an undeclared event panics, as does firing an event from within
// its own listener chain: the dispatch order is fixed before the first
// listener runs and re-entry would invalidate it.
func (r *HookRegistry) Fire(event string, payload ...any) {
	r.mu.Lock()
	listeners, declared := r.events[event]
	if !declared {
		r.mu.Unlock()
		panic(fmt.Sprintf("cascade: fire of undefined event %q", event))
	}
	if r.firing[event] {
		r.mu.Unlock()
		panic(fmt.Sprintf("cascade: re-entrant fire of event %q", event))
	}
	r.firing[event] = true
	chain := make([]Listener, len(listeners))
	copy(chain, listeners)
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.firing[event] = false
		r.mu.Unlock()
	}()

	for _, fn := range chain {
		fn(payload...)
	}
}
