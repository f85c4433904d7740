// File: cascade/hooks_test.go
package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHookDispatch tests ordered, synchronous listener invocation
func TestHookDispatch(t *testing.T) {
	t.Run("FireWithNoListenersIsNoOp", func(t *testing.T) {
		cfg, err := New("hooks")
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			cfg.Hooks().Fire(EventStylesheetSaved, "css/site.css")
		})
	})

	t.Run("ListenersRunOnceInRegistrationOrder", func(t *testing.T) {
		cfg, err := New("hooks")
		require.NoError(t, err)

		var calls []string
		cfg.Hooks().On(EventStylesheetSaved, func(payload ...any) {
			calls = append(calls, "first")
		})
		cfg.Hooks().On(EventStylesheetSaved, func(payload ...any) {
			calls = append(calls, "second")
		})

		cfg.Hooks().Fire(EventStylesheetSaved, "css/site.css")
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("PayloadReachesEveryListener", func(t *testing.T) {
		cfg, err := New("hooks")
		require.NoError(t, err)

		var gotFile, gotMessage string
		cfg.Hooks().On(EventStylesheetError, func(payload ...any) {
			require.Len(t, payload, 2)
			gotFile = payload[0].(string)
			gotMessage = payload[1].(string)
		})

		cfg.Hooks().Fire(EventStylesheetError, "css/site.css", "undefined variable $accent")
		assert.Equal(t, "css/site.css", gotFile)
		assert.Equal(t, "undefined variable $accent", gotMessage)
	})

	t.Run("ListenersShareSideEffects", func(t *testing.T) {
		cfg, err := New("hooks")
		require.NoError(t, err)

		count := 0
		cfg.Hooks().On(EventSpriteSaved, func(payload ...any) { count++ })
		cfg.Hooks().On(EventSpriteSaved, func(payload ...any) { count *= 10 })

		cfg.Hooks().Fire(EventSpriteSaved, "sprites/icons.png")
		assert.Equal(t, 10, count)
	})
}

// TestHookProgrammingErrors tests the fatal misuse paths
func TestHookProgrammingErrors(t *testing.T) {
	t.Run("FireOnUndefinedEventPanics", func(t *testing.T) {
		r := NewHookRegistry()
		assert.Panics(t, func() {
			r.Fire("never_defined", "x")
		})
	})

	t.Run("OnUndefinedEventPanics", func(t *testing.T) {
		r := NewHookRegistry()
		assert.Panics(t, func() {
			r.On("never_defined", func(payload ...any) {})
		})
	})

	t.Run("ReentrantFirePanics", func(t *testing.T) {
		r := NewHookRegistry()
		r.Define("saved")
		r.On("saved", func(payload ...any) {
			r.Fire("saved", "again")
		})
		assert.Panics(t, func() {
			r.Fire("saved", "once")
		})
	})

	t.Run("FiringDifferentEventFromListenerIsFine", func(t *testing.T) {
		r := NewHookRegistry()
		r.Define("saved")
		r.Define("logged")

		logged := false
		r.On("logged", func(payload ...any) { logged = true })
		r.On("saved", func(payload ...any) {
			r.Fire("logged", payload...)
		})

		assert.NotPanics(t, func() { r.Fire("saved", "css/site.css") })
		assert.True(t, logged)
	})
}

// TestHookRegistryDeclaration tests Define semantics
func TestHookRegistryDeclaration(t *testing.T) {
	r := NewHookRegistry()

	assert.False(t, r.Defined("saved"))
	r.Define("saved")
	assert.True(t, r.Defined("saved"))

	r.On("saved", func(payload ...any) {})
	r.Define("saved") // redeclaration keeps listeners
	assert.Equal(t, 1, r.ListenerCount("saved"))

	t.Run("LifecycleEventsPredeclared", func(t *testing.T) {
		cfg, err := New("hooks")
		require.NoError(t, err)
		for _, event := range LifecycleEvents {
			assert.True(t, cfg.Hooks().Defined(event), event)
		}
	})

	t.Run("FireAfterPanicRecovers", func(t *testing.T) {
		// The firing guard resets even when a listener panics, so a later
		// fire of the same event still dispatches.
		reg := NewHookRegistry()
		reg.Define("saved")
		boom := true
		fired := 0
		reg.On("saved", func(payload ...any) {
			fired++
			if boom {
				boom = false
				panic("listener failure")
			}
		})

		assert.Panics(t, func() { reg.Fire("saved") })
		assert.NotPanics(t, func() { reg.Fire("saved") })
		assert.Equal(t, 2, fired)
	})
}
