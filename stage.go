package battlemap

import (
	"math/rand/v2"
	"time"
)

// StageConfig configures a Stage. The zero value is usable: a time-derived
// random seed and no token source.
type StageConfig struct {
	// Seed seeds the pseudo-random source behind lightning jitter,
	// explosion shake, and spark emission. Zero derives a seed from the
	// clock; the jitter is cosmetic, so cross-run reproduction only
	// matters under test.
	Seed uint64
	// Tokens supplies the live token snapshot for target detection.
	Tokens TokenSource
}

// Stage is the composition root: it owns the TransformRegistry, the
// ViewportController, and the ActionManager for one battle map viewport,
// and drives them from a single per-frame Update. Independent Stages are
// fully isolated; nothing in this package is process-global state.
type Stage struct {
	registry *TransformRegistry
	viewport *ViewportController
	actions  *ActionManager

	poseBuf  []ShapePose
	disposed bool
}

// NewStage wires a registry, viewport, and action manager together.
func NewStage(cfg StageConfig) *Stage {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	registry := NewTransformRegistry()
	return &Stage{
		registry: registry,
		viewport: NewViewportController(registry),
		actions:  NewActionManager(cfg.Tokens, rng),
	}
}

// Registry returns the stage's transform registry.
func (s *Stage) Registry() *TransformRegistry {
	return s.registry
}

// Viewport returns the stage's viewport controller.
func (s *Stage) Viewport() *ViewportController {
	return s.viewport
}

// Actions returns the stage's action manager.
func (s *Stage) Actions() *ActionManager {
	return s.actions
}

// Update advances the viewport tween and every active action driver by dt
// seconds. The single dt is the frame's shared notion of elapsed time:
// every driver sees the same tick. No-op after Dispose.
func (s *Stage) Update(dt float64) {
	if s.disposed {
		return
	}
	s.viewport.Update(dt)
	s.actions.Advance(dt)
}

// Render submits the current frame's poses to the sink. No-op after
// Dispose.
func (s *Stage) Render(r Renderer) {
	if s.disposed {
		return
	}
	s.poseBuf = s.actions.Render(r, s.poseBuf)
}

// Dispose hard-cancels all active actions and permanently stops the stage.
// Deterministic teardown owned by the caller, not by any UI framework's
// unmount: after Dispose no driver advances and no pose is submitted.
func (s *Stage) Dispose() {
	if s.disposed {
		return
	}
	s.actions.ClearAll()
	s.disposed = true
}

// Disposed reports whether Dispose has been called.
func (s *Stage) Disposed() bool {
	return s.disposed
}
