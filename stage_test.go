package battlemap

import "testing"

// recordingSink collects everything submitted during a Render pass.
type recordingSink struct {
	actions []Action
	poses   []ShapePose
}

func (r *recordingSink) Submit(a Action, sp ShapePose) {
	r.actions = append(r.actions, a)
	r.poses = append(r.poses, sp)
}

func newTestStage(tokens []Token) *Stage {
	return NewStage(StageConfig{
		Seed:   7,
		Tokens: func() []Token { return tokens },
	})
}

func TestStageRenderSubmitsToSink(t *testing.T) {
	s := newTestStage(nil)
	s.Actions().Start(testProjectile("a1", 1))
	s.Update(0.5)

	sink := &recordingSink{}
	s.Render(sink)

	if len(sink.poses) == 0 {
		t.Fatal("nothing submitted for an active action")
	}
	if countKind(sink.poses, ShapeProjectile) != 1 {
		t.Errorf("projectile poses = %d, want 1", countKind(sink.poses, ShapeProjectile))
	}
	for _, a := range sink.actions {
		if a.ActionID() != "a1" {
			t.Errorf("submitted action id = %q, want a1", a.ActionID())
		}
	}
}

func TestStageSharedFrameTime(t *testing.T) {
	s := newTestStage(nil)
	s.Actions().Start(testProjectile("a", 1))
	s.Actions().Start(testProjectile("b", 1))

	// Both drivers see the same dt each tick, so their progress stays
	// in lockstep.
	s.Update(0.25)
	s.Update(0.25)

	sink := &recordingSink{}
	s.Render(sink)
	var progress []float64
	for _, sp := range sink.poses {
		if sp.Kind == ShapeProjectile {
			progress = append(progress, sp.Pose.Progress)
		}
	}
	if len(progress) != 2 {
		t.Fatalf("projectile poses = %d, want 2", len(progress))
	}
	if !approxEqual(progress[0], 0.5, epsilon) || !approxEqual(progress[1], 0.5, epsilon) {
		t.Errorf("progress = %v, want both 0.5", progress)
	}
}

func TestStageDispose(t *testing.T) {
	s := newTestStage(nil)
	s.Actions().Start(testProjectile("a1", 10))

	s.Dispose()
	if !s.Disposed() {
		t.Fatal("Disposed = false after Dispose")
	}
	if s.Actions().Count() != 0 {
		t.Errorf("active count after Dispose = %d, want 0", s.Actions().Count())
	}

	// Update and Render are inert from here on.
	s.Update(1.0)
	sink := &recordingSink{}
	s.Render(sink)
	if len(sink.poses) != 0 {
		t.Errorf("disposed stage submitted %d poses", len(sink.poses))
	}

	s.Dispose() // second call is a no-op
}

func TestStageIndependence(t *testing.T) {
	s1 := newTestStage(nil)
	s2 := newTestStage(nil)

	s1.Actions().Start(testProjectile("a1", 1))
	s1.Viewport().Zoom(ZoomIn, Vec2{100, 100})

	if s2.Actions().Count() != 0 {
		t.Error("action leaked into an unrelated stage")
	}
	if s2.Viewport().Scale() != 1 {
		t.Errorf("zoom leaked into an unrelated stage: scale = %f", s2.Viewport().Scale())
	}
	if s2.Registry().Transform() != (Transform{Scale: 1}) {
		t.Error("transform leaked into an unrelated stage")
	}
}

func TestStageZeroSeedUsesClock(t *testing.T) {
	s := NewStage(StageConfig{})
	s.Actions().Start(testProjectile("a1", 1))
	s.Update(0.5)

	sink := &recordingSink{}
	s.Render(sink)
	if len(sink.poses) == 0 {
		t.Error("zero-value config should still produce a working stage")
	}
}
