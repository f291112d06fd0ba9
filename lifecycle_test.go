package battlemap

import "testing"

func testProjectile(id string, duration float64) *ProjectileAction {
	return &ProjectileAction{
		ActionInfo: ActionInfo{ID: id, Spec: AnimSpec{Duration: duration}},
		Source:     Vec2{0, 0},
		Target:     Vec2{100, 0},
	}
}

func newTestManager(tokens []Token) *ActionManager {
	return NewActionManager(func() []Token { return tokens }, testRng())
}

func TestStartRejectsDuplicateID(t *testing.T) {
	m := newTestManager(nil)

	if !m.Start(testProjectile("a1", 1)) {
		t.Fatal("first start rejected")
	}
	if m.Start(testProjectile("a1", 1)) {
		t.Error("second start with the same id must be rejected")
	}
	if m.Count() != 1 {
		t.Errorf("active count = %d, want 1", m.Count())
	}
}

func TestCompleteUnknownIDIsNoop(t *testing.T) {
	m := newTestManager(nil)
	m.Complete("never-started") // must not panic or log an error

	m.Start(testProjectile("a1", 1))
	m.Complete("a1")
	m.Complete("a1") // second completion races are tolerated
	if m.Count() != 0 {
		t.Errorf("active count = %d, want 0", m.Count())
	}
}

func TestLifecycleCompleteness(t *testing.T) {
	m := newTestManager(nil)
	m.Start(testProjectile("a1", 0.1))

	const dt = 1.0 / 60.0
	for i := 0; i < 10; i++ {
		m.Advance(dt)
	}
	if m.IsActive("a1") {
		t.Error("action still active after its duration elapsed")
	}
	for _, a := range m.Active() {
		if a.ActionID() == "a1" {
			t.Error("completed action present in Active()")
		}
	}
}

func TestActiveSnapshotOrder(t *testing.T) {
	m := newTestManager(nil)
	m.Start(testProjectile("first", 1))
	m.Start(testProjectile("second", 1))
	m.Start(testProjectile("third", 1))

	active := m.Active()
	want := []string{"first", "second", "third"}
	if len(active) != len(want) {
		t.Fatalf("active count = %d, want %d", len(active), len(want))
	}
	for i, a := range active {
		if a.ActionID() != want[i] {
			t.Errorf("active[%d] = %q, want %q", i, a.ActionID(), want[i])
		}
	}
}

func TestHighlightsFollowLifecycle(t *testing.T) {
	tokens := []Token{
		{ID: "ogre", Position: Vec2{10, 0}, Radius: 20},
		{ID: "bystander", Position: Vec2{500, 500}, Radius: 20},
	}
	m := newTestManager(tokens)

	red := Color{R: 1, A: 1}
	m.Start(&BurstAction{
		ActionInfo: ActionInfo{ID: "boom", Spec: AnimSpec{Duration: 1, Color: red}},
		Center:     Vec2{0, 0},
		Radius:     50,
	})

	h, ok := m.HighlightFor("ogre")
	if !ok {
		t.Fatal("affected token not highlighted")
	}
	if h.ActionID != "boom" || h.Color != red {
		t.Errorf("highlight = %+v, want action boom with the action color", h)
	}
	if _, ok := m.HighlightFor("bystander"); ok {
		t.Error("unaffected token highlighted")
	}

	m.Complete("boom")
	if _, ok := m.HighlightFor("ogre"); ok {
		t.Error("highlight survived its action's completion")
	}
}

func TestHighlightCleanupIsPerAction(t *testing.T) {
	tokens := []Token{{ID: "ogre", Position: Vec2{0, 0}, Radius: 10}}
	m := newTestManager(tokens)

	m.Start(&BurstAction{ActionInfo: ActionInfo{ID: "first", Spec: AnimSpec{Duration: 1}}, Radius: 50})
	m.Start(&InteractionAction{ActionInfo: ActionInfo{ID: "second", Spec: AnimSpec{Duration: 1}}, TargetID: "ogre"})

	// The second action overwrote the token's highlight; completing it
	// clears the entry even though the first action is still active.
	m.Complete("second")
	if _, ok := m.HighlightFor("ogre"); ok {
		t.Error("completing the owning action should clear the highlight")
	}
}

func TestAdvanceCompletesMultiple(t *testing.T) {
	m := newTestManager(nil)
	m.Start(testProjectile("a", 0.05))
	m.Start(testProjectile("b", 0.05))
	m.Start(testProjectile("c", 10))

	m.Advance(0.1)
	if m.IsActive("a") || m.IsActive("b") {
		t.Error("expired actions still active")
	}
	if !m.IsActive("c") {
		t.Error("long action completed early")
	}
}

func TestClearAll(t *testing.T) {
	tokens := []Token{{ID: "ogre", Position: Vec2{0, 0}, Radius: 10}}
	m := newTestManager(tokens)
	m.Start(&BurstAction{ActionInfo: ActionInfo{ID: "a", Spec: AnimSpec{Duration: 10}}, Radius: 50})
	m.Start(testProjectile("b", 10))

	m.ClearAll()
	if m.Count() != 0 {
		t.Errorf("active count after ClearAll = %d, want 0", m.Count())
	}
	if len(m.Highlights()) != 0 {
		t.Error("highlights survived ClearAll")
	}
	// The set is reusable after a hard teardown.
	if !m.Start(testProjectile("a", 1)) {
		t.Error("id from before ClearAll should be startable again")
	}
}

func TestRenderToleratesReentrantComplete(t *testing.T) {
	m := newTestManager(nil)
	m.Start(testProjectile("a", 1))
	m.Start(testProjectile("b", 1))
	m.Advance(0.5)

	// The sink cancels the other action mid-walk. The walk covers the
	// frame-start set regardless; removal takes effect next frame.
	seen := map[string]bool{}
	m.Render(RendererFunc(func(action Action, sp ShapePose) {
		seen[action.ActionID()] = true
		m.Complete("b")
	}), nil)

	if !seen["a"] || !seen["b"] {
		t.Errorf("submitted actions = %v, want both a and b", seen)
	}
	if m.Count() != 1 || m.IsActive("b") {
		t.Errorf("after reentrant complete: count=%d, b active=%v, want 1 and false",
			m.Count(), m.IsActive("b"))
	}
}

func TestAppendPosesCoversActiveActions(t *testing.T) {
	m := newTestManager(nil)
	m.Start(testProjectile("a", 1))
	m.Start(testProjectile("b", 1))
	m.Advance(0.5)

	poses := m.AppendPoses(nil)
	if n := countKind(poses, ShapeProjectile); n != 2 {
		t.Errorf("projectile poses = %d, want 2", n)
	}
}
