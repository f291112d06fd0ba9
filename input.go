package battlemap

import "github.com/hajimehoshi/ebiten/v2"

// InputAdapter feeds Ebitengine pointer and wheel state into a
// ViewportController: wheel-to-zoom anchored at the cursor, and
// drag-to-pan on the middle button or a modifier plus left button. It is
// the only place this package reads ambient input; the controller itself
// stays pure and testable.
type InputAdapter struct {
	viewport *ViewportController
	panning  bool
}

// NewInputAdapter creates an adapter driving the given controller.
func NewInputAdapter(viewport *ViewportController) *InputAdapter {
	return &InputAdapter{viewport: viewport}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// pressedButton returns the currently pressed mouse button, preferring the
// middle button since it is the unconditional pan trigger.
func pressedButton() (MouseButton, bool) {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return MouseButtonMiddle, true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return MouseButtonLeft, true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return MouseButtonRight, true
	}
	return 0, false
}

// Update polls input once per frame and drives the controller's zoom and
// drag state machine. Call from the game loop's Update.
func (ia *InputAdapter) Update() {
	mx, my := ebiten.CursorPosition()
	bounds := ia.viewport.registry.ContainerBounds()
	// Container-relative pointer; the controller never sees raw screen
	// coordinates.
	pointer := Vec2{float64(mx) - bounds.X, float64(my) - bounds.Y}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		dir := ZoomIn
		if wheelY < 0 {
			dir = ZoomOut
		}
		ia.viewport.Zoom(dir, pointer)
	}

	button, down := pressedButton()
	trigger := down && IsDragTrigger(button, readModifiers())
	switch {
	case trigger && !ia.panning:
		ia.panning = true
		ia.viewport.BeginDrag(pointer)
	case trigger && ia.panning:
		ia.viewport.ContinueDrag(pointer)
	case !trigger && ia.panning:
		ia.panning = false
		ia.viewport.EndDrag()
	}
}
