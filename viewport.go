package battlemap

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom limits and steps. The wheel uses the coarser step; the discrete
// zoom pad buttons use the finer one.
const (
	MinZoom = 0.1
	MaxZoom = 5.0

	WheelZoomStep = 1.1
	PadZoomStep   = 1.05

	// fitMargin leaves 10% breathing room around fitted content.
	fitMargin = 0.9
)

// ZoomDirection selects zoom in or out for step-based zooming.
type ZoomDirection int8

const (
	ZoomIn  ZoomDirection = 1
	ZoomOut ZoomDirection = -1
)

// scrollAnim holds active scroll-to tweens for the viewport translation.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// ViewportController owns the interactive pan/zoom state machine: anchored
// wheel zoom, press-drag-release panning, and programmatic reset /
// fit-to-content / animated scroll. Every state change is published to the
// TransformRegistry so coordinate consumers re-project through a single
// consistent transform.
//
// All pointer coordinates are container-relative pixels; the input adapter
// is responsible for subtracting the container offset before calling in.
type ViewportController struct {
	registry *TransformRegistry

	scale    float64
	position Vec2

	dragging   bool
	dragAnchor Vec2

	scrollTween *scrollAnim
}

// NewViewportController creates a controller at scale 1 with zero
// translation and publishes that initial transform to the registry.
func NewViewportController(registry *TransformRegistry) *ViewportController {
	vc := &ViewportController{
		registry: registry,
		scale:    1,
	}
	vc.publish()
	return vc
}

// Scale returns the current zoom factor.
func (vc *ViewportController) Scale() float64 {
	return vc.scale
}

// Position returns the current translation in container-relative pixels.
func (vc *ViewportController) Position() Vec2 {
	return vc.position
}

// IsDragging reports whether a drag pan is in progress.
func (vc *ViewportController) IsDragging() bool {
	return vc.dragging
}

func (vc *ViewportController) publish() {
	vc.registry.SetTransform(vc.scale, vc.position.X, vc.position.Y)
}

// zoomTo sets the scale to newScale (clamped to [MinZoom, MaxZoom]) and
// recomputes the translation so anchor maps to the same container pixel
// before and after the change:
//
//	newPos = anchor - (anchor - oldPos) / oldScale * newScale
func (vc *ViewportController) zoomTo(newScale float64, anchor Vec2) {
	newScale = clamp(newScale, MinZoom, MaxZoom)
	factor := newScale / vc.scale
	vc.position = Vec2{
		X: anchor.X - (anchor.X-vc.position.X)*factor,
		Y: anchor.Y - (anchor.Y-vc.position.Y)*factor,
	}
	vc.scale = newScale
	vc.publish()
}

// Zoom steps the scale by WheelZoomStep in the given direction, anchored at
// the pointer so the canvas point under the cursor stays put. Zooming in
// then out by the same number of steps returns to the original scale within
// floating-point tolerance.
func (vc *ViewportController) Zoom(direction ZoomDirection, anchor Vec2) {
	vc.ZoomStep(direction, anchor, WheelZoomStep)
}

// ZoomPad steps the scale by the finer PadZoomStep, for discrete zoom
// buttons. The anchor is the container center so button zoom feels
// symmetric.
func (vc *ViewportController) ZoomPad(direction ZoomDirection) {
	b := vc.registry.ContainerBounds()
	vc.ZoomStep(direction, Vec2{b.Width / 2, b.Height / 2}, PadZoomStep)
}

// ZoomStep multiplies (ZoomIn) or divides (ZoomOut) the scale by step,
// anchored at the given container-relative point.
func (vc *ViewportController) ZoomStep(direction ZoomDirection, anchor Vec2, step float64) {
	if step <= 0 {
		return
	}
	newScale := vc.scale * step
	if direction == ZoomOut {
		newScale = vc.scale / step
	}
	vc.zoomTo(newScale, anchor)
}

// PanBy translates the viewport by (dx, dy) container pixels. Used by both
// drag panning and the discrete pad buttons.
func (vc *ViewportController) PanBy(dx, dy float64) {
	vc.position.X += dx
	vc.position.Y += dy
	vc.scrollTween = nil
	vc.publish()
}

// IsDragTrigger reports whether a button press should start a drag pan
// rather than an object-selection drag: middle button, or left button with
// a held modifier.
func IsDragTrigger(button MouseButton, mods KeyModifiers) bool {
	if button == MouseButtonMiddle {
		return true
	}
	return button == MouseButtonLeft && mods&(ModCtrl|ModAlt) != 0
}

// BeginDrag starts a drag pan from the given pointer position. The input
// adapter gates this on IsDragTrigger so viewport panning does not conflict
// with token drags.
func (vc *ViewportController) BeginDrag(pointer Vec2) {
	vc.dragging = true
	vc.dragAnchor = pointer
	vc.scrollTween = nil
}

// ContinueDrag pans by the pointer's movement since the previous call.
// No-op unless a drag is in progress.
func (vc *ViewportController) ContinueDrag(pointer Vec2) {
	if !vc.dragging {
		return
	}
	vc.position.X += pointer.X - vc.dragAnchor.X
	vc.position.Y += pointer.Y - vc.dragAnchor.Y
	vc.dragAnchor = pointer
	vc.publish()
}

// EndDrag finishes the drag pan.
func (vc *ViewportController) EndDrag() {
	vc.dragging = false
}

// ResetView restores scale 1 and zero translation.
func (vc *ViewportController) ResetView() {
	vc.scale = 1
	vc.position = Vec2{}
	vc.scrollTween = nil
	vc.publish()
}

// FitToContent scales and centers the viewport so content of the given size
// fills the viewport with a 10% margin. Zero or negative sizes fall back to
// ResetView semantics rather than dividing by zero.
func (vc *ViewportController) FitToContent(contentSize, viewportSize Vec2) {
	if contentSize.X <= 0 || contentSize.Y <= 0 ||
		viewportSize.X <= 0 || viewportSize.Y <= 0 {
		vc.ResetView()
		return
	}
	scale := min(viewportSize.X/contentSize.X, viewportSize.Y/contentSize.Y) * fitMargin
	vc.scale = clamp(scale, MinZoom, MaxZoom)
	vc.position = Vec2{
		X: (viewportSize.X - contentSize.X*vc.scale) / 2,
		Y: (viewportSize.Y - contentSize.Y*vc.scale) / 2,
	}
	vc.scrollTween = nil
	vc.publish()
}

// ScrollTo animates the translation to the given value over duration
// seconds. The tween advances in Update; starting a drag, pan, or reset
// cancels it.
func (vc *ViewportController) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	vc.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(vc.position.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(vc.position.Y), float32(target.Y), duration, easeFn),
	}
}

// CenterOn animates the viewport so the given canvas point ends up at the
// container center. Convenience wrapper over ScrollTo for "focus token"
// commands.
func (vc *ViewportController) CenterOn(canvasPoint Vec2, duration float32, easeFn ease.TweenFunc) {
	b := vc.registry.ContainerBounds()
	vc.ScrollTo(Vec2{
		X: b.Width/2 - canvasPoint.X*vc.scale,
		Y: b.Height/2 - canvasPoint.Y*vc.scale,
	}, duration, easeFn)
}

// Update advances the scroll tween by dt seconds. Called once per frame by
// the Stage.
func (vc *ViewportController) Update(dt float64) {
	if vc.scrollTween == nil {
		return
	}
	st := vc.scrollTween
	if !st.doneX {
		val, done := st.tweenX.Update(float32(dt))
		vc.position.X = float64(val)
		st.doneX = done
	}
	if !st.doneY {
		val, done := st.tweenY.Update(float32(dt))
		vc.position.Y = float64(val)
		st.doneY = done
	}
	if st.doneX && st.doneY {
		vc.scrollTween = nil
	}
	vc.publish()
}
