package battlemap

// Transform is the single active viewport-to-canvas mapping: canvas
// coordinates are scaled by Scale and offset by the translation to produce
// container-relative pixels.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// identity is the fallback mapping used before the viewport publishes its
// first transform.
var identity = Transform{Scale: 1}

// TransformRegistry holds the active viewport transform and the container's
// bounding rectangle, and converts between three coordinate spaces: screen
// (viewport pixels), container-relative pixels, and canvas (logical map)
// pixels.
//
// Construct one per viewport with NewTransformRegistry and pass it down from
// the composition root; registries are independent, so multiple viewports
// (or parallel tests) never collide.
//
// Before SetTransform has been called, conversions fall back to the identity
// transform instead of failing, so an early first-frame read produces
// pass-through coordinates rather than a crash. A warning is logged once;
// callers that need correct coordinates should gate on Ready.
type TransformRegistry struct {
	transform    Transform
	bounds       Rect
	hasTransform bool
	warned       bool
}

// NewTransformRegistry creates a registry with an identity transform and
// zero container bounds.
func NewTransformRegistry() *TransformRegistry {
	return &TransformRegistry{transform: identity}
}

// SetTransform replaces the active transform. Callers are responsible for
// zoom clamping before publishing (the ViewportController applies
// [MinZoom, MaxZoom]); the registry only guards against a degenerate scale.
func (tr *TransformRegistry) SetTransform(scale, translateX, translateY float64) {
	if scale < epsilon {
		scale = epsilon
	}
	tr.transform = Transform{Scale: scale, TranslateX: translateX, TranslateY: translateY}
	tr.hasTransform = true
}

// SetContainerBounds records the container's absolute bounding rectangle.
// Canvas coordinates are relative to the container, not the full screen,
// so conversions subtract the container offset first.
func (tr *TransformRegistry) SetContainerBounds(bounds Rect) {
	tr.bounds = bounds
}

// Ready reports whether a transform has been published. Conversions before
// readiness use the identity transform and yield pass-through coordinates.
func (tr *TransformRegistry) Ready() bool {
	return tr.hasTransform
}

// Transform returns the active transform (identity before readiness).
// Per-frame consumers should read it once at the top of the frame and reuse
// the value rather than re-reading mid-computation.
func (tr *TransformRegistry) Transform() Transform {
	return tr.current()
}

// ContainerBounds returns the recorded container rectangle.
func (tr *TransformRegistry) ContainerBounds() Rect {
	return tr.bounds
}

func (tr *TransformRegistry) current() Transform {
	if !tr.hasTransform {
		if !tr.warned {
			tr.warned = true
			warnf("coordinate conversion before transform is set; using identity")
		}
		return identity
	}
	return tr.transform
}

// ScreenToCanvas converts a screen-space point to canvas coordinates:
//
//	canvas = (screen - containerOffset - translate) / scale
func (tr *TransformRegistry) ScreenToCanvas(p Vec2) Vec2 {
	t := tr.current()
	return Vec2{
		X: (p.X - tr.bounds.X - t.TranslateX) / t.Scale,
		Y: (p.Y - tr.bounds.Y - t.TranslateY) / t.Scale,
	}
}

// CanvasToScreen converts a canvas-space point to screen coordinates.
// Inverse of ScreenToCanvas.
func (tr *TransformRegistry) CanvasToScreen(p Vec2) Vec2 {
	t := tr.current()
	return Vec2{
		X: p.X*t.Scale + t.TranslateX + tr.bounds.X,
		Y: p.Y*t.Scale + t.TranslateY + tr.bounds.Y,
	}
}

// VisibleCanvasArea projects the container's corners through ScreenToCanvas
// and returns the canvas-space rectangle currently visible. Used for culling
// and fit-to-content.
func (tr *TransformRegistry) VisibleCanvasArea() Rect {
	topLeft := tr.ScreenToCanvas(Vec2{tr.bounds.X, tr.bounds.Y})
	bottomRight := tr.ScreenToCanvas(Vec2{
		X: tr.bounds.X + tr.bounds.Width,
		Y: tr.bounds.Y + tr.bounds.Height,
	})
	return Rect{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  bottomRight.X - topLeft.X,
		Height: bottomRight.Y - topLeft.Y,
	}
}
