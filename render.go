package battlemap

// Renderer is the sink this core feeds: one Submit call per (shape, pose)
// tuple per active action per frame. The sink owns pixel output; how a
// ShapeRay or ShapeSpark becomes pixels is no concern of this package.
// Poses are in canvas coordinates; sinks drawing in screen space project
// them through the TransformRegistry first.
//
// Submit must not panic; a sink that cannot draw a shape should skip it so
// a broken effect degrades visually instead of crashing the view.
type Renderer interface {
	Submit(action Action, sp ShapePose)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(action Action, sp ShapePose)

// Submit calls f.
func (f RendererFunc) Submit(action Action, sp ShapePose) {
	f(action, sp)
}
