// Package battlemap is the coordinate-transform and action-animation core
// of a virtual tabletop battle map: the mapping between screen pixels and
// logical map coordinates under pan/zoom, and the time-based visual
// effects (projectiles, rays, melee swings, bursts) played over it.
//
// # Coordinates
//
// Three coordinate spaces exist: screen (viewport pixels), container
// (pixels relative to the map container), and canvas (logical map pixels).
// A [TransformRegistry] converts between them; a [ViewportController]
// mutates the registry through wheel zoom, drag panning, and programmatic
// reset / fit-to-content / animated scroll:
//
//	stage := battlemap.NewStage(battlemap.StageConfig{})
//	stage.Registry().SetContainerBounds(battlemap.Rect{Width: 800, Height: 600})
//	stage.Viewport().Zoom(battlemap.ZoomIn, battlemap.Vec2{X: 400, Y: 300})
//	canvasPt := stage.Registry().ScreenToCanvas(battlemap.Vec2{X: 400, Y: 300})
//
// # Actions
//
// A visual effect is an [Action]: one of six sealed variants
// ([ProjectileAction], [MeleeAction], [RayAction], [BurstAction],
// [AreaAction], [InteractionAction]), each immutable once started and
// keyed by a unique id (see [NewActionID]). The [ActionManager] guarantees
// at most one running instance per id and cleans up highlights on
// completion:
//
//	stage.Actions().Start(&battlemap.ProjectileAction{
//		ActionInfo: battlemap.ActionInfo{
//			ID:   battlemap.NewActionID(),
//			Spec: battlemap.AnimSpec{Duration: 0.6},
//		},
//		Source: battlemap.Vec2{},
//		Target: battlemap.Vec2{X: 300},
//	})
//
// Each frame, call [Stage.Update] with the frame's dt and [Stage.Render]
// with a [Renderer] sink; the sink receives (shape kind, pose) tuples and
// owns all pixel output. Easing comes from [gween/ease], the same
// functions the viewport's scroll tweens use.
//
// The package has no global state: every [Stage] owns its registry,
// viewport, and action set, so independent viewports and parallel tests
// never collide.
//
// [gween/ease]: https://github.com/tanema/gween
package battlemap
