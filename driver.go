package battlemap

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Phase constants shared by the drivers. Progress thresholds are fractions
// of raw progress; durations are seconds.
const (
	// minDuration substitutes for zero or negative durations so progress
	// never divides by zero; such a driver completes on its first tick.
	minDuration = epsilon

	// impactBurstDuration is the fixed tail a projectile with a burst
	// radius plays after its flight finishes.
	impactBurstDuration = 0.3

	rayExtendEnd = 0.3
	rayHoldEnd   = 0.7

	swingFlashStart = 0.7
	slashFlashStart = 0.5
	slashStagger    = 0.05
	maxSlashStrokes = 3

	burstExpandEnd = 0.3
	burstFlashEnd  = 0.5

	lightningSegments  = 8
	defaultJitterAmp   = 4.0
	explosionShakeAmp  = 4.0
	thunderFlashChance = 0.3
)

// ShapeKind tells the rendering sink which primitive a pose describes.
// The sink owns pixel output; this core only reports geometry.
type ShapeKind uint8

const (
	ShapeProjectile  ShapeKind = iota // a projectile body at Position, facing Rotation
	ShapeImpactBurst                  // a radial flash at Position, Scale in [0, 1] of the declared radius
	ShapeRay                          // a beam from Position to End (Points when jittered)
	ShapeMeleeArc                     // an arc of radius Scale at Position, swept to Rotation
	ShapeMeleeStroke                  // a slash stroke from Position to End
	ShapeBurstRing                    // a burst ring at Position, Scale multiplying the declared radius
	ShapeAreaRing                     // an area pulse ring at Position
	ShapeSpark                        // one spark particle at Position
	ShapePulse                        // an interaction pulse around Position
)

// Pose is the per-frame renderable output of a driver: where a shape is and
// how it looks at the current progress. Poses are ephemeral; they are
// recomputed every tick and never stored.
type Pose struct {
	// Progress is the raw (unclamped by easing) progress in [0, 1] of the
	// phase that produced this pose.
	Progress float64
	Position Vec2
	// End is the segment endpoint for rays and strokes.
	End Vec2
	// Points is the jittered polyline for lightning rays, including both
	// endpoints. Nil for every other shape.
	Points   []Vec2
	Scale    float64
	Opacity  float64
	Rotation float64
	Color    Color
}

// ShapePose pairs a pose with the primitive it describes.
type ShapePose struct {
	Kind ShapeKind
	Pose Pose
}

// Driver advances one action's animation over time. The pose math is a pure
// function of (elapsed, action); the driver itself is only the scheduling
// wrapper that accumulates elapsed time and reports completion. The
// ActionManager owns driver lifecycles.
type Driver struct {
	action   Action
	duration float64
	total    float64
	elapsed  float64
	rng      randSource
	sparks   *SparkEmitter
	done     bool
}

// NewDriver creates a driver for the action. rng feeds the jittered
// variants (lightning, explosion shake, thunder flash) and spark emission;
// pass a seeded source for reproducible bounds in tests.
func NewDriver(action Action, rng randSource) *Driver {
	duration := action.Anim().Duration
	if duration < minDuration {
		duration = minDuration
	}
	d := &Driver{
		action:   action,
		duration: duration,
		total:    duration,
		rng:      rng,
	}
	switch a := action.(type) {
	case *ProjectileAction:
		if a.BurstRadius > 0 {
			d.total += impactBurstDuration
		}
	case *AreaAction:
		if len(a.TargetIDs) == 0 && a.HalfAngle == 0 {
			d.sparks = NewSparkEmitter(burstSparkConfig(a.Anim(), a.Radius), a.Target, rng)
			d.sparks.Start()
		}
	}
	return d
}

// Action returns the action this driver animates.
func (d *Driver) Action() Action {
	return d.action
}

// Elapsed returns the accumulated elapsed time in seconds.
func (d *Driver) Elapsed() float64 {
	return d.elapsed
}

// Done reports whether the driver has run to completion.
func (d *Driver) Done() bool {
	return d.done
}

// Advance accumulates dt seconds and returns true once the animation has
// run its full course. Advancing a finished driver stays finished.
func (d *Driver) Advance(dt float64) bool {
	if d.done {
		return true
	}
	d.elapsed += dt
	if d.sparks != nil {
		// Emission covers the first half of the animation; the remaining
		// sparks live out during the fade.
		if d.elapsed/d.duration >= 0.5 {
			d.sparks.Stop()
		}
		d.sparks.Update(dt)
	}
	if d.elapsed >= d.total {
		d.done = true
	}
	return d.done
}

// Poses appends the current frame's (kind, pose) tuples to buf and returns
// it. A finished driver appends nothing.
func (d *Driver) Poses(buf []ShapePose) []ShapePose {
	if d.done {
		return buf
	}
	switch a := d.action.(type) {
	case *ProjectileAction:
		return appendProjectilePoses(buf, a, d.elapsed, d.duration)
	case *MeleeAction:
		return appendMeleePoses(buf, a, d.elapsed, d.duration)
	case *RayAction:
		return appendRayPoses(buf, a, d.elapsed, d.duration, d.rng)
	case *BurstAction:
		return appendBurstPoses(buf, a, d.elapsed, d.duration, d.rng)
	case *AreaAction:
		buf = appendAreaPoses(buf, a, d.elapsed, d.duration)
		if d.sparks != nil {
			buf = d.sparks.AppendPoses(buf)
		}
		return buf
	case *InteractionAction:
		return appendInteractionPoses(buf, a, d.elapsed, d.duration)
	}
	return buf
}

// rawProgress is elapsed/duration clamped to [0, 1].
func rawProgress(elapsed, duration float64) float64 {
	return clamp(elapsed/duration, 0, 1)
}

// appendProjectilePoses lerps the projectile from source to target through
// the spec's easing. Once the flight finishes, an action with a burst
// radius plays an impact burst at the target for impactBurstDuration.
func appendProjectilePoses(buf []ShapePose, a *ProjectileAction, elapsed, duration float64) []ShapePose {
	spec := a.Anim()
	p := rawProgress(elapsed, duration)

	if elapsed <= duration {
		eased := easeValue(spec.Easing, p)
		buf = append(buf, ShapePose{Kind: ShapeProjectile, Pose: Pose{
			Progress: p,
			Position: lerpVec(a.Source, a.Target, eased),
			Scale:    1,
			Opacity:  1,
			Rotation: Bearing(a.Source, a.Target),
			Color:    spec.Color,
		}})
		return buf
	}

	if a.BurstRadius > 0 {
		bp := clamp((elapsed-duration)/impactBurstDuration, 0, 1)
		buf = append(buf, ShapePose{Kind: ShapeImpactBurst, Pose: Pose{
			Progress: bp,
			Position: a.Target,
			Scale:    easeValue(ease.OutQuad, bp),
			Opacity:  1 - bp,
			Color:    spec.Color,
		}})
	}
	return buf
}

// appendRayPoses runs the beam's three phases: extend (out-cubic to the
// target), hold at full length, fade (opacity eased in-quad to zero).
// Lightning rays get a fresh jittered polyline every tick.
func appendRayPoses(buf []ShapePose, a *RayAction, elapsed, duration float64, rng randSource) []ShapePose {
	spec := a.Anim()
	p := rawProgress(elapsed, duration)

	end := a.Target
	opacity := 1.0
	switch {
	case p < rayExtendEnd:
		t := easeValue(ease.OutCubic, p/rayExtendEnd)
		end = lerpVec(a.Source, a.Target, t)
	case p < rayHoldEnd:
		// Full length, full opacity.
	default:
		opacity = 1 - easeValue(ease.InQuad, (p-rayHoldEnd)/(1-rayHoldEnd))
	}

	pose := Pose{
		Progress: p,
		Position: a.Source,
		End:      end,
		Scale:    1,
		Opacity:  opacity,
		Rotation: Bearing(a.Source, a.Target),
		Color:    spec.Color,
	}
	if a.Kind == RayLightning {
		pose.Points = lightningPoints(a.Source, end, jitterAmp(spec), rng)
	}
	return append(buf, ShapePose{Kind: ShapeRay, Pose: pose})
}

// jitterAmp is the bound on lightning displacement, in canvas pixels.
func jitterAmp(spec AnimSpec) float64 {
	if spec.Size > 0 {
		return spec.Size
	}
	return defaultJitterAmp
}

// lightningPoints subdivides the segment and displaces each interior point
// perpendicular to the beam by a random offset bounded by amp. Endpoints
// stay fixed. The jitter is recomputed every tick; it is cosmetic and
// intentionally non-deterministic unless rng is seeded.
func lightningPoints(from, to Vec2, amp float64, rng randSource) []Vec2 {
	perp := perpendicular(from, to)
	points := make([]Vec2, 0, lightningSegments+1)
	points = append(points, from)
	for i := 1; i < lightningSegments; i++ {
		t := float64(i) / lightningSegments
		offset := (rng.Float64()*2 - 1) * amp
		points = append(points, lerpVec(from, to, t).Add(perp.Mul(offset)))
	}
	return append(points, to)
}

// appendMeleePoses dispatches to the swing or slash shape.
func appendMeleePoses(buf []ShapePose, a *MeleeAction, elapsed, duration float64) []ShapePose {
	if a.Kind == MeleeSlash {
		return appendSlashPoses(buf, a, elapsed, duration)
	}
	return appendSwingPoses(buf, a, elapsed, duration)
}

// appendSwingPoses sweeps an arc 90 degrees across the bearing to the
// target, eased out-cubic, with an impact flash over the final 30% of
// progress.
func appendSwingPoses(buf []ShapePose, a *MeleeAction, elapsed, duration float64) []ShapePose {
	spec := a.Anim()
	p := rawProgress(elapsed, duration)
	base := Bearing(a.Source, a.Target)
	sweep := easeValue(ease.OutCubic, p) * (math.Pi / 2)

	buf = append(buf, ShapePose{Kind: ShapeMeleeArc, Pose: Pose{
		Progress: p,
		Position: a.Source,
		Scale:    Dist(a.Source, a.Target),
		Opacity:  1,
		Rotation: base - math.Pi/4 + sweep,
		Color:    spec.Color,
	}})

	if p >= swingFlashStart {
		fp := (p - swingFlashStart) / (1 - swingFlashStart)
		buf = append(buf, ShapePose{Kind: ShapeImpactBurst, Pose: Pose{
			Progress: fp,
			Position: a.Target,
			Scale:    easeValue(ease.OutQuad, fp),
			Opacity:  1 - fp,
			Color:    spec.Color,
		}})
	}
	return buf
}

// appendSlashPoses draws up to three parallel strokes. Stroke i starts
// after i*slashStagger of the duration so the strokes appear sequentially;
// each grows across its remaining window eased out-quad. The impact flash
// triggers past the midpoint of overall progress.
func appendSlashPoses(buf []ShapePose, a *MeleeAction, elapsed, duration float64) []ShapePose {
	spec := a.Anim()
	p := rawProgress(elapsed, duration)

	strokes := a.Strokes
	if strokes < 1 {
		strokes = 1
	} else if strokes > maxSlashStrokes {
		strokes = maxSlashStrokes
	}
	spacing := spec.Size
	if spacing <= 0 {
		spacing = 10
	}
	perp := perpendicular(a.Source, a.Target)

	for i := 0; i < strokes; i++ {
		delay := float64(i) * slashStagger * duration
		if elapsed < delay {
			continue
		}
		window := duration - delay
		if window < minDuration {
			window = minDuration
		}
		sp := clamp((elapsed-delay)/window, 0, 1)

		offset := perp.Mul((float64(i) - float64(strokes-1)/2) * spacing)
		start := a.Source.Add(offset)
		full := a.Target.Add(offset)
		opacity := 1.0
		if sp > 0.8 {
			opacity = 1 - (sp-0.8)/0.2
		}
		buf = append(buf, ShapePose{Kind: ShapeMeleeStroke, Pose: Pose{
			Progress: sp,
			Position: start,
			End:      lerpVec(start, full, easeValue(ease.OutQuad, sp)),
			Scale:    1,
			Opacity:  opacity,
			Rotation: Bearing(a.Source, a.Target),
			Color:    spec.Color,
		}})
	}

	if p >= slashFlashStart {
		fp := (p - slashFlashStart) / (1 - slashFlashStart)
		buf = append(buf, ShapePose{Kind: ShapeImpactBurst, Pose: Pose{
			Progress: fp,
			Position: a.Target,
			Scale:    easeValue(ease.OutQuad, fp),
			Opacity:  1 - fp,
			Color:    spec.Color,
		}})
	}
	return buf
}

// appendBurstPoses runs the burst's three phases: expand (scale 0 to 1.5),
// flash (1.5 to 2.0 with the color flipping to white and back), fade (2.0
// back to 1.5, opacity to zero). Scale multiplies the action's declared
// radius. Explosions shake the center by a random offset scaled by the
// remaining progress; thunder adds stochastic full-white frames.
func appendBurstPoses(buf []ShapePose, a *BurstAction, elapsed, duration float64, rng randSource) []ShapePose {
	spec := a.Anim()
	p := rawProgress(elapsed, duration)

	scale := 0.0
	opacity := 1.0
	col := spec.Color
	switch {
	case p < burstExpandEnd:
		scale = 1.5 * easeValue(ease.OutQuad, p/burstExpandEnd)
	case p < burstFlashEnd:
		t := (p - burstExpandEnd) / (burstFlashEnd - burstExpandEnd)
		scale = 1.5 + 0.5*t
		// White peaks at the middle of the flash window, then returns.
		col = spec.Color.Lerp(ColorWhite, 1-math.Abs(2*t-1))
	default:
		t := (p - burstFlashEnd) / (1 - burstFlashEnd)
		scale = 2.0 - 0.5*t
		opacity = 1 - easeValue(ease.InQuad, t)
	}

	center := a.Center
	switch a.Kind {
	case BurstExplosion:
		amp := explosionShakeAmp * (1 - p)
		center = center.Add(Vec2{
			X: (rng.Float64()*2 - 1) * amp,
			Y: (rng.Float64()*2 - 1) * amp,
		})
	case BurstThunder:
		if rng.Float64() < thunderFlashChance {
			col = ColorWhite
		}
	}

	return append(buf, ShapePose{Kind: ShapeBurstRing, Pose: Pose{
		Progress: p,
		Position: center,
		Scale:    scale,
		Opacity:  opacity,
		Color:    col,
	}})
}

// appendAreaPoses expands a ring to the area's radius through the spec's
// easing, fading out over the last 30% of progress. Spark poses are
// appended separately by the driver's emitter.
func appendAreaPoses(buf []ShapePose, a *AreaAction, elapsed, duration float64) []ShapePose {
	spec := a.Anim()
	p := rawProgress(elapsed, duration)

	opacity := 1.0
	if p > 0.7 {
		opacity = 1 - easeValue(ease.InQuad, (p-0.7)/0.3)
	}
	return append(buf, ShapePose{Kind: ShapeAreaRing, Pose: Pose{
		Progress: p,
		Position: a.Target,
		Scale:    easeValue(spec.Easing, p),
		Opacity:  opacity,
		Color:    spec.Color,
	}})
}

// appendInteractionPoses pulses the interacted token: scale rises to a peak
// at half progress and settles back while the pulse fades.
func appendInteractionPoses(buf []ShapePose, a *InteractionAction, elapsed, duration float64) []ShapePose {
	spec := a.Anim()
	p := rawProgress(elapsed, duration)
	pulse := 1 - math.Abs(2*p-1)

	return append(buf, ShapePose{Kind: ShapePulse, Pose: Pose{
		Progress: p,
		Position: a.Target,
		Scale:    1 + 0.3*easeValue(ease.InOutQuad, pulse),
		Opacity:  1 - easeValue(ease.InQuad, p)*0.5,
		Color:    spec.Color,
	}})
}
