package battlemap

import "math"

// spark holds per-spark simulation state. Unexported; managed by SparkEmitter.
type spark struct {
	pos        Vec2
	vel        Vec2
	life       float64 // remaining lifetime in seconds
	maxLife    float64 // initial lifetime (for computing t)
	startScale float64
	endScale   float64
	scale      float64
	startAlpha float64
	endAlpha   float64
	alpha      float64
	color      Color
}

// SparkConfig controls how sparks are spawned and behave.
type SparkConfig struct {
	// MaxSparks is the pool size. New sparks are silently dropped when full.
	MaxSparks int
	// EmitRate is the number of sparks spawned per second.
	EmitRate float64
	// Lifetime is the range of spark lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial speeds in canvas pixels per second.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// StartScale is the scale at birth, interpolated to EndScale over lifetime.
	StartScale Range
	// EndScale is the scale at death.
	EndScale Range
	// StartAlpha is the alpha at birth, interpolated to EndAlpha over lifetime.
	StartAlpha Range
	// EndAlpha is the alpha at death.
	EndAlpha Range
	// Gravity is the constant acceleration applied each frame.
	Gravity Vec2
	// StartColor is the tint at birth, interpolated to EndColor over lifetime.
	StartColor Color
	// EndColor is the tint at death.
	EndColor Color
}

// burstSparkConfig is the preset used by area-burst drivers: sparks fly
// outward in all directions, covering the burst radius within a typical
// lifetime, cooling from the effect color toward transparent.
func burstSparkConfig(spec AnimSpec, radius float64) SparkConfig {
	if radius <= 0 {
		radius = 50
	}
	return SparkConfig{
		MaxSparks:  64,
		EmitRate:   120,
		Lifetime:   Range{0.2, 0.5},
		Speed:      Range{radius, radius * 3},
		Angle:      Range{0, 2 * math.Pi},
		StartScale: Range{0.8, 1.2},
		EndScale:   Range{0.1, 0.3},
		StartAlpha: Range{1, 1},
		EndAlpha:   Range{0, 0},
		StartColor: spec.Color,
		EndColor:   ColorWhite,
	}
}

// SparkEmitter manages a pool of sparks with CPU simulation. Randomness
// comes from the injected source, so a seeded source reproduces the same
// spray.
type SparkEmitter struct {
	config    SparkConfig
	sparks    []spark
	alive     int
	emitAccum float64
	active    bool
	origin    Vec2
	rng       randSource
}

// NewSparkEmitter creates an emitter with a preallocated pool, spawning at
// origin in canvas coordinates.
func NewSparkEmitter(cfg SparkConfig, origin Vec2, rng randSource) *SparkEmitter {
	max := cfg.MaxSparks
	if max <= 0 {
		max = 64
	}
	return &SparkEmitter{
		config: cfg,
		sparks: make([]spark, max),
		origin: origin,
		rng:    rng,
	}
}

// Start begins emitting sparks.
func (e *SparkEmitter) Start() {
	e.active = true
}

// Stop stops emitting new sparks. Existing sparks continue to live out.
func (e *SparkEmitter) Stop() {
	e.active = false
}

// Reset stops emitting and kills all alive sparks.
func (e *SparkEmitter) Reset() {
	e.active = false
	e.alive = 0
	e.emitAccum = 0
}

// AliveCount returns the number of alive sparks.
func (e *SparkEmitter) AliveCount() int {
	return e.alive
}

// Update advances the simulation by dt seconds.
func (e *SparkEmitter) Update(dt float64) {
	g := e.config.Gravity.Mul(dt)

	// Update existing sparks, swap-remove dead ones.
	i := 0
	for i < e.alive {
		s := &e.sparks[i]
		s.life -= dt
		if s.life <= 0 {
			e.alive--
			e.sparks[i] = e.sparks[e.alive]
			continue
		}

		s.vel = s.vel.Add(g)
		s.pos = s.pos.Add(s.vel.Mul(dt))

		t := 1.0 - s.life/s.maxLife
		s.scale = lerp(s.startScale, s.endScale, t)
		s.alpha = lerp(s.startAlpha, s.endAlpha, t)
		s.color = e.config.StartColor.Lerp(e.config.EndColor, t)

		i++
	}

	if e.active && e.config.EmitRate > 0 {
		e.emitAccum += e.config.EmitRate * dt
		for e.emitAccum >= 1.0 {
			e.emitAccum -= 1.0
			if e.alive < len(e.sparks) {
				e.spawnSpark()
			}
		}
	}
}

// spawnSpark initializes the spark at slot e.alive and increments alive.
func (e *SparkEmitter) spawnSpark() {
	s := &e.sparks[e.alive]

	angle := e.config.Angle.random(e.rng)
	speed := e.config.Speed.random(e.rng)
	s.vel = Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
	s.pos = e.origin

	s.life = e.config.Lifetime.random(e.rng)
	if s.life <= 0 {
		s.life = 0.3
	}
	s.maxLife = s.life

	s.startScale = e.config.StartScale.random(e.rng)
	s.endScale = e.config.EndScale.random(e.rng)
	s.scale = s.startScale

	s.startAlpha = e.config.StartAlpha.random(e.rng)
	s.endAlpha = e.config.EndAlpha.random(e.rng)
	s.alpha = s.startAlpha
	s.color = e.config.StartColor

	e.alive++
}

// AppendPoses appends one ShapeSpark pose per alive spark to buf.
func (e *SparkEmitter) AppendPoses(buf []ShapePose) []ShapePose {
	for i := 0; i < e.alive; i++ {
		s := &e.sparks[i]
		buf = append(buf, ShapePose{Kind: ShapeSpark, Pose: Pose{
			Progress: 1 - s.life/s.maxLife,
			Position: s.pos,
			Scale:    s.scale,
			Opacity:  s.alpha,
			Color:    s.color,
		}})
	}
	return buf
}
