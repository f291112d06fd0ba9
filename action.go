package battlemap

import (
	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// ActionCategory identifies the visual effect family an action belongs to.
type ActionCategory uint8

const (
	CategoryProjectile  ActionCategory = iota // flight from source to target, optional impact burst
	CategoryMelee                             // swing arc or slash strokes at the target
	CategoryRay                               // beam with extend/hold/fade phases
	CategoryBurst                             // expanding ring with flash and fade
	CategoryArea                              // area pulse with spark emission
	CategoryInteraction                       // pulse on a single interacted token
)

// String returns the category's configuration name.
func (c ActionCategory) String() string {
	switch c {
	case CategoryProjectile:
		return "projectile"
	case CategoryMelee:
		return "melee"
	case CategoryRay:
		return "ray"
	case CategoryBurst:
		return "burst"
	case CategoryArea:
		return "area"
	case CategoryInteraction:
		return "interaction"
	default:
		return "unknown"
	}
}

// AnimSpec describes how an action animates. Duration is in seconds; a nil
// Easing is linear. Size is the effect's characteristic dimension in canvas
// pixels (stroke spacing, beam width, spark reach).
type AnimSpec struct {
	Duration    float64
	Color       Color
	Size        float64
	Easing      ease.TweenFunc
	TrackTarget bool
}

// Token is a live map token as seen by target detection: an id, a canvas
// position, and a collision radius.
type Token struct {
	ID       string
	Position Vec2
	Radius   float64
}

// Circle returns the token's bounding circle.
func (t Token) Circle() Circle {
	return Circle{Center: t.Position, Radius: t.Radius}
}

// Action is one in-flight visual effect. It is a sealed union: exactly the
// six category structs in this package implement it, so dispatch by type
// switch covers every case. An Action is immutable once started; replaying
// the same visual effect requires a new id.
type Action interface {
	// ActionID returns the unique id among currently-active actions.
	ActionID() string
	// Category returns the effect family, matching the concrete type.
	Category() ActionCategory
	// Anim returns the animation descriptor.
	Anim() AnimSpec

	isAction()
}

// NewActionID returns a fresh unique action id.
func NewActionID() string {
	return uuid.NewString()
}

// ActionInfo carries the fields common to every action variant. Embed it in
// a variant and fill ID (see NewActionID), the display metadata, and the
// animation spec.
type ActionInfo struct {
	ID          string
	Name        string
	Description string
	Spec        AnimSpec
}

// ActionID returns the action's unique id.
func (a *ActionInfo) ActionID() string { return a.ID }

// Anim returns the animation descriptor.
func (a *ActionInfo) Anim() AnimSpec { return a.Spec }

// ProjectileAction flies from Source to Target. If BurstRadius is positive,
// an impact burst plays at the target for a fixed tail after the flight.
type ProjectileAction struct {
	ActionInfo
	Source Vec2
	Target Vec2
	// BurstRadius is the impact burst radius in canvas pixels; zero means
	// the action completes as soon as the flight does.
	BurstRadius float64
}

func (a *ProjectileAction) Category() ActionCategory { return CategoryProjectile }
func (a *ProjectileAction) isAction()                {}

// MeleeKind selects the melee animation shape.
type MeleeKind uint8

const (
	MeleeSwing MeleeKind = iota // 90-degree arc sweep
	MeleeSlash                  // up to three staggered parallel strokes
)

// MeleeAction plays a swing arc or slash strokes from Source toward Target.
type MeleeAction struct {
	ActionInfo
	Source Vec2
	Target Vec2
	Kind   MeleeKind
	// Strokes is the slash stroke count, clamped to [1, 3]. Ignored for swings.
	Strokes int
}

func (a *MeleeAction) Category() ActionCategory { return CategoryMelee }
func (a *MeleeAction) isAction()                {}

// RayKind selects the beam rendering variant.
type RayKind uint8

const (
	RayBeam      RayKind = iota // straight beam
	RayLightning                // polyline with per-tick jitter
)

// RayAction extends a beam from Source to Target, holds it, then fades.
type RayAction struct {
	ActionInfo
	Source Vec2
	Target Vec2
	Kind   RayKind
}

func (a *RayAction) Category() ActionCategory { return CategoryRay }
func (a *RayAction) isAction()                {}

// BurstKind selects the burst variant.
type BurstKind uint8

const (
	BurstGeneric   BurstKind = iota // plain expand/flash/fade
	BurstExplosion                  // positional shake scaled by remaining progress
	BurstThunder                    // stochastic extra flashes
)

// BurstAction expands a ring at Center out to Radius with a white flash.
type BurstAction struct {
	ActionInfo
	Center Vec2
	Radius float64
	Kind   BurstKind
}

func (a *BurstAction) Category() ActionCategory { return CategoryBurst }
func (a *BurstAction) isAction()                {}

// AreaAction affects a region. Exactly one of three target shapes applies,
// checked in order: an explicit TargetIDs list, a cone (HalfAngle > 0)
// opening from Source toward Target with the given Reach, or a circle of
// Radius around Target.
type AreaAction struct {
	ActionInfo
	Source Vec2
	Target Vec2
	Radius float64
	// Reach and HalfAngle (radians) describe a cone; HalfAngle zero means
	// the action is not a cone.
	Reach     float64
	HalfAngle float64
	// TargetIDs, when non-empty, selects affected tokens by id with no
	// geometry.
	TargetIDs []string
}

func (a *AreaAction) Category() ActionCategory { return CategoryArea }
func (a *AreaAction) isAction()                {}

// InteractionAction pulses a single token (door open, lever pull, trade).
type InteractionAction struct {
	ActionInfo
	TargetID string
	Target   Vec2
}

func (a *InteractionAction) Category() ActionCategory { return CategoryInteraction }
func (a *InteractionAction) isAction()                {}
