package battlemap

import "github.com/tanema/gween/ease"

// Easing functions come from gween/ease (the same set the viewport tweens
// use). An AnimSpec carries an ease.TweenFunc directly; EaseByName resolves
// the names used by spell/weapon configuration data.

// easeValue evaluates fn at progress p over the unit interval. A nil fn is
// linear.
func easeValue(fn ease.TweenFunc, p float64) float64 {
	if fn == nil {
		return p
	}
	return float64(fn(float32(p), 0, 1, 1))
}

// EaseByName maps a configuration easing name to its function. Unknown
// names (and "") resolve to linear.
func EaseByName(name string) ease.TweenFunc {
	switch name {
	case "easeIn":
		return ease.InQuad
	case "easeOut":
		return ease.OutQuad
	case "easeInOut":
		return ease.InOutQuad
	default:
		return ease.Linear
	}
}
