package choreo

import (
	"math"

	fease "github.com/fogleman/ease"
	"github.com/tanema/gween/ease"
)

// EaseFn remaps normalized time. Curves take t in [0, 1] and are expected to
// return 0 at t=0 and 1 at t=1; overshooting curves (back, elastic) may leave
// [0, 1] in between.
type EaseFn func(t float64) float64

// Core curves. These are float64-native and exact at the endpoints.
var (
	Linear     EaseFn = fease.Linear
	InQuad     EaseFn = fease.InQuad
	OutQuad    EaseFn = fease.OutQuad
	InOutQuad  EaseFn = fease.InOutQuad
	OutQuint   EaseFn = fease.OutQuint
	InOutCubic EaseFn = fease.InOutCubic
)

const defaultAtanFlatness = 15.0

// OutAtan decelerates along an arctangent curve. Steeper than OutQuint near
// t=0 and much flatter near t=1.
func OutAtan(t float64) float64 {
	return OutAtanWith(defaultAtanFlatness)(t)
}

// OutAtanWith returns an arctangent ease-out with the given flatness. Higher
// flatness values approach a step function.
func OutAtanWith(flatness float64) EaseFn {
	if flatness <= 0 {
		return Linear
	}
	norm := math.Atan(flatness)
	return func(t float64) float64 {
		return math.Atan(t*flatness) / norm
	}
}

// InAtanWith is the mirror of OutAtanWith.
func InAtanWith(flatness float64) EaseFn {
	if flatness <= 0 {
		return Linear
	}
	norm := math.Atan(flatness)
	return func(t float64) float64 {
		return 1 + math.Atan((t-1)*flatness)/norm
	}
}

// InOutAtanWith accelerates then decelerates around t=0.5.
func InOutAtanWith(flatness float64) EaseFn {
	if flatness <= 0 {
		return Linear
	}
	norm := 2 * math.Atan(0.5*flatness)
	return func(t float64) float64 {
		return 0.5 + math.Atan((t-0.5)*flatness)/norm
	}
}

// FromTween adapts a gween easing function to an EaseFn. gween curves work in
// float32 with (time, begin, change, duration) arguments; the adapter
// evaluates them over a unit range.
func FromTween(fn ease.TweenFunc) EaseFn {
	if fn == nil {
		return Linear
	}
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var easings = map[string]EaseFn{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"out-quint":    OutQuint,
	"in-out-cubic": InOutCubic,
	"out-atan":     OutAtan,
	"in-atan":      InAtanWith(defaultAtanFlatness),
	"in-out-atan":  InOutAtanWith(defaultAtanFlatness),

	"in-cubic":      FromTween(ease.InCubic),
	"out-cubic":     FromTween(ease.OutCubic),
	"in-quint":      FromTween(ease.InQuint),
	"in-out-quint":  FromTween(ease.InOutQuint),
	"in-sine":       FromTween(ease.InSine),
	"out-sine":      FromTween(ease.OutSine),
	"in-out-sine":   FromTween(ease.InOutSine),
	"in-expo":       FromTween(ease.InExpo),
	"out-expo":      FromTween(ease.OutExpo),
	"in-circ":       FromTween(ease.InCirc),
	"out-circ":      FromTween(ease.OutCirc),
	"in-back":       FromTween(ease.InBack),
	"out-back":      FromTween(ease.OutBack),
	"in-out-back":   FromTween(ease.InOutBack),
	"out-elastic":   FromTween(ease.OutElastic),
	"out-bounce":    FromTween(ease.OutBounce),
	"in-out-bounce": FromTween(ease.InOutBounce),
}

// EaseByName looks up a named curve such as "in-out-quad" or "out-bounce".
// The empty name resolves to Linear.
func EaseByName(name string) (EaseFn, bool) {
	if name == "" {
		return Linear, true
	}
	fn, ok := easings[name]
	return fn, ok
}

// RegisterEase adds or replaces a named curve used by animation scripts.
// Not safe to call while scripts are being loaded on another goroutine.
func RegisterEase(name string, fn EaseFn) {
	if fn == nil {
		panic("choreo: cannot register nil ease")
	}
	easings[name] = fn
}

// applyEase runs t through fn, treating nil as Linear.
func applyEase(fn EaseFn, t float64) float64 {
	if fn == nil {
		return t
	}
	return fn(t)
}
