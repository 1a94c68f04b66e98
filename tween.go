package choreo

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween phrases evaluate gween tweens, one per channel. They run in float32
// and suit curves already written against gween's (t, b, c, d) easing
// signature. Ramp is exact in float64 and is preferred otherwise.
//
// Evaluation only seeks the underlying tweens, so a Tween phrase can be shared
// between Motions like any other Phrase.
type tweenChannels struct {
	tweens   [3]*gween.Tween
	end      [3]float64
	count    int
	duration float64
}

func newTweenChannels(from, to []float64, duration float64, fn ease.TweenFunc) tweenChannels {
	if fn == nil {
		fn = ease.Linear
	}
	c := tweenChannels{count: len(from), duration: clampDuration(duration, "tween")}
	for i := range c.count {
		c.tweens[i] = gween.New(float32(from[i]), float32(to[i]), float32(c.duration), fn)
		c.end[i] = to[i]
	}
	return c
}

// eval writes each channel's value at local time t into out. Past the end the
// exact float64 targets are returned, which also makes zero-duration tweens a
// step function.
func (c *tweenChannels) eval(t float64, out *[3]float64) {
	if t >= c.duration {
		*out = c.end
		return
	}
	for i := 0; i < c.count; i++ {
		v, _ := c.tweens[i].Set(float32(max(t, 0)))
		out[i] = float64(v)
	}
}

// Tween is a scalar phrase backed by a gween tween.
type Tween struct {
	ch tweenChannels
}

// NewTween creates a scalar tween from from to to. A nil fn is ease.Linear.
func NewTween(from, to, duration float64, fn ease.TweenFunc) *Tween {
	return &Tween{ch: newTweenChannels([]float64{from}, []float64{to}, duration, fn)}
}

// Duration returns the tween length in seconds.
func (t *Tween) Duration() float64 { return t.ch.duration }

// Value returns the eased value at local time at.
func (t *Tween) Value(at float64) float64 {
	var v [3]float64
	t.ch.eval(at, &v)
	return v[0]
}

// TweenVec2 tweens both components of a Vec2 with the same easing.
type TweenVec2 struct {
	ch tweenChannels
}

// NewTweenVec2 creates a two-channel tween.
func NewTweenVec2(from, to Vec2, duration float64, fn ease.TweenFunc) *TweenVec2 {
	return &TweenVec2{ch: newTweenChannels(
		[]float64{from.X, from.Y}, []float64{to.X, to.Y}, duration, fn)}
}

// Duration returns the tween length in seconds.
func (t *TweenVec2) Duration() float64 { return t.ch.duration }

// Value returns the eased position at local time at.
func (t *TweenVec2) Value(at float64) Vec2 {
	var v [3]float64
	t.ch.eval(at, &v)
	return Vec2{v[0], v[1]}
}

// TweenVec3 tweens all three components of a Vec3 with the same easing.
type TweenVec3 struct {
	ch tweenChannels
}

// NewTweenVec3 creates a three-channel tween.
func NewTweenVec3(from, to Vec3, duration float64, fn ease.TweenFunc) *TweenVec3 {
	return &TweenVec3{ch: newTweenChannels(
		[]float64{from.X, from.Y, from.Z}, []float64{to.X, to.Y, to.Z}, duration, fn)}
}

// Duration returns the tween length in seconds.
func (t *TweenVec3) Duration() float64 { return t.ch.duration }

// Value returns the eased vector at local time at.
func (t *TweenVec3) Value(at float64) Vec3 {
	var v [3]float64
	t.ch.eval(at, &v)
	return Vec3{v[0], v[1], v[2]}
}
