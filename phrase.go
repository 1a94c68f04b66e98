package choreo

// Phrase is an atomic timed interpolation. Value is total: times before 0
// return the start value and times past Duration return the end value.
type Phrase[T any] interface {
	Duration() float64
	Value(t float64) T
}

// progress maps local time onto [0, 1]. A zero-duration phrase is a step
// function, so any t >= 0 is already at the end.
func progress(t, duration float64) float64 {
	switch {
	case t < 0:
		return 0
	case t >= duration:
		return 1
	default:
		return t / duration
	}
}

// Ramp interpolates between two values over its duration.
type Ramp[T any] struct {
	start, end T
	duration   float64
	lerp       LerpFunc[T]
	ease       EaseFn
}

// NewRamp creates a ramp from start to end. A nil ease is Linear. Negative
// durations are clamped to zero.
func NewRamp[T any](start, end T, duration float64, lerp LerpFunc[T], fn EaseFn) *Ramp[T] {
	if lerp == nil {
		panic("choreo: ramp needs a lerp function")
	}
	return &Ramp[T]{
		start:    start,
		end:      end,
		duration: clampDuration(duration, "ramp"),
		lerp:     lerp,
		ease:     fn,
	}
}

// Duration returns the ramp length in seconds.
func (r *Ramp[T]) Duration() float64 { return r.duration }

// Value returns the eased interpolation at local time t. The endpoints are
// returned exactly rather than through lerp.
func (r *Ramp[T]) Value(t float64) T {
	p := progress(t, r.duration)
	switch p {
	case 0:
		return r.start
	case 1:
		return r.end
	}
	return r.lerp(r.start, r.end, applyEase(r.ease, p))
}

// Start returns the value at local time 0.
func (r *Ramp[T]) Start() T { return r.start }

// End returns the value at the end of the ramp.
func (r *Ramp[T]) End() T { return r.end }

// Hold keeps a constant value for its duration.
type Hold[T any] struct {
	value    T
	duration float64
}

// NewHold creates a constant phrase.
func NewHold[T any](value T, duration float64) *Hold[T] {
	return &Hold[T]{value: value, duration: clampDuration(duration, "hold")}
}

// Duration returns the hold length in seconds.
func (h *Hold[T]) Duration() float64 { return h.duration }

// Value returns the held value regardless of t.
func (h *Hold[T]) Value(float64) T { return h.value }

// Blend mixes two phrases by a weight stored in its own Output, so the mix can
// itself be animated by a Motion on a Timeline.
type Blend[T any] struct {
	a, b Phrase[T]
	mix  *Output[float64]
	lerp LerpFunc[T]
}

// NewBlend creates a blend of a and b with the given initial mix weight.
func NewBlend[T any](a, b Phrase[T], mix float64, lerp LerpFunc[T]) *Blend[T] {
	if a == nil || b == nil {
		panic("choreo: blend needs two phrases")
	}
	if lerp == nil {
		panic("choreo: blend needs a lerp function")
	}
	return &Blend[T]{a: a, b: b, mix: NewOutput(mix), lerp: lerp}
}

// Duration is the longer of the two blended phrases.
func (b *Blend[T]) Duration() float64 {
	return max(b.a.Duration(), b.b.Duration())
}

// Value returns lerp(a(t), b(t), mix).
func (b *Blend[T]) Value(t float64) T {
	return b.lerp(b.a.Value(t), b.b.Value(t), b.mix.value)
}

// MixOutput returns the output holding the blend weight. Apply a Motion to it
// to cross-fade at runtime.
func (b *Blend[T]) MixOutput() *Output[float64] {
	return b.mix
}

// ProceduralFunc computes a value from normalized progress p in [0, 1] and the
// phrase duration.
type ProceduralFunc[T any] func(p, duration float64) T

// Procedural evaluates a caller-supplied function of time.
type Procedural[T any] struct {
	fn       ProceduralFunc[T]
	duration float64
}

// NewProcedural creates a phrase backed by fn.
func NewProcedural[T any](duration float64, fn ProceduralFunc[T]) *Procedural[T] {
	if fn == nil {
		panic("choreo: procedural phrase needs a function")
	}
	return &Procedural[T]{fn: fn, duration: clampDuration(duration, "procedural")}
}

// Duration returns the phrase length in seconds.
func (p *Procedural[T]) Duration() float64 { return p.duration }

// Value calls the function with clamped progress.
func (p *Procedural[T]) Value(t float64) T {
	return p.fn(progress(t, p.duration), p.duration)
}

// Reverse plays another phrase backward.
type Reverse[T any] struct {
	p Phrase[T]
}

// NewReverse wraps p so its end value comes first.
func NewReverse[T any](p Phrase[T]) *Reverse[T] {
	if p == nil {
		panic("choreo: cannot reverse nil phrase")
	}
	return &Reverse[T]{p: p}
}

// Duration matches the wrapped phrase.
func (r *Reverse[T]) Duration() float64 { return r.p.Duration() }

// Value evaluates the wrapped phrase at Duration-t.
func (r *Reverse[T]) Value(t float64) T {
	d := r.p.Duration()
	return r.p.Value(d - min(max(t, 0), d))
}
