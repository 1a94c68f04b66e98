package choreo

import "sort"

// Sequence chains phrases of one value type end to end. Its duration is the
// sum of its phrase durations. Each phrase is expected to start where the
// previous one ended; RampTo, Hold and Set build phrases that do.
//
// A Sequence is itself a Phrase, so it can be wrapped by Repeat, PingPong,
// Reverse or Blend. Phrases must not change duration once appended.
type Sequence[T any] struct {
	initial  T
	lerp     LerpFunc[T]
	phrases  []Phrase[T]
	ends     []float64 // cumulative end time of each phrase
	duration float64
}

// NewSequence creates an empty sequence resting at initial. lerp is used by
// RampTo and may be nil when only Then, Hold and Set are used.
func NewSequence[T any](initial T, lerp LerpFunc[T]) *Sequence[T] {
	return &Sequence[T]{initial: initial, lerp: lerp}
}

// Then appends p and returns the sequence for chaining.
func (s *Sequence[T]) Then(p Phrase[T]) *Sequence[T] {
	if p == nil {
		panic("choreo: cannot append nil phrase")
	}
	s.duration += p.Duration()
	s.phrases = append(s.phrases, p)
	s.ends = append(s.ends, s.duration)
	return s
}

// RampTo appends a ramp from the current end value to end.
func (s *Sequence[T]) RampTo(end T, duration float64, fn EaseFn) *Sequence[T] {
	if s.lerp == nil {
		panic("choreo: RampTo on a sequence without a lerp function")
	}
	return s.Then(NewRamp(s.EndValue(), end, duration, s.lerp, fn))
}

// Hold appends a phrase that keeps the current end value for duration.
func (s *Sequence[T]) Hold(duration float64) *Sequence[T] {
	return s.Then(NewHold(s.EndValue(), duration))
}

// Set appends an instantaneous jump to value.
func (s *Sequence[T]) Set(value T) *Sequence[T] {
	return s.Then(NewHold(value, 0))
}

// Duration returns the sum of all phrase durations.
func (s *Sequence[T]) Duration() float64 {
	return s.duration
}

// Len returns the number of phrases.
func (s *Sequence[T]) Len() int {
	return len(s.phrases)
}

// Value returns the value of the phrase containing t, evaluated at t relative
// to that phrase's start. Times outside [0, Duration] clamp to the first
// phrase's start or the last phrase's end. An empty sequence returns its
// initial value.
func (s *Sequence[T]) Value(t float64) T {
	n := len(s.phrases)
	if n == 0 {
		return s.initial
	}
	if t >= s.duration {
		last := s.phrases[n-1]
		return last.Value(last.Duration())
	}
	if t <= 0 {
		return s.phrases[0].Value(t)
	}
	i := sort.Search(n, func(i int) bool { return s.ends[i] > t })
	start := 0.0
	if i > 0 {
		start = s.ends[i-1]
	}
	return s.phrases[i].Value(t - start)
}

// StartValue returns the value before any time has elapsed.
func (s *Sequence[T]) StartValue() T {
	if len(s.phrases) == 0 {
		return s.initial
	}
	return s.phrases[0].Value(-1)
}

// EndValue returns the value at the end of the last phrase.
func (s *Sequence[T]) EndValue() T {
	return s.Value(s.duration)
}
