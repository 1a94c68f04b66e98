package choreo

import "math"

// Repeat loops a phrase until its total duration elapses. In ping-pong mode
// every odd cycle plays the phrase backward. A total that is not a whole
// multiple of the wrapped duration truncates the final cycle.
type Repeat[T any] struct {
	p        Phrase[T]
	total    float64
	pingPong bool
}

// NewRepeat loops p from its start for total seconds.
func NewRepeat[T any](p Phrase[T], total float64) *Repeat[T] {
	if p == nil {
		panic("choreo: cannot repeat nil phrase")
	}
	return &Repeat[T]{p: p, total: clampDuration(total, "repeat")}
}

// NewPingPong alternates p forward and backward for total seconds.
func NewPingPong[T any](p Phrase[T], total float64) *Repeat[T] {
	r := NewRepeat(p, total)
	r.pingPong = true
	return r
}

// Duration returns the total playing time, not the wrapped phrase's.
func (r *Repeat[T]) Duration() float64 { return r.total }

// Value evaluates the wrapped phrase at the wrapped local time.
func (r *Repeat[T]) Value(t float64) T {
	return r.p.Value(r.localTime(t))
}

// Cycles returns how many times the wrapped phrase plays, counting a
// truncated final cycle as a fraction.
func (r *Repeat[T]) Cycles() float64 {
	d := r.p.Duration()
	if d <= 0 {
		return 1
	}
	return r.total / d
}

// localTime wraps t into the wrapped phrase's time span.
func (r *Repeat[T]) localTime(t float64) float64 {
	d := r.p.Duration()
	if d <= 0 {
		return t
	}
	t = min(max(t, 0), r.total)
	cycle := math.Floor(t / d)
	local := t - cycle*d
	if t > 0 && t == r.total && local == 0 {
		// The final boundary belongs to the end of the last cycle.
		cycle--
		local = d
	}
	if r.pingPong && int64(cycle)%2 == 1 {
		local = d - local
	}
	return local
}
