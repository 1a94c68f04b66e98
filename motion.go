package choreo

// Motion binds a Phrase (usually a *Sequence) to an Output and carries the
// playback state: local time, signed speed, removal policy and lifecycle
// callbacks.
//
// Callbacks run inline during Timeline.Step. They may freely call ResetTime,
// SetSpeed or Cancel on any motion, replace their own callback fields, and add
// members to the Timeline being stepped; structural changes are applied once
// the current pass completes. A motion that resets or reverses itself inside
// OnFinish stays scheduled.
type Motion[T any] struct {
	item

	output *Output[T]
	gen    uint32
	source Phrase[T]

	// OnStart fires once the start offset has elapsed, before the first value
	// is written.
	OnStart func(m *Motion[T])
	// OnUpdate fires after the value is written on every step that moved
	// local time.
	OnUpdate func(m *Motion[T])
	// OnFinish fires after the boundary value is written, once per finishing
	// transition.
	OnFinish func(m *Motion[T])
}

// NewMotion creates a motion playing src into out. Any motion previously
// driving out is detached and will be removed from its Timeline on its next
// step.
func NewMotion[T any](out *Output[T], src Phrase[T]) *Motion[T] {
	if out == nil {
		panic("choreo: motion needs an output")
	}
	if src == nil {
		panic("choreo: motion needs a phrase")
	}
	m := &Motion[T]{item: newItem(), output: out, source: src}
	m.gen = out.connect(m)
	return m
}

// Apply creates a motion playing src into out and adds it to tl. The motion
// inherits the Timeline's default removal and start policies.
func Apply[T any](tl *Timeline, out *Output[T], src Phrase[T]) *Motion[T] {
	m := NewMotion(out, src)
	m.removeOnFinish = tl.defaultRemoveOnFinish
	m.startPolicy = tl.defaultStartPolicy
	tl.Add(m)
	return m
}

// ApplySequence starts an empty sequence at out's current value, applies it to
// tl and returns the sequence for chaining. The motion is reachable through
// out.Input().
func ApplySequence[T any](tl *Timeline, out *Output[T], lerp LerpFunc[T]) *Sequence[T] {
	seq := NewSequence(out.Value(), lerp)
	Apply[T](tl, out, seq)
	return seq
}

// Output returns the output this motion writes to.
func (m *Motion[T]) Output() *Output[T] { return m.output }

// Source returns the phrase being played.
func (m *Motion[T]) Source() Phrase[T] { return m.source }

// Sequence returns the source as a *Sequence, or nil if it is another kind of
// phrase.
func (m *Motion[T]) Sequence() *Sequence[T] {
	seq, _ := m.source.(*Sequence[T])
	return seq
}

// Duration returns the source phrase's duration.
func (m *Motion[T]) Duration() float64 { return m.source.Duration() }

// Value returns the source value at the current local time.
func (m *Motion[T]) Value() T { return m.source.Value(m.time) }

// IsStale reports whether the motion lost its output to Dispose, Disconnect
// or another motion.
func (m *Motion[T]) IsStale() bool {
	return m.stale || !m.output.live(m.gen)
}

// ResetTime rewinds to time 0, or to the end when playing backward.
func (m *Motion[T]) ResetTime() {
	m.reset(m.parentDir)
}

func (m *Motion[T]) reset(dir float64) {
	m.resetTo(dir, m.source.Duration())
}

func (m *Motion[T]) step(delta float64, st *stepStats) {
	if !m.output.live(m.gen) {
		m.markStale()
		return
	}
	rest, ready := m.consumeDelay(delta)
	if !ready {
		return
	}
	if !m.started {
		owner := m.owner
		m.started = true
		if m.OnStart != nil {
			st.callbacks++
			m.OnStart(m)
		}
		emit(owner, m.event(EventStart))
		if !m.output.live(m.gen) {
			m.markStale()
			return
		}
		// Removed or moved to another timeline by OnStart.
		if m.cancelled || m.owner != owner {
			return
		}
	}

	moved, done := m.move(rest, m.source.Duration())
	m.output.value = m.source.Value(m.time)

	if moved && m.OnUpdate != nil {
		st.callbacks++
		m.OnUpdate(m)
	}
	if done {
		ev := m.event(EventFinish)
		if m.OnFinish != nil {
			st.callbacks++
			m.OnFinish(m)
		}
		emit(m.owner, ev)
	}
}

func (m *Motion[T]) jumpTo(parentTime float64) {
	m.seek(parentTime, m.source.Duration())
	if !m.output.live(m.gen) {
		m.markStale()
		return
	}
	m.output.value = m.source.Value(m.time)
}
