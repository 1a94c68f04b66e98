package choreo

// Output is a value cell written by the engine and read by host code between
// steps. It is owned by whatever the animation targets, not by the Motion
// driving it.
//
// An Output is driven by at most one Motion. Binding a new Motion, calling
// Disconnect, or calling Dispose bumps the output's generation; the previously
// bound Motion sees the mismatch on its next step, finishes silently and is
// removed from its Timeline. The zero value is ready to use.
type Output[T any] struct {
	value    T
	input    *Motion[T]
	gen      uint32
	disposed bool
}

// NewOutput creates an output holding value.
func NewOutput[T any](value T) *Output[T] {
	return &Output[T]{value: value}
}

// Value returns the current value.
func (o *Output[T]) Value() T {
	return o.value
}

// Set overwrites the current value. A connected Motion keeps driving the
// output and will overwrite it on its next step.
func (o *Output[T]) Set(value T) {
	o.value = value
}

// Input returns the Motion currently driving this output, or nil.
func (o *Output[T]) Input() *Motion[T] {
	return o.input
}

// IsConnected reports whether a Motion is driving this output.
func (o *Output[T]) IsConnected() bool {
	return o.input != nil
}

// Disconnect detaches the driving Motion. The value is kept.
func (o *Output[T]) Disconnect() {
	o.gen++
	o.input = nil
}

// Dispose marks the output destroyed. Any Motion still bound to it stops
// writing and is removed on the next step. Calling Dispose twice is a no-op.
func (o *Output[T]) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.Disconnect()
}

// IsDisposed returns true if Dispose has been called.
func (o *Output[T]) IsDisposed() bool {
	return o.disposed
}

// connect binds m, detaching any previous Motion, and returns the generation
// m must present on every write.
func (o *Output[T]) connect(m *Motion[T]) uint32 {
	o.gen++
	o.input = m
	return o.gen
}

// live reports whether a Motion holding gen may still write to o.
func (o *Output[T]) live(gen uint32) bool {
	return o != nil && !o.disposed && o.gen == gen
}
