package choreo

// Cue runs a function once its start offset has elapsed. It has no duration
// of its own and finishes in the same step it fires.
type Cue struct {
	item
	fn func()
}

// NewCue creates a cue that calls fn after delay seconds of parent time.
func NewCue(fn func(), delay float64) *Cue {
	if fn == nil {
		panic("choreo: cue needs a function")
	}
	c := &Cue{item: newItem(), fn: fn}
	c.SetStartTime(delay)
	return c
}

// Duration is always zero; the cue's timing lives in its start offset.
func (c *Cue) Duration() float64 { return 0 }

// ResetTime re-arms the cue so it fires again after its delay.
func (c *Cue) ResetTime() {
	c.reset(c.parentDir)
}

func (c *Cue) reset(dir float64) {
	c.resetTo(dir, 0)
	c.started = false
}

func (c *Cue) step(delta float64, st *stepStats) {
	rest, ready := c.consumeDelay(delta)
	if !ready {
		return
	}
	c.started = true
	if _, done := c.move(rest, 0); done {
		ev := c.event(EventFinish)
		st.callbacks++
		c.fn()
		emit(c.owner, ev)
	}
}

func (c *Cue) jumpTo(parentTime float64) {
	c.seek(parentTime, 0)
}
