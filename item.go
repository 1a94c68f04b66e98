package choreo

import "math"

// Steppable is a member of a Timeline: a *Motion, a *Cue or a nested
// *Timeline acting as a group.
type Steppable interface {
	// Time returns local playback time in seconds.
	Time() float64
	// Duration returns the local time at which a forward item finishes.
	Duration() float64
	// IsFinished reports whether the item rests on its finishing boundary.
	IsFinished() bool
	// ResetTime rewinds the item to the start of its playback direction and
	// re-arms its start offset.
	ResetTime()
	// Cancel removes the item from its Timeline.
	Cancel()

	base() *item
	step(delta float64, st *stepStats)
	jumpTo(parentTime float64)
	reset(dir float64)
}

// StartPolicy decides whether OnStart fires again after ResetTime.
type StartPolicy uint8

const (
	StartOnce    StartPolicy = iota // OnStart fires only the first time an item plays
	StartOnReset                    // every ResetTime returns the item to pending
)

// itemIDCounter is a plain counter; choreo is single-threaded.
var itemIDCounter uint32

func nextItemID() uint32 {
	itemIDCounter++
	return itemIDCounter
}

// item holds the playback state shared by every Steppable.
type item struct {
	// ID is unique per process and reported in lifecycle events.
	ID uint32
	// Name is optional and only used for events and debug output.
	Name string

	owner *Timeline

	time      float64
	speed     float64
	delay     float64 // start offset, in parent time
	delayLeft float64
	parentDir float64 // sign of the parent's effective speed, as of the last step

	started        bool
	finished       bool
	stale          bool
	cancelled      bool
	removeOnFinish bool
	startPolicy    StartPolicy
}

func newItem() item {
	return item{ID: nextItemID(), speed: 1, parentDir: 1, removeOnFinish: true}
}

func (i *item) base() *item { return i }

// Time returns local playback time in seconds.
func (i *item) Time() float64 { return i.time }

// Speed returns the playback speed. Negative speeds play backward.
func (i *item) Speed() float64 { return i.speed }

// SetSpeed changes the playback speed. Flipping the sign of the speed returns
// a finished item to playing, so it finishes again at the opposite boundary.
func (i *item) SetSpeed(speed float64) {
	if (speed < 0) != (i.speed < 0) {
		i.finished = false
	}
	i.speed = speed
}

// StartTime returns the start offset.
func (i *item) StartTime() float64 { return i.delay }

// SetStartTime delays the item until its parent has advanced by offset
// seconds. The delay is re-armed by ResetTime.
func (i *item) SetStartTime(offset float64) {
	offset = clampDuration(offset, "start offset")
	i.delay = offset
	i.delayLeft = offset
}

// IsStarted reports whether OnStart has fired for the current play.
func (i *item) IsStarted() bool { return i.started }

// IsFinished reports whether the item rests on its finishing boundary.
func (i *item) IsFinished() bool { return i.finished }

// RemoveOnFinish reports whether the owning Timeline drops the item once it
// finishes.
func (i *item) RemoveOnFinish() bool { return i.removeOnFinish }

// SetRemoveOnFinish overrides the removal policy inherited from the Timeline.
func (i *item) SetRemoveOnFinish(remove bool) { i.removeOnFinish = remove }

// StartPolicy returns the item's OnStart policy.
func (i *item) StartPolicy() StartPolicy { return i.startPolicy }

// SetStartPolicy overrides the OnStart policy inherited from the Timeline.
func (i *item) SetStartPolicy(p StartPolicy) { i.startPolicy = p }

// Owner returns the Timeline the item belongs to, or nil.
func (i *item) Owner() *Timeline { return i.owner }

// Cancel removes the item from its Timeline. During a step the removal is
// applied when the current pass completes and the item is not visited again.
func (i *item) Cancel() {
	i.cancelled = true
	if i.owner != nil && !i.owner.visiting {
		i.owner.compact()
	}
}

// forward reports the effective playback direction.
func (i *item) forward() bool {
	return i.parentDir*i.speed >= 0
}

// consumeDelay spends parent time on the start offset. It returns the parent
// time left over and false while the item is still waiting.
func (i *item) consumeDelay(delta float64) (float64, bool) {
	if i.delayLeft <= 0 {
		return delta, true
	}
	a := math.Abs(delta)
	if a < i.delayLeft {
		i.delayLeft -= a
		return 0, false
	}
	rest := a - i.delayLeft
	i.delayLeft = 0
	return math.Copysign(rest, delta), true
}

// move advances local time by delta*speed, clamps it to [0, duration] and
// updates the finished flag. Finishing is direction-aware: forward items
// finish at duration, backward items at 0.
func (i *item) move(delta, duration float64) (moved, justFinished bool) {
	prev := i.time
	i.time = min(max(prev+delta*i.speed, 0), duration)
	moved = i.time != prev

	var atEnd bool
	if i.forward() {
		atEnd = i.time >= duration
	} else {
		atEnd = i.time <= 0
	}
	was := i.finished
	i.finished = atEnd
	return moved, atEnd && !was
}

// resetTo rewinds to the start of the playback direction given by dir.
func (i *item) resetTo(dir, duration float64) {
	if dir*i.speed >= 0 {
		i.time = 0
	} else {
		i.time = duration
	}
	i.finished = false
	i.delayLeft = i.delay
	if i.startPolicy == StartOnReset {
		i.started = false
	}
}

// seek places the item at parent time p on the forward time axis. It reports
// false while p falls inside the start offset.
func (i *item) seek(p, duration float64) bool {
	rel := p - i.delay
	i.finished = false
	if rel < 0 {
		i.delayLeft = -rel
		i.time = 0
		return false
	}
	i.delayLeft = 0
	i.time = min(rel*math.Abs(i.speed), duration)
	return true
}

func (i *item) markStale() {
	if !i.stale {
		debugf("item %d %q: target output is gone, removing", i.ID, i.Name)
	}
	i.stale = true
	i.finished = true
}

func (i *item) event(typ EventType) Event {
	return Event{Type: typ, ID: i.ID, Name: i.Name, Time: i.time}
}
