package choreo

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrReentrantStep is returned when Step is called on a Timeline, or on a
	// descendant of a Timeline, that is already being stepped.
	ErrReentrantStep = errors.New("choreo: re-entrant step")
	// ErrNegativeDelta is returned when Step is given a negative delta time.
	// Use a negative speed to play backward.
	ErrNegativeDelta = errors.New("choreo: negative delta time")
)

// Timeline is an ordered collection of Motions, Cues and nested Timelines
// advanced once per frame by Step. Members are visited in insertion order.
//
// A Timeline added to another Timeline is a group: it is stepped as a single
// member, scaled by its own speed and delayed by its own start offset. A group
// finishes once all of its members have finished, and is then subject to the
// parent's removal policy like any other member.
//
// There is no global animation manager; hosts own their Timelines and call
// Step themselves.
type Timeline struct {
	item

	members []Steppable
	pending []Steppable // added during a pass
	visit   []Steppable // snapshot of members for the current pass

	defaultRemoveOnFinish bool
	defaultStartPolicy    StartPolicy
	speedOut              *Output[float64]
	sink                  EventSink

	stepping bool
	visiting bool
	stats    stepStats

	// OnStart fires the first time the timeline advances past its start offset.
	OnStart func(t *Timeline)
	// OnUpdate fires after every step that moved the timeline's own time.
	OnUpdate func(t *Timeline)
	// OnFinish fires when every member has finished (or none remain).
	OnFinish func(t *Timeline)
}

// NewTimeline creates an empty timeline. Members added through Apply and Cue
// are removed when they finish unless SetDefaultRemoveOnFinish(false) is set.
func NewTimeline() *Timeline {
	return &Timeline{
		item:                  newItem(),
		defaultRemoveOnFinish: true,
	}
}

// Step advances every member by dt seconds of host time scaled by the
// timeline's speed. dt=0 writes no new values but may still fire boundary
// callbacks for members already resting exactly on a boundary.
//
// Step must not be called from a callback running inside Step on the same
// Timeline or any of its ancestors; doing so returns ErrReentrantStep (and
// panics in debug mode). If a callback panics, the pass is finalized before
// the panic propagates: removals are applied and queued additions are
// flushed.
func (t *Timeline) Step(dt float64) error {
	if t.busy() {
		if debugMode {
			panic(fmt.Sprintf("choreo debug: re-entrant Step on timeline %d %q", t.ID, t.Name))
		}
		return ErrReentrantStep
	}
	if dt < 0 || math.IsNaN(dt) {
		return ErrNegativeDelta
	}

	t.stats = stepStats{}
	var t0 time.Time
	if debugMode {
		t0 = time.Now()
	}

	if t.owner == nil {
		t.parentDir = 1
	}
	t.step(dt, &t.stats)

	if debugMode {
		t.stats.stepTime = time.Since(t0)
		t.debugLog(t.stats)
	}
	return nil
}

func (t *Timeline) step(delta float64, st *stepStats) {
	t.stepping = true
	defer t.endStep()

	rest, ready := t.consumeDelay(delta)
	if !ready {
		return
	}
	if !t.started {
		owner := t.owner
		t.started = true
		if t.OnStart != nil {
			st.callbacks++
			t.OnStart(t)
		}
		emit(t, t.event(EventStart))
		if owner != nil && (t.cancelled || t.owner != owner) {
			return
		}
	}

	speed := t.currentSpeed()
	local := rest * speed
	// Members swept at the end of the pass still count toward this step's
	// clamp, so a group keeps its finishing time.
	d := t.Duration()
	t.stepMembers(local, st)

	prev := t.time
	t.time = min(max(prev+local, 0), max(d, t.Duration()))
	if t.time != prev && t.OnUpdate != nil {
		st.callbacks++
		t.OnUpdate(t)
	}

	done := t.allFinished()
	was := t.finished
	t.finished = done
	if done && !was {
		ev := t.event(EventFinish)
		if t.OnFinish != nil {
			st.callbacks++
			t.OnFinish(t)
		}
		emit(t, ev)
	}
}

func (t *Timeline) endStep() {
	t.stepping = false
}

// stepMembers visits a snapshot of the member list in insertion order.
// Members cancelled earlier in the pass are skipped; members added during the
// pass wait for the next step.
func (t *Timeline) stepMembers(local float64, st *stepStats) {
	t.visiting = true
	defer t.endPass(st)

	dir := t.effectiveDir()
	t.visit = append(t.visit[:0], t.members...)
	for _, m := range t.visit {
		b := m.base()
		if b.cancelled || b.owner != t {
			continue
		}
		b.parentDir = dir
		st.visited++
		m.step(local, st)
	}
}

// endPass finalizes a visitation pass. It runs deferred so a panicking
// callback cannot leave the timeline mid-pass.
func (t *Timeline) endPass(st *stepStats) {
	t.visiting = false
	clear(t.visit)
	t.visit = t.visit[:0]
	st.removed += t.compact()
}

// compact drops cancelled, stale and finished-and-removable members, then
// appends members queued during the pass. It returns the number removed.
func (t *Timeline) compact() int {
	removed := 0
	kept := t.members[:0]
	for _, m := range t.members {
		b := m.base()
		if b.owner != t || b.cancelled || b.stale || (b.finished && b.removeOnFinish) {
			if b.owner == t {
				b.owner = nil
			}
			removed++
			emit(t, b.event(EventRemove))
			continue
		}
		kept = append(kept, m)
	}
	clear(t.members[len(kept):])
	t.members = kept

	for _, m := range t.pending {
		b := m.base()
		if b.owner != t || b.cancelled {
			if b.owner == t {
				b.owner = nil
			}
			continue
		}
		t.members = append(t.members, m)
	}
	clear(t.pending)
	t.pending = t.pending[:0]
	return removed
}

// Add appends a member. Adding a Timeline makes it a group of this one.
// During a step the member is queued and first visited on the next step.
// A member removed from another Timeline during that timeline's step may be
// added here right away. Panics if s is nil, still belongs to another
// Timeline, or is a Timeline that is t or one of its ancestors.
func (t *Timeline) Add(s Steppable) {
	if s == nil {
		panic("choreo: cannot add nil member")
	}
	b := s.base()
	if b.owner == t && !b.cancelled {
		return
	}
	// A member cancelled mid-pass keeps its old owner until that pass ends;
	// it may still move to t, and the old timeline drops it on its sweep.
	if b.owner != nil && b.owner != t && !b.cancelled {
		panic("choreo: member already belongs to another timeline")
	}
	if g, ok := s.(*Timeline); ok && isAncestor(g, t) {
		panic("choreo: adding timeline would create a cycle")
	}
	wasQueued := b.owner == t
	b.owner = t
	b.cancelled = false
	b.parentDir = t.effectiveDir()
	if wasQueued || (t.visiting && t.holds(s)) {
		// Removed earlier in this pass and still in members or pending.
		return
	}
	if t.visiting {
		t.pending = append(t.pending, s)
		return
	}
	t.members = append(t.members, s)
}

// holds reports whether s is still listed in members or pending.
func (t *Timeline) holds(s Steppable) bool {
	for _, m := range t.members {
		if m == s {
			return true
		}
	}
	for _, m := range t.pending {
		if m == s {
			return true
		}
	}
	return false
}

// Cue schedules fn to run after delay seconds of this timeline's time. The
// cue inherits the default removal policy.
func (t *Timeline) Cue(fn func(), delay float64) *Cue {
	c := NewCue(fn, delay)
	c.removeOnFinish = t.defaultRemoveOnFinish
	t.Add(c)
	return c
}

// Remove detaches s. No-op if s is not a member.
func (t *Timeline) Remove(s Steppable) {
	if s == nil || s.base().owner != t {
		return
	}
	s.Cancel()
}

// Clear removes every member, including ones queued during the current pass.
func (t *Timeline) Clear() {
	for _, m := range t.members {
		m.base().cancelled = true
	}
	for _, m := range t.pending {
		m.base().cancelled = true
	}
	if !t.visiting {
		t.compact()
	}
}

// Members returns the member list. The returned slice MUST NOT be mutated.
func (t *Timeline) Members() []Steppable {
	return t.members
}

// Len returns the number of members, excluding ones queued during a pass.
func (t *Timeline) Len() int {
	return len(t.members)
}

// Empty reports whether the timeline has no members.
func (t *Timeline) Empty() bool {
	return len(t.members) == 0 && len(t.pending) == 0
}

// Duration returns the time at which the last member finishes when played
// forward: the maximum over members of start offset plus duration divided by
// speed. Members with zero speed are ignored.
func (t *Timeline) Duration() float64 {
	d := 0.0
	for _, m := range t.members {
		b := m.base()
		if b.speed == 0 {
			continue
		}
		d = max(d, b.delay+m.Duration()/math.Abs(b.speed))
	}
	return d
}

// JumpTo places every member at time p on the forward time axis and writes
// their values. No callbacks fire; a member landing on a boundary finishes on
// the next step.
func (t *Timeline) JumpTo(p float64) {
	t.finished = false
	t.delayLeft = 0
	t.time = min(max(p, 0), t.Duration())
	for _, m := range t.members {
		m.jumpTo(t.time)
	}
}

func (t *Timeline) jumpTo(parentTime float64) {
	d := t.Duration()
	t.seek(parentTime, d)
	for _, m := range t.members {
		m.jumpTo(t.time)
	}
}

// ResetTime rewinds the timeline and all of its members to the start of
// their playback direction, re-arming start offsets. Safe to call from any
// callback, including the timeline's own OnFinish.
func (t *Timeline) ResetTime() {
	t.reset(t.parentDir)
}

func (t *Timeline) reset(dir float64) {
	t.resetTo(dir, t.Duration())
	inner := dir * sign(t.currentSpeed())
	for _, m := range t.members {
		m.reset(inner)
	}
	for _, m := range t.pending {
		m.reset(inner)
	}
}

// DefaultRemoveOnFinish reports the removal policy given to new members.
func (t *Timeline) DefaultRemoveOnFinish() bool { return t.defaultRemoveOnFinish }

// SetDefaultRemoveOnFinish sets the removal policy given to members created
// by Apply and Cue. Existing members keep their policy.
func (t *Timeline) SetDefaultRemoveOnFinish(remove bool) {
	t.defaultRemoveOnFinish = remove
}

// DefaultStartPolicy returns the OnStart policy given to new members.
func (t *Timeline) DefaultStartPolicy() StartPolicy { return t.defaultStartPolicy }

// SetDefaultStartPolicy sets the OnStart policy given to members created by
// Apply.
func (t *Timeline) SetDefaultStartPolicy(p StartPolicy) {
	t.defaultStartPolicy = p
}

// SetSpeedOutput multiplies the timeline's speed by the value of out on every
// step, so playback speed can itself be animated. Pass nil to detach.
func (t *Timeline) SetSpeedOutput(out *Output[float64]) {
	t.speedOut = out
}

// SetEventSink forwards lifecycle events of this timeline and its members to
// sink. Groups without their own sink use their nearest ancestor's.
func (t *Timeline) SetEventSink(sink EventSink) {
	t.sink = sink
}

// IsStepping reports whether Step is currently running on this timeline.
func (t *Timeline) IsStepping() bool {
	return t.stepping
}

func (t *Timeline) currentSpeed() float64 {
	if t.speedOut != nil && !t.speedOut.disposed {
		return t.speed * t.speedOut.value
	}
	return t.speed
}

// effectiveDir is the direction members of t move in.
func (t *Timeline) effectiveDir() float64 {
	return t.parentDir * sign(t.currentSpeed())
}

func (t *Timeline) allFinished() bool {
	for _, m := range t.members {
		if !m.IsFinished() {
			return false
		}
	}
	return true
}

// busy reports whether t or any ancestor is mid-step.
func (t *Timeline) busy() bool {
	for p := t; p != nil; p = p.owner {
		if p.stepping {
			return true
		}
	}
	return false
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Timeline) bool {
	for p := node; p != nil; p = p.owner {
		if p == candidate {
			return true
		}
	}
	return false
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
