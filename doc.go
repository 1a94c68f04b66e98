// Package choreo is a frame-stepped tweening engine.
//
// Choreo schedules many independently timed interpolations, composes simple
// interpolations into complex ones, groups animations that run together, and
// runs callbacks when animations start, progress and finish. It draws
// nothing; host code reads animated values out of [Output] cells between
// steps.
//
// # Quick start
//
// Build a [Sequence] of phrases, bind it to an [Output] with [Apply], and
// call [Timeline.Step] once per frame:
//
//	tl := choreo.NewTimeline()
//	x := choreo.NewOutput(0.0)
//
//	seq := choreo.NewSequence(0.0, choreo.LerpNumber[float64]).
//		RampTo(10, 1.0, choreo.InOutQuad).
//		Hold(0.5).
//		RampTo(0, 1.0, choreo.OutQuint)
//	choreo.Apply(tl, x, seq)
//
//	// in the game loop
//	if err := tl.Step(dt); err != nil {
//		return err
//	}
//	draw(x.Value())
//
// # Phrases
//
// A [Phrase] maps local time to a value. Built-in kinds are [Ramp], [Hold],
// [Blend] (whose mix weight is itself an animatable Output), [Procedural],
// [Reverse], and [Repeat] (see [NewRepeat] and [NewPingPong]). [Tween] and its
// vector variants evaluate gween tweens for curves written against gween's
// easing signature. A Sequence is a Phrase too, so sequences nest inside
// repeats and blends.
//
// # Timelines and groups
//
// A [Timeline] visits its members in insertion order. Each [Motion] advances
// by dt times its own speed times the timeline's speed, writes its value, and
// fires OnStart, OnUpdate and OnFinish as it crosses lifecycle boundaries.
// Finished members are removed unless removal is disabled per motion or per
// timeline.
//
// Adding a Timeline to another makes it a group with its own speed and start
// offset. Groups are plain pointers: the parent and any callback closures can
// share one.
//
// Callbacks may reset, reverse, cancel or add animations on the timeline
// that is running them:
//
//	m := choreo.Apply(tl, x, seq)
//	m.OnFinish = func(m *choreo.Motion[float64]) {
//		m.SetSpeed(-m.Speed()) // ping-pong forever
//		m.ResetTime()
//	}
//
// # Scripts
//
// [LoadScript] reads named float and color tracks from YAML (or JSON) so
// animations can be tuned without recompiling. Color tracks blend in
// L*a*b* space via [go-colorful].
//
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
package choreo
