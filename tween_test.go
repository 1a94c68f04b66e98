package choreo

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenReachesTarget(t *testing.T) {
	tw := NewTween(10, 100, 1, ease.Linear)

	if v := tw.Value(0.5); math.Abs(v-55) > 0.01 {
		t.Errorf("Value(0.5) = %f, want ~55", v)
	}
	if v := tw.Value(1); v != 100 {
		t.Errorf("Value(1) = %f, want exactly 100", v)
	}
	if v := tw.Value(-1); v != 10 {
		t.Errorf("Value(-1) = %f, want 10", v)
	}
}

func TestTweenVec2ReachesTarget(t *testing.T) {
	tw := NewTweenVec2(Vec2{10, 20}, Vec2{100, 200}, 1, ease.Linear)

	mid := tw.Value(0.5)
	if math.Abs(mid.X-55) > 0.01 || math.Abs(mid.Y-110) > 0.01 {
		t.Errorf("Value(0.5) = %v, want ~(55, 110)", mid)
	}
	if end := tw.Value(1); end != (Vec2{100, 200}) {
		t.Errorf("Value(1) = %v, want (100, 200)", end)
	}
}

func TestTweenVec3ReachesTarget(t *testing.T) {
	tw := NewTweenVec3(Vec3{}, Vec3{math.Pi, 2, -1}, 0.5, ease.OutCubic)

	if end := tw.Value(0.5); end != (Vec3{math.Pi, 2, -1}) {
		t.Errorf("Value(end) = %v", end)
	}
	if start := tw.Value(0); start != (Vec3{}) {
		t.Errorf("Value(0) = %v, want zero", start)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween(1, 2, 0, nil)
	if v := tw.Value(0); v != 2 {
		t.Errorf("Value(0) = %f, want 2", v)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	linear := NewTween(0, 100, 1, ease.Linear)
	cubic := NewTween(0, 100, 1, ease.OutCubic)

	// OutCubic should be ahead of linear at the midpoint.
	if cubic.Value(0.5)-linear.Value(0.5) < 1 {
		t.Errorf("linear=%f cubic=%f", linear.Value(0.5), cubic.Value(0.5))
	}
}

func TestTweenDrivesMotion(t *testing.T) {
	tl := NewTimeline()
	out := NewOutput(Vec2{})
	m := Apply[Vec2](tl, out, NewTweenVec2(Vec2{}, Vec2{50, 50}, 0.5, ease.Linear))

	finished := 0
	m.OnFinish = func(*Motion[Vec2]) { finished++ }

	for i := 0; i < 2; i++ {
		if err := tl.Step(0.25); err != nil {
			t.Fatal(err)
		}
	}
	if finished != 1 || out.Value() != (Vec2{50, 50}) {
		t.Errorf("finished = %d, value = %v", finished, out.Value())
	}
}

func TestTweenValueZeroAlloc(t *testing.T) {
	tw := NewTweenVec2(Vec2{}, Vec2{100, 100}, 1, ease.Linear)

	result := testing.AllocsPerRun(100, func() {
		_ = tw.Value(0.3)
	})
	if result > 0 {
		t.Errorf("TweenVec2.Value allocated %f times per run, want 0", result)
	}
}
