package choreo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
)

func TestLerpNumber(t *testing.T) {
	if v := LerpNumber(2.0, 6.0, 0.25); v != 3 {
		t.Errorf("LerpNumber float = %f, want 3", v)
	}
	if v := LerpNumber(0, 10, 0.55); v != 5 {
		t.Errorf("LerpNumber int = %d, want 5 (truncated)", v)
	}
	if v := LerpNumber(float32(1), float32(3), 1.5); v != 4 {
		t.Errorf("LerpNumber overshoot = %f, want 4", v)
	}
}

func TestLerpVec(t *testing.T) {
	got := LerpVec2(Vec2{0, 10}, Vec2{10, 20}, 0.5)
	if diff := cmp.Diff(Vec2{5, 15}, got); diff != "" {
		t.Errorf("LerpVec2 mismatch (-want +got):\n%s", diff)
	}
	got3 := LerpVec3(Vec3{0, 0, 0}, Vec3{4, 8, -4}, 0.25)
	if diff := cmp.Diff(Vec3{1, 2, -1}, got3); diff != "" {
		t.Errorf("LerpVec3 mismatch (-want +got):\n%s", diff)
	}
	if v := (Vec2{1, 2}).Add(Vec2{3, 4}).Scale(2); v != (Vec2{8, 12}) {
		t.Errorf("Add/Scale = %v", v)
	}
}

func TestLerpColorEndpoints(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	blue, _ := colorful.Hex("#0000ff")

	for _, lerp := range []LerpFunc[colorful.Color]{LerpColor, LerpColorHcl} {
		if c := lerp(red, blue, 0); c.DistanceRgb(red) > 1e-3 {
			t.Errorf("t=0: got %s, want %s", c.Hex(), red.Hex())
		}
		if c := lerp(red, blue, 1); c.DistanceRgb(blue) > 1e-3 {
			t.Errorf("t=1: got %s, want %s", c.Hex(), blue.Hex())
		}
		mid := lerp(red, blue, 0.5)
		if mid.DistanceRgb(red) < 0.1 || mid.DistanceRgb(blue) < 0.1 {
			t.Errorf("midpoint %v too close to an endpoint", mid)
		}
	}
}
