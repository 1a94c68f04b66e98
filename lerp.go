package choreo

import "github.com/lucasb-eyer/go-colorful"

// LerpFunc blends a toward b by weight t. t=0 yields a, t=1 yields b. Eased
// weights may overshoot [0, 1].
type LerpFunc[T any] func(a, b T, t float64) T

// Number is the set of scalar types LerpNumber can blend.
type Number interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// LerpNumber linearly interpolates scalars. Integer results truncate.
func LerpNumber[T Number](a, b T, t float64) T {
	return T(float64(a) + (float64(b)-float64(a))*t)
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LerpVec2 interpolates each component independently.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Vec3 is a 3D vector, used for Euler rotations among other things.
type Vec3 struct {
	X, Y, Z float64
}

// LerpVec3 interpolates each component independently.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t, a.Z + (b.Z-a.Z)*t}
}

// LerpColor blends in CIE L*a*b* space, which avoids the muddy midpoints of
// RGB blending.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendLab(b, t)
}

// LerpColorHcl blends in HCL space, travelling around the hue wheel.
func LerpColorHcl(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendHcl(b, t).Clamped()
}
