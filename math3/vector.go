// Package math3 implements the vector, matrix and quaternion math used by
// the software renderer. All scene-space math is double precision; the
// matrix convention is row-major with row vectors, so a point is
// transformed as point * M and transforms compose left to right.
package math3

import "math"

// Vector2 is a 2-component double precision vector.
type Vector2 struct {
	X, Y float64
}

// V2 returns the vector (x, y).
func V2(x, y float64) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.X + w.X, v.Y + w.Y}
}

func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v.X - w.X, v.Y - w.Y}
}

// Mul returns the component-wise product of v and w.
func (v Vector2) Mul(w Vector2) Vector2 {
	return Vector2{v.X * w.X, v.Y * w.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

func (v Vector2) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// Cross returns the scalar 2D cross product of v and w.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vector2) Min(w Vector2) Vector2 {
	return Vector2{math.Min(v.X, w.X), math.Min(v.Y, w.Y)}
}

func (v Vector2) Max(w Vector2) Vector2 {
	return Vector2{math.Max(v.X, w.X), math.Max(v.Y, w.Y)}
}

// Lerp returns the linear interpolation between v and w at t.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return v.Add(w.Sub(v).Scale(t))
}

// Vector3 is a 3-component double precision vector.
type Vector3 struct {
	X, Y, Z float64
}

// V3 returns the vector (x, y, z).
func V3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// One3 returns the vector (1, 1, 1).
func One3() Vector3 {
	return Vector3{1, 1, 1}
}

// UnitY returns the vector (0, 1, 0).
func UnitY() Vector3 {
	return Vector3{0, 1, 0}
}

func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns the component-wise product of v and w.
func (v Vector3) Mul(w Vector3) Vector3 {
	return Vector3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v divided by s.
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vector3) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// Normalize returns v scaled to unit length. The result is undefined when
// the length of v is zero; the caller must guard against that.
func (v Vector3) Normalize() Vector3 {
	return v.Div(v.Length())
}

// Lerp returns the linear interpolation between v and w at t.
func (v Vector3) Lerp(w Vector3, t float64) Vector3 {
	return v.Add(w.Sub(v).Scale(t))
}

func (v Vector3) Min(w Vector3) Vector3 {
	return Vector3{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

func (v Vector3) Max(w Vector3) Vector3 {
	return Vector3{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

// Clamp returns v clamped component-wise to [min, max].
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return v.Max(min).Min(max)
}

// XY returns the x and y components of v.
func (v Vector3) XY() Vector2 {
	return Vector2{v.X, v.Y}
}

// Transform returns v extended to a homogeneous point (x, y, z, 1) and
// multiplied by m.
func (v Vector3) Transform(m Matrix4) Vector4 {
	return Vector4{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + m.M44,
	}
}

// TransformCoordinate transforms v by m and performs the perspective
// divide. The divide produces NaN or Inf components when the transformed
// w is zero, which happens for points exactly on the camera plane; such
// values propagate and the resulting pixel writes are dropped by the
// device's bounds checks.
func (v Vector3) TransformCoordinate(m Matrix4) Vector3 {
	h := v.Transform(m)
	return h.XYZ().Div(h.W)
}

// Vector4 is a 4-component double precision vector. W is the homogeneous
// coordinate used for the perspective divide.
type Vector4 struct {
	X, Y, Z, W float64
}

// V4 returns the vector (x, y, z, w).
func V4(x, y, z, w float64) Vector4 {
	return Vector4{x, y, z, w}
}

func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

func (v Vector4) Sub(w Vector4) Vector4 {
	return Vector4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Scale returns v scaled by s.
func (v Vector4) Scale(s float64) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v divided by s.
func (v Vector4) Div(s float64) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// XYZ returns the x, y and z components of v.
func (v Vector4) XYZ() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}
