package math3

import "math"

// Quaternion is a rotation expressed as x, y, z, w components. In this
// renderer quaternions exist only as an intermediate between Euler angles
// and rotation matrices; they are never composed or normalized on their
// own.
type Quaternion struct {
	X, Y, Z, W float64
}

// FromEuler builds a quaternion from Euler angles in radians, where
// euler.X is pitch, euler.Y is yaw and euler.Z is roll.
// See https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles
func FromEuler(euler Vector3) Quaternion {
	pitch := euler.X
	yaw := euler.Y
	roll := euler.Z

	t0 := math.Cos(yaw * 0.5)
	t1 := math.Sin(yaw * 0.5)
	t2 := math.Cos(roll * 0.5)
	t3 := math.Sin(roll * 0.5)
	t4 := math.Cos(pitch * 0.5)
	t5 := math.Sin(pitch * 0.5)

	return Quaternion{
		X: t0*t3*t4 - t1*t2*t5,
		Y: t0*t2*t5 + t1*t3*t4,
		Z: t1*t2*t4 - t0*t3*t5,
		W: t0*t2*t4 + t1*t3*t5,
	}
}

// ToEuler returns the Euler angles of q as (pitch, yaw, roll) in radians.
func (q Quaternion) ToEuler() Vector3 {
	ysqr := q.Y * q.Y
	t0 := -2*(ysqr+q.Z*q.Z) + 1
	t1 := 2 * (q.X*q.Y + q.W*q.Z)
	t2 := -2 * (q.X*q.Z - q.W*q.Y)
	t3 := 2 * (q.Y*q.Z + q.W*q.X)
	t4 := -2*(q.X*q.X+ysqr) + 1

	if t2 > 1 {
		t2 = 1
	}
	if t2 < -1 {
		t2 = -1
	}

	return Vector3{
		X: math.Asin(t2),
		Y: math.Atan2(t1, t0),
		Z: math.Atan2(t3, t4),
	}
}
