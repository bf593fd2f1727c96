package math3

import "math"

// Matrix2 is a row-major 2x2 matrix.
type Matrix2 struct {
	M11, M12 float64
	M21, M22 float64
}

func (m Matrix2) Determinant() float64 {
	return m.M11*m.M22 - m.M21*m.M12
}

// Matrix4 is a row-major 4x4 matrix. M{row}{col} names the component at
// that row and column. Every constructor except a raw literal starts from
// Identity and overrides only the fields it changes.
type Matrix4 struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// LookAtLH returns a left-handed view matrix looking from eye towards
// target with the given up direction.
func LookAtLH(eye, target, up Vector3) Matrix4 {
	zaxis := target.Sub(eye).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis).Normalize()

	m := Identity()
	m.M11, m.M21, m.M31 = xaxis.X, xaxis.Y, xaxis.Z
	m.M12, m.M22, m.M32 = yaxis.X, yaxis.Y, yaxis.Z
	m.M13, m.M23, m.M33 = zaxis.X, zaxis.Y, zaxis.Z
	m.M41 = -xaxis.Dot(eye)
	m.M42 = -yaxis.Dot(eye)
	m.M43 = -zaxis.Dot(eye)
	return m
}

// PerspectiveRH returns a right-handed perspective projection matrix from
// a vertical field of view in radians, an aspect ratio and the near and
// far clip distances. The result maps z through the homogeneous w so that
// after the perspective divide a larger depth value is nearer. Zero fov,
// aspect or far-near is undefined; the caller must supply valid values.
func PerspectiveRH(fov, aspect, znear, zfar float64) Matrix4 {
	yHalfScale := 0.5 / math.Tan(fov*0.5)
	xHalfScale := yHalfScale / aspect
	width := znear / xHalfScale
	height := znear / yHalfScale
	length := zfar - znear
	znearDoubled := znear * 2

	m := Identity()
	m.M11 = znearDoubled / width
	m.M22 = znearDoubled / height
	m.M33 = (-zfar - znear) / length
	m.M43 = (-znearDoubled * zfar) / length
	m.M34 = -1
	m.M44 = 0
	return m
}

// Scale returns a scaling matrix.
func Scale(s Vector3) Matrix4 {
	m := Identity()
	m.M11 = s.X
	m.M22 = s.Y
	m.M33 = s.Z
	return m
}

// Translation returns a translation matrix.
func Translation(offset Vector3) Matrix4 {
	m := Identity()
	m.M41 = offset.X
	m.M42 = offset.Y
	m.M43 = offset.Z
	return m
}

// Rotation returns the rotation matrix for q. The quaternion does not
// need to be normalized.
func Rotation(q Quaternion) Matrix4 {
	n := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z

	var s float64
	if n > epsilon {
		s = 2 / n
	}
	wx := s * q.W * q.X
	wy := s * q.W * q.Y
	wz := s * q.W * q.Z
	xx := s * q.X * q.X
	xy := s * q.X * q.Y
	xz := s * q.X * q.Z
	yy := s * q.Y * q.Y
	yz := s * q.Y * q.Z
	zz := s * q.Z * q.Z

	return Matrix4{
		1 - (yy + zz), xy - wz, xz + wy, 0,
		xy + wz, 1 - (xx + zz), yz - wx, 0,
		xz - wy, yz + wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}
}

const epsilon = 2.220446049250313e-16

func (m Matrix4) Add(n Matrix4) Matrix4 {
	return Matrix4{
		m.M11 + n.M11, m.M12 + n.M12, m.M13 + n.M13, m.M14 + n.M14,
		m.M21 + n.M21, m.M22 + n.M22, m.M23 + n.M23, m.M24 + n.M24,
		m.M31 + n.M31, m.M32 + n.M32, m.M33 + n.M33, m.M34 + n.M34,
		m.M41 + n.M41, m.M42 + n.M42, m.M43 + n.M43, m.M44 + n.M44,
	}
}

func (m Matrix4) Sub(n Matrix4) Matrix4 {
	return Matrix4{
		m.M11 - n.M11, m.M12 - n.M12, m.M13 - n.M13, m.M14 - n.M14,
		m.M21 - n.M21, m.M22 - n.M22, m.M23 - n.M23, m.M24 - n.M24,
		m.M31 - n.M31, m.M32 - n.M32, m.M33 - n.M33, m.M34 - n.M34,
		m.M41 - n.M41, m.M42 - n.M42, m.M43 - n.M43, m.M44 - n.M44,
	}
}

// MulScalar returns m scaled by s.
func (m Matrix4) MulScalar(s float64) Matrix4 {
	return Matrix4{
		m.M11 * s, m.M12 * s, m.M13 * s, m.M14 * s,
		m.M21 * s, m.M22 * s, m.M23 * s, m.M24 * s,
		m.M31 * s, m.M32 * s, m.M33 * s, m.M34 * s,
		m.M41 * s, m.M42 * s, m.M43 * s, m.M44 * s,
	}
}

// Mul returns the matrix product m * n.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	return Matrix4{
		m.M11*n.M11 + m.M12*n.M21 + m.M13*n.M31 + m.M14*n.M41,
		m.M11*n.M12 + m.M12*n.M22 + m.M13*n.M32 + m.M14*n.M42,
		m.M11*n.M13 + m.M12*n.M23 + m.M13*n.M33 + m.M14*n.M43,
		m.M11*n.M14 + m.M12*n.M24 + m.M13*n.M34 + m.M14*n.M44,

		m.M21*n.M11 + m.M22*n.M21 + m.M23*n.M31 + m.M24*n.M41,
		m.M21*n.M12 + m.M22*n.M22 + m.M23*n.M32 + m.M24*n.M42,
		m.M21*n.M13 + m.M22*n.M23 + m.M23*n.M33 + m.M24*n.M43,
		m.M21*n.M14 + m.M22*n.M24 + m.M23*n.M34 + m.M24*n.M44,

		m.M31*n.M11 + m.M32*n.M21 + m.M33*n.M31 + m.M34*n.M41,
		m.M31*n.M12 + m.M32*n.M22 + m.M33*n.M32 + m.M34*n.M42,
		m.M31*n.M13 + m.M32*n.M23 + m.M33*n.M33 + m.M34*n.M43,
		m.M31*n.M14 + m.M32*n.M24 + m.M33*n.M34 + m.M34*n.M44,

		m.M41*n.M11 + m.M42*n.M21 + m.M43*n.M31 + m.M44*n.M41,
		m.M41*n.M12 + m.M42*n.M22 + m.M43*n.M32 + m.M44*n.M42,
		m.M41*n.M13 + m.M42*n.M23 + m.M43*n.M33 + m.M44*n.M43,
		m.M41*n.M14 + m.M42*n.M24 + m.M43*n.M34 + m.M44*n.M44,
	}
}

// Inverse returns the inverse of m, computed by expansion of 2x2
// sub-determinants. The result is undefined for a singular matrix.
func (m Matrix4) Inverse() Matrix4 {
	s0 := m.M11*m.M22 - m.M21*m.M12
	s1 := m.M11*m.M23 - m.M21*m.M13
	s2 := m.M11*m.M24 - m.M21*m.M14
	s3 := m.M12*m.M23 - m.M22*m.M13
	s4 := m.M12*m.M24 - m.M22*m.M14
	s5 := m.M13*m.M24 - m.M23*m.M14

	c5 := m.M33*m.M44 - m.M43*m.M34
	c4 := m.M32*m.M44 - m.M42*m.M34
	c3 := m.M32*m.M43 - m.M42*m.M33
	c2 := m.M31*m.M44 - m.M41*m.M34
	c1 := m.M31*m.M43 - m.M41*m.M33
	c0 := m.M31*m.M42 - m.M41*m.M32

	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)

	return Matrix4{
		(m.M22*c5 - m.M23*c4 + m.M24*c3) * idet,
		(-m.M12*c5 + m.M13*c4 - m.M14*c3) * idet,
		(m.M42*s5 - m.M43*s4 + m.M44*s3) * idet,
		(-m.M32*s5 + m.M33*s4 - m.M34*s3) * idet,

		(-m.M21*c5 + m.M23*c2 - m.M24*c1) * idet,
		(m.M11*c5 - m.M13*c2 + m.M14*c1) * idet,
		(-m.M41*s5 + m.M43*s2 - m.M44*s1) * idet,
		(m.M31*s5 - m.M33*s2 + m.M34*s1) * idet,

		(m.M21*c4 - m.M22*c2 + m.M24*c0) * idet,
		(-m.M11*c4 + m.M12*c2 - m.M14*c0) * idet,
		(m.M41*s4 - m.M42*s2 + m.M44*s0) * idet,
		(-m.M31*s4 + m.M32*s2 - m.M34*s0) * idet,

		(-m.M21*c3 + m.M22*c1 - m.M23*c0) * idet,
		(m.M11*c3 - m.M12*c1 + m.M13*c0) * idet,
		(-m.M41*s3 + m.M42*s1 - m.M43*s0) * idet,
		(m.M31*s3 - m.M32*s1 + m.M33*s0) * idet,
	}
}
