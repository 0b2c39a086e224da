package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat3 is a 3x3 matrix stored column-major: element (row, col) lives at col*3+row.
type Mat3 [9]float64

// Mat4 is a 4x4 matrix stored column-major: element (row, col) lives at col*4+row.
// The layout matches mgl64.Mat4 and what GL expects for uniformMatrix4fv.
type Mat4 [16]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationX returns a rotation of angle radians around the X axis
func RotationX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotationY returns a rotation of angle radians around the Y axis
func RotationY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotationZ returns a rotation of angle radians around the Z axis
func RotationZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Rotation composes per-axis rotations as Ry · Rx · Rz, so Z is applied first.
func Rotation(angleX, angleY, angleZ float64) Mat3 {
	return RotationY(angleY).Mul(RotationX(angleX)).Mul(RotationZ(angleZ))
}

// At returns the element at (row, col)
func (m Mat3) At(row, col int) float64 {
	return m[col*3+row]
}

// Mul returns m · other
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[k*3+row] * other[col*3+k]
			}
			out[col*3+row] = sum
		}
	}
	return out
}

// Apply returns m · v
func (m Mat3) Apply(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix (the inverse for pure rotations)
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Identity4 returns the 4x4 identity matrix
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix that moves points by t
func Translation(t Vector3) Mat4 {
	m := Identity4()
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// FromMat3 embeds a 3x3 linear transform into a 4x4 matrix
func FromMat3(r Mat3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	}
}

// At returns the element at (row, col)
func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

// Mul returns m · other
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint applies m to p with an implicit w of 1. There is no perspective
// divide: every matrix in this pipeline is affine or orthographic, so w stays 1.
func (m Mat4) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// Inverse returns the general inverse of m. ok is false for singular matrices.
func (m Mat4) Inverse() (inv Mat4, ok bool) {
	g := mgl64.Mat4(m)
	if g.Det() == 0 {
		return Mat4{}, false
	}
	return Mat4(g.Inv()), true
}

// Float32 converts the matrix to the single precision layout GL uploads use
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// viewBasis returns the orthonormal camera basis for a look-at setup.
// up must not be parallel to eye-target; callers keep pitch short of the poles.
func viewBasis(eye, target, up Vector3) (right, trueUp, forward Vector3) {
	forward = eye.Sub(target).Normalize()
	right = up.Cross(forward).Normalize()
	trueUp = forward.Cross(right).Normalize()
	return right, trueUp, forward
}

// LookAt builds the world-to-camera view matrix. The camera looks down its -Z
// axis, so a point in front of the eye ends up with negative z.
func LookAt(eye, target, up Vector3) Mat4 {
	x, y, z := viewBasis(eye, target, up)
	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// ViewInverse builds the camera-to-world matrix for the same eye/target/up,
// undoing LookAt without a general inversion.
func ViewInverse(eye, target, up Vector3) Mat4 {
	x, y, z := viewBasis(eye, target, up)
	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		eye.X, eye.Y, eye.Z, 1,
	}
}

// Ortho builds an orthographic projection mapping the given box to clip space
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// OrthoSymmetric builds an orthographic projection centered on the view axis
func OrthoSymmetric(halfWidth, halfHeight, near, far float64) Mat4 {
	return Ortho(-halfWidth, halfWidth, -halfHeight, halfHeight, near, far)
}
