package core

import "math"

// Quaternion represents a rotation as w + xi + yj + zk.
// The zero value is not a rotation; use IdentityQuaternion.
type Quaternion struct {
	W, X, Y, Z float64
}

// NewQuaternion creates a quaternion from its components
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// IdentityQuaternion returns the identity rotation (1, 0, 0, 0)
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle returns the rotation of angle radians about axis.
// The axis is normalized first.
func QuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	a := axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{W: math.Cos(angle / 2), X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// Add returns the component-wise sum
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

// Scale returns the quaternion multiplied by a scalar
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Mul returns the Hamilton product q·o. As a rotation it applies o first, then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Dot returns the 4D dot product
func (q Quaternion) Dot(o Quaternion) float64 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Norm returns the quaternion magnitude
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns a unit quaternion; the zero quaternion maps to identity
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return IdentityQuaternion()
	}
	return q.Scale(1 / n)
}

// Conjugate returns (w, -x, -y, -z)
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Inverse returns the multiplicative inverse (conjugate for unit quaternions)
func (q Quaternion) Inverse() Quaternion {
	n2 := q.Dot(q)
	if n2 == 0 {
		return Quaternion{}
	}
	return q.Conjugate().Scale(1 / n2)
}

// Rotate rotates v by the sandwich product q·v·q⁻¹
func (q Quaternion) Rotate(v Vec3) Vec3 {
	p := Quaternion{0, v.X, v.Y, v.Z}
	r := q.Mul(p).Mul(q.Inverse())
	return Vec3{r.X, r.Y, r.Z}
}

// ToMat3 returns the 3×3 rotation matrix of a unit quaternion
func (q Quaternion) ToMat3() Matrix {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return NewMatrix(3, 3,
		1-2*(y*y+z*z), 2*(x*y-w*z), 2*(x*z+w*y),
		2*(x*y+w*z), 1-2*(x*x+z*z), 2*(y*z-w*x),
		2*(x*z-w*y), 2*(y*z+w*x), 1-2*(x*x+y*y),
	)
}

// ToMat4 returns the homogeneous 4×4 rotation matrix of a unit quaternion
func (q Quaternion) ToMat4() Mat4 {
	r := q.ToMat3()
	m := IdentityMat4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.M[i][j] = r.Get(i, j)
		}
	}
	return m
}

// Slerp interpolates along the shortest arc between a (t=0) and b (t=1)
func Slerp(a, b Quaternion, t float64) Quaternion {
	cosTheta := a.Dot(b)
	if cosTheta < 0 {
		b = b.Scale(-1)
		cosTheta = -cosTheta
	}

	// Nearly parallel: fall back to normalized lerp
	if cosTheta > 0.9995 {
		return a.Scale(1 - t).Add(b.Scale(t)).Normalize()
	}

	theta := math.Acos(cosTheta)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return a.Scale(wa).Add(b.Scale(wb))
}
