package core

import "fmt"

// Transform is an affine object-to-world transform that keeps its matrix and
// inverse in sync. The fields are unexported so neither can drift.
type Transform struct {
	m   Mat4
	inv Mat4
}

// IdentityTransform returns the identity transform
func IdentityTransform() Transform {
	return Transform{m: IdentityMat4(), inv: IdentityMat4()}
}

// NewTransform builds a transform from a matrix, computing its inverse.
// A singular matrix returns an error wrapping ErrSingularMatrix.
func NewTransform(m Mat4) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transform{}, fmt.Errorf("new transform: %w", err)
	}
	return Transform{m: m, inv: inv}, nil
}

// Translate returns a translation by t
func Translate(t Vec3) Transform {
	return Transform{
		m:   TranslationMat4(t),
		inv: TranslationMat4(t.Negate()),
	}
}

// Scale returns a non-uniform scale by s. Any zero component panics,
// since the result could not be inverted.
func Scale(s Vec3) Transform {
	if s.X == 0 || s.Y == 0 || s.Z == 0 {
		panic(fmt.Sprintf("core: zero scale component in %v", s))
	}
	return Transform{
		m:   ScalingMat4(s),
		inv: ScalingMat4(NewVec3(1/s.X, 1/s.Y, 1/s.Z)),
	}
}

// Rotate returns the rotation represented by q (normalized first)
func Rotate(q Quaternion) Transform {
	q = q.Normalize()
	return Transform{
		m:   q.ToMat4(),
		inv: q.Conjugate().ToMat4(),
	}
}

// FromTRS builds T·R·S: a point is scaled, then rotated, then translated
func FromTRS(translation Vec3, rotation Quaternion, scale Vec3) Transform {
	return Translate(translation).Compose(Rotate(rotation)).Compose(Scale(scale))
}

// LookAt builds a camera-to-world transform positioned at eye. The camera looks
// along its own -Z with +Y up; its world basis is (right, true-up, -forward).
func LookAt(eye, target, up Vec3) Transform {
	forward := target.Subtract(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	m := Mat4{M: [4][4]float64{
		{right.X, trueUp.X, -forward.X, eye.X},
		{right.Y, trueUp.Y, -forward.Y, eye.Y},
		{right.Z, trueUp.Z, -forward.Z, eye.Z},
		{0, 0, 0, 1},
	}}

	// The basis is orthonormal, so the inverse is [Rᵀ | -Rᵀ·eye]
	inv := Mat4{M: [4][4]float64{
		{right.X, right.Y, right.Z, -right.Dot(eye)},
		{trueUp.X, trueUp.Y, trueUp.Z, -trueUp.Dot(eye)},
		{-forward.X, -forward.Y, -forward.Z, forward.Dot(eye)},
		{0, 0, 0, 1},
	}}
	return Transform{m: m, inv: inv}
}

// Inverse returns the inverse transform by swapping the two matrices
func (t Transform) Inverse() Transform {
	return Transform{m: t.inv, inv: t.m}
}

// Compose returns t·other, which applies other first and then t
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		m:   t.m.Mul(other.m),
		inv: other.inv.Mul(t.inv),
	}
}

// Matrix returns the object-to-world matrix M
func (t Transform) Matrix() Mat4 {
	return t.m
}

// InverseMatrix returns M⁻¹
func (t Transform) InverseMatrix() Mat4 {
	return t.inv
}

// TransformPoint applies M to a point (w=1)
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.m.TransformPoint(p)
}

// TransformDirection applies M to a direction (w=0), without normalizing
func (t Transform) TransformDirection(d Vec3) Vec3 {
	return t.m.TransformDirection(d)
}

// TransformNormal applies (M⁻¹)ᵀ to a normal and normalizes the result
func (t Transform) TransformNormal(n Vec3) Vec3 {
	inv := &t.inv.M
	return Vec3{
		X: inv[0][0]*n.X + inv[1][0]*n.Y + inv[2][0]*n.Z,
		Y: inv[0][1]*n.X + inv[1][1]*n.Y + inv[2][1]*n.Z,
		Z: inv[0][2]*n.X + inv[1][2]*n.Y + inv[2][2]*n.Z,
	}.Normalize()
}

// TransformRay moves a ray through M. The direction is not renormalized,
// so the ray parameter t addresses the same point before and after.
func (t Transform) TransformRay(r Ray) Ray {
	return Ray{
		Origin:    t.TransformPoint(r.Origin),
		Direction: t.TransformDirection(r.Direction),
		TMin:      r.TMin,
		TMax:      r.TMax,
	}
}

// TransformAABB returns the bounding box of the eight transformed corners.
// The empty box stays empty.
func (t Transform) TransformAABB(box AABB) AABB {
	if box.IsEmpty() {
		return box
	}
	result := EmptyAABB()
	for _, corner := range box.Corners() {
		result = result.ExpandPoint(t.TransformPoint(corner))
	}
	return result
}
