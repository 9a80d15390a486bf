package core

import (
	"fmt"
	"math"
)

// Mat4 is a 4×4 row-major matrix used for affine and projective transforms.
// Vectors are columns: a point p transforms as M·[p,1].
type Mat4 struct {
	M [4][4]float64
}

// IdentityMat4 returns the 4×4 identity
func IdentityMat4() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// TranslationMat4 returns a translation by t
func TranslationMat4(t Vec3) Mat4 {
	m := IdentityMat4()
	m.M[0][3] = t.X
	m.M[1][3] = t.Y
	m.M[2][3] = t.Z
	return m
}

// ScalingMat4 returns a non-uniform scale by s
func ScalingMat4(s Vec3) Mat4 {
	m := IdentityMat4()
	m.M[0][0] = s.X
	m.M[1][1] = s.Y
	m.M[2][2] = s.Z
	return m
}

// PerspectiveMat4 returns an OpenGL-style perspective projection.
// Camera-space -Z is forward and maps to NDC z in [-1, 1]; M(3,2) is -1.
func PerspectiveMat4(fovy, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovy/2)
	var m Mat4
	m.M[0][0] = f / aspect
	m.M[1][1] = f
	m.M[2][2] = (far + near) / (near - far)
	m.M[2][3] = 2 * far * near / (near - far)
	m.M[3][2] = -1
	return m
}

// OrthographicMat4 returns an OpenGL-style orthographic projection
func OrthographicMat4(left, right, bottom, top, near, far float64) Mat4 {
	m := IdentityMat4()
	m.M[0][0] = 2 / (right - left)
	m.M[1][1] = 2 / (top - bottom)
	m.M[2][2] = -2 / (far - near)
	m.M[0][3] = -(right + left) / (right - left)
	m.M[1][3] = -(top + bottom) / (top - bottom)
	m.M[2][3] = -(far + near) / (far - near)
	return m
}

// At returns element (r, c), or ErrOutOfBounds
func (a Mat4) At(r, c int) (float64, error) {
	if r < 0 || r > 3 || c < 0 || c > 3 {
		return 0, fmt.Errorf("element (%d, %d) of 4x4 matrix: %w", r, c, ErrOutOfBounds)
	}
	return a.M[r][c], nil
}

// Mul returns the product a·b (b is applied first)
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// MulVec4 returns a·v
func (a Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.M[0][3]*v.W,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.M[1][3]*v.W,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.M[2][3]*v.W,
		W: a.M[3][0]*v.X + a.M[3][1]*v.Y + a.M[3][2]*v.Z + a.M[3][3]*v.W,
	}
}

// TransformPoint applies the affine part including translation, (M·[p,1]).xyz
func (a Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*p.X + a.M[0][1]*p.Y + a.M[0][2]*p.Z + a.M[0][3],
		Y: a.M[1][0]*p.X + a.M[1][1]*p.Y + a.M[1][2]*p.Z + a.M[1][3],
		Z: a.M[2][0]*p.X + a.M[2][1]*p.Y + a.M[2][2]*p.Z + a.M[2][3],
	}
}

// TransformDirection applies the linear part only, (M·[d,0]).xyz
func (a Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*d.X + a.M[0][1]*d.Y + a.M[0][2]*d.Z,
		Y: a.M[1][0]*d.X + a.M[1][1]*d.Y + a.M[1][2]*d.Z,
		Z: a.M[2][0]*d.X + a.M[2][1]*d.Y + a.M[2][2]*d.Z,
	}
}

// Transpose returns the transpose
func (a Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = a.M[j][i]
		}
	}
	return r
}

// Det returns the determinant
func (a Mat4) Det() float64 {
	det, _ := a.ToMatrix().Det()
	return det
}

// Inverse returns the inverse, or ErrSingularMatrix
func (a Mat4) Inverse() (Mat4, error) {
	inv, err := a.ToMatrix().Inverse()
	if err != nil {
		return Mat4{}, err
	}
	return Mat4FromMatrix(inv)
}

// ApproxEquals reports whether every element differs by at most tolerance
func (a Mat4) ApproxEquals(b Mat4, tolerance float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(a.M[i][j]-b.M[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

// ToMatrix converts to a general 4×4 Matrix
func (a Mat4) ToMatrix() Matrix {
	m := NewMatrix(4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, a.M[i][j])
		}
	}
	return m
}

// Mat4FromMatrix converts a general 4×4 Matrix
func Mat4FromMatrix(m Matrix) (Mat4, error) {
	if m.Rows() != 4 || m.Cols() != 4 {
		return Mat4{}, fmt.Errorf("convert %dx%d matrix to Mat4: %w", m.Rows(), m.Cols(), ErrShapeMismatch)
	}
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.Get(i, j)
		}
	}
	return r, nil
}
