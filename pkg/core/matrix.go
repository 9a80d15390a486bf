package core

import (
	"fmt"
	"math"
)

// singularThreshold is the determinant magnitude at or below which inversion fails
const singularThreshold = 1e-12

// Matrix is a dense row-major matrix of arbitrary shape.
// Use Mat4 for transforms; Matrix covers the general R×C case.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a rows×cols matrix. With no values the matrix is zero-filled,
// otherwise exactly rows*cols values must be given in row-major order.
func NewMatrix(rows, cols int, values ...float64) Matrix {
	if rows <= 0 || cols <= 0 {
		panic("core: matrix dimensions must be positive")
	}
	data := make([]float64, rows*cols)
	if len(values) > 0 {
		if len(values) != rows*cols {
			panic(fmt.Sprintf("core: NewMatrix(%d, %d) got %d values", rows, cols, len(values)))
		}
		copy(data, values)
	}
	return Matrix{rows: rows, cols: cols, data: data}
}

// IdentityMatrix returns the n×n identity
func IdentityMatrix(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// FillMatrix returns a rows×cols matrix with every element set to value
func FillMatrix(rows, cols int, value float64) Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = value
	}
	return m
}

// Rows returns the number of rows
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m Matrix) Cols() int { return m.cols }

// At returns element (r, c), or ErrOutOfBounds
func (m Matrix) At(r, c int) (float64, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("element (%d, %d) of %dx%d matrix: %w", r, c, m.rows, m.cols, ErrOutOfBounds)
	}
	return m.data[r*m.cols+c], nil
}

// Get returns element (r, c) without a bounds check beyond the slice's own
func (m Matrix) Get(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set assigns element (r, c). Matrices share storage on copy, so use Clone first
// when the original must stay untouched.
func (m Matrix) Set(r, c int, value float64) {
	m.data[r*m.cols+c] = value
}

// Clone returns a deep copy
func (m Matrix) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Add returns the element-wise sum
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return Matrix{}, fmt.Errorf("add %dx%d and %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}
	result := m.Clone()
	for i := range result.data {
		result.data[i] += other.data[i]
	}
	return result, nil
}

// Subtract returns the element-wise difference
func (m Matrix) Subtract(other Matrix) (Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return Matrix{}, fmt.Errorf("subtract %dx%d and %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}
	result := m.Clone()
	for i := range result.data {
		result.data[i] -= other.data[i]
	}
	return result, nil
}

// Scale returns the matrix multiplied by a scalar
func (m Matrix) Scale(s float64) Matrix {
	result := m.Clone()
	for i := range result.data {
		result.data[i] *= s
	}
	return result
}

// Mul returns the matrix product m·other
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.cols != other.rows {
		return Matrix{}, fmt.Errorf("multiply %dx%d by %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}
	result := NewMatrix(m.rows, other.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < other.cols; c++ {
			sum := 0.0
			for k := 0; k < m.cols; k++ {
				sum += m.data[r*m.cols+k] * other.data[k*other.cols+c]
			}
			result.data[r*result.cols+c] = sum
		}
	}
	return result, nil
}

// MulVec returns the matrix-vector product m·v
func (m Matrix) MulVec(v []float64) ([]float64, error) {
	if len(v) != m.cols {
		return nil, fmt.Errorf("multiply %dx%d by vector of length %d: %w", m.rows, m.cols, len(v), ErrShapeMismatch)
	}
	result := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		sum := 0.0
		for c := 0; c < m.cols; c++ {
			sum += m.data[r*m.cols+c] * v[c]
		}
		result[r] = sum
	}
	return result, nil
}

// Transpose returns the cols×rows transpose
func (m Matrix) Transpose() Matrix {
	result := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			result.data[c*m.rows+r] = m.data[r*m.cols+c]
		}
	}
	return result
}

// Det returns the determinant using LU decomposition with partial pivoting
func (m Matrix) Det() (float64, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("determinant of %dx%d matrix: %w", m.rows, m.cols, ErrNotSquare)
	}
	lu := m.Clone()
	n := m.rows
	det := 1.0
	for col := 0; col < n; col++ {
		pivot := lu.pivotRow(col)
		if lu.data[pivot*n+col] == 0 {
			return 0, nil
		}
		if pivot != col {
			lu.swapRows(pivot, col)
			det = -det
		}
		p := lu.data[col*n+col]
		det *= p
		for r := col + 1; r < n; r++ {
			f := lu.data[r*n+col] / p
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				lu.data[r*n+c] -= f * lu.data[col*n+c]
			}
		}
	}
	return det, nil
}

// Inverse returns the inverse using Gauss-Jordan elimination with partial pivoting.
// Matrices with |det| <= 1e-12 return ErrSingularMatrix.
func (m Matrix) Inverse() (Matrix, error) {
	det, err := m.Det()
	if err != nil {
		return Matrix{}, err
	}
	if math.Abs(det) <= singularThreshold {
		return Matrix{}, fmt.Errorf("invert %dx%d matrix (det %g): %w", m.rows, m.cols, det, ErrSingularMatrix)
	}

	n := m.rows
	work := m.Clone()
	inv := IdentityMatrix(n)
	for col := 0; col < n; col++ {
		pivot := work.pivotRow(col)
		if pivot != col {
			work.swapRows(pivot, col)
			inv.swapRows(pivot, col)
		}
		p := work.data[col*n+col]
		for c := 0; c < n; c++ {
			work.data[col*n+c] /= p
			inv.data[col*n+c] /= p
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := work.data[r*n+col]
			if f == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				work.data[r*n+c] -= f * work.data[col*n+c]
				inv.data[r*n+c] -= f * inv.data[col*n+c]
			}
		}
	}
	return inv, nil
}

// pivotRow returns the row at or below col with the largest magnitude in column col
func (m Matrix) pivotRow(col int) int {
	best := col
	bestAbs := math.Abs(m.data[col*m.cols+col])
	for r := col + 1; r < m.rows; r++ {
		if a := math.Abs(m.data[r*m.cols+col]); a > bestAbs {
			best, bestAbs = r, a
		}
	}
	return best
}

func (m Matrix) swapRows(a, b int) {
	ra := m.data[a*m.cols : (a+1)*m.cols]
	rb := m.data[b*m.cols : (b+1)*m.cols]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}
