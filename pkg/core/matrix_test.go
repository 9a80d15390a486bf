package core

import (
	"errors"
	"math"
	"testing"
)

func TestMatrix_Det(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Matrix
		expected float64
	}{
		{"Identity 3x3", IdentityMatrix(3), 1},
		{"2x2", NewMatrix(2, 2, 1, 2, 3, 4), -2},
		{"Needs pivoting", NewMatrix(3, 3, 0, 1, 2, 1, 0, 3, 4, -3, 8), -2},
		{"Singular", NewMatrix(2, 2, 1, 2, 2, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det, err := tt.matrix.Det()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(det-tt.expected) > 1e-9 {
				t.Errorf("Expected det %v, got %v", tt.expected, det)
			}
		})
	}
}

func TestMatrix_DetNotSquare(t *testing.T) {
	_, err := NewMatrix(2, 3).Det()
	if !errors.Is(err, ErrNotSquare) {
		t.Errorf("Expected ErrNotSquare, got %v", err)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	m := NewMatrix(3, 3,
		2, 0, 1,
		1, 3, 2,
		1, 1, 1,
	)
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	product, err := m.Mul(inv)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	identity := IdentityMatrix(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(product.Get(r, c)-identity.Get(r, c)) > 1e-12 {
				t.Errorf("M·M⁻¹ at (%d, %d): expected %v, got %v", r, c, identity.Get(r, c), product.Get(r, c))
			}
		}
	}
}

func TestMatrix_InverseSingular(t *testing.T) {
	_, err := NewMatrix(2, 2, 1, 2, 2, 4).Inverse()
	if !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}
}

func TestMatrix_ShapeErrors(t *testing.T) {
	a := NewMatrix(2, 3)
	b := NewMatrix(2, 2)

	if _, err := a.Add(b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Add: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := a.Subtract(b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Subtract: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := a.Mul(b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Mul: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := a.MulVec([]float64{1, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("MulVec: expected ErrShapeMismatch, got %v", err)
	}
}

func TestMatrix_At(t *testing.T) {
	m := NewMatrix(2, 3, 1, 2, 3, 4, 5, 6)

	v, err := m.At(1, 2)
	if err != nil || v != 6 {
		t.Errorf("At(1, 2): expected 6, got %v (err %v)", v, err)
	}

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, 3}} {
		if _, err := m.At(idx[0], idx[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d): expected ErrOutOfBounds, got %v", idx[0], idx[1], err)
		}
	}
}

func TestMatrix_TransposeAndMul(t *testing.T) {
	m := NewMatrix(2, 3, 1, 2, 3, 4, 5, 6)
	mt := m.Transpose()
	if mt.Rows() != 3 || mt.Cols() != 2 || mt.Get(2, 1) != 6 || mt.Get(0, 1) != 4 {
		t.Errorf("Unexpected transpose shape or values")
	}

	product, err := m.Mul(mt)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// [1 2 3; 4 5 6]·[1 4; 2 5; 3 6] = [14 32; 32 77]
	expected := NewMatrix(2, 2, 14, 32, 32, 77)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if product.Get(r, c) != expected.Get(r, c) {
				t.Errorf("Product at (%d, %d): expected %v, got %v", r, c, expected.Get(r, c), product.Get(r, c))
			}
		}
	}

	v, err := m.MulVec([]float64{1, 0, -1})
	if err != nil || v[0] != -2 || v[1] != -2 {
		t.Errorf("MulVec: expected [-2 -2], got %v (err %v)", v, err)
	}
}

func TestMatrix_CloneIsIndependent(t *testing.T) {
	m := FillMatrix(2, 2, 3)
	c := m.Clone()
	c.Set(0, 0, 9)
	if m.Get(0, 0) != 3 {
		t.Errorf("Clone shares storage with the original")
	}
}

func TestNewMatrix_PanicsOnValueCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected NewMatrix to panic on value count mismatch")
		}
	}()
	NewMatrix(2, 2, 1, 2, 3)
}
