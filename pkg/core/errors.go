package core

import "errors"

var (
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is (nearly) zero
	ErrSingularMatrix = errors.New("core: singular matrix")

	// ErrNotSquare is returned by determinant and inverse on non-square matrices
	ErrNotSquare = errors.New("core: matrix is not square")

	// ErrShapeMismatch is returned when matrix dimensions are incompatible
	ErrShapeMismatch = errors.New("core: matrix shape mismatch")

	// ErrOutOfBounds is returned by checked element access past the dimensions
	ErrOutOfBounds = errors.New("core: index out of bounds")
)
