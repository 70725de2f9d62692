// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag); tests and callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a zero pivot is encountered during LU/Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the Jacobi routine failed to converge
	// under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNonSymmetric signals that a matrix expected to be symmetric violated
	// symmetry within the requested tolerance.
	ErrNonSymmetric = errors.New("matrix: matrix is not symmetric within tol")
)

// Operation name constants for unified error wrapping.
const (
	opLU      = "LU"
	opInverse = "Inverse"
	opEigen   = "EigenSym"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
