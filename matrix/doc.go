// SPDX-License-Identifier: MIT
// Package matrix provides the small fixed-size linear algebra used by the
// geometry kernels: 3-vectors, 3×3 matrices, an LU-based inverse and a
// Jacobi eigen-decomposition for symmetric 3×3 input.
//
// What & Why:
//
//	Atomic structures live in three dimensions: positions are 3-vectors and a
//	simulation cell is a 3×3 matrix whose rows are the lattice vectors. Value
//	types (Vec3, Mat3) keep those hot paths allocation-free and make copies
//	explicit, so kernels can never mutate a caller's structure by accident.
//
// Conventions:
//
//   - Mat3 is row-major; Mat3[i] is the i-th row (the i-th lattice vector of a cell).
//   - Fractional → cartesian is a row-vector product: r = s·C (VecMul).
//   - All kernels are deterministic: fixed loop orders, no hidden randomness.
//
// Errors:
//
//	ErrSingular        - a zero (or below-eps) pivot was met during LU/Inverse.
//	ErrEigenFailed     - Jacobi rotations did not converge within maxIter.
//	ErrNonSymmetric    - EigenSym received a matrix that is not symmetric within tol.
//
// Complexity:
//
//	Every operation is O(1) (fixed 3×3 size); Inverse and EigenSym do a bounded
//	number of flops.
package matrix
