// SPDX-License-Identifier: MIT

package matrix

import "math"

// pivotEps is the smallest pivot magnitude accepted by LU before the input is
// reported as singular.
const pivotEps = 1e-12

// LU computes the factorization P·m = L·U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: for each column k pick the row with the largest |m[i][k]|, i ≥ k.
//   - Stage 2: swap it into position k and record the swap in perm.
//   - Stage 3: eliminate below the pivot, storing multipliers in L.
//
// Returns L (unit lower triangular), U (upper triangular) and perm, where
// perm[i] is the original row now at position i.
//
// Determinism:
//   - Ties between equal pivot candidates keep the lowest row index.
//
// Errors:
//   - ErrSingular if a pivot magnitude falls below pivotEps.
func LU(m Mat3) (Mat3, Mat3, [3]int, error) {
	var (
		l    = Identity()
		u    = m
		perm = [3]int{0, 1, 2}
	)
	for k := 0; k < 3; k++ {
		p := k
		best := math.Abs(u[k][k])
		for i := k + 1; i < 3; i++ {
			if v := math.Abs(u[i][k]); v > best {
				best, p = v, i
			}
		}
		if best < pivotEps {
			return Mat3{}, Mat3{}, perm, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			u[k], u[p] = u[p], u[k]
			perm[k], perm[p] = perm[p], perm[k]
			// swap the already computed multipliers
			for j := 0; j < k; j++ {
				l[k][j], l[p][j] = l[p][j], l[k][j]
			}
		}
		for i := k + 1; i < 3; i++ {
			f := u[i][k] / u[k][k]
			l[i][k] = f
			for j := k; j < 3; j++ {
				u[i][j] -= f * u[k][j]
			}
		}
	}

	return l, u, perm, nil
}

// Inverse returns m⁻¹ by solving m·X = I column by column with the LU factors.
//
// Complexity: O(1), three forward/back substitutions on 3×3 triangles.
//
// Errors:
//   - ErrSingular (wrapped with the Inverse tag) when m is not invertible.
func Inverse(m Mat3) (Mat3, error) {
	l, u, perm, err := LU(m)
	if err != nil {
		return Mat3{}, matrixErrorf(opInverse, err)
	}
	var inv Mat3
	for col := 0; col < 3; col++ {
		// b = P·e_col
		var b Vec3
		for i := 0; i < 3; i++ {
			if perm[i] == col {
				b[i] = 1
			}
		}
		// forward: L·y = b
		var y Vec3
		for i := 0; i < 3; i++ {
			s := b[i]
			for j := 0; j < i; j++ {
				s -= l[i][j] * y[j]
			}
			y[i] = s
		}
		// backward: U·x = y
		var x Vec3
		for i := 2; i >= 0; i-- {
			s := y[i]
			for j := i + 1; j < 3; j++ {
				s -= u[i][j] * x[j]
			}
			x[i] = s / u[i][i]
		}
		for i := 0; i < 3; i++ {
			inv[i][col] = x[i]
		}
	}

	return inv, nil
}

// Solve returns x with x·m = v (row-vector system), i.e. the fractional
// coordinates of a cartesian vector v in the basis given by the rows of m.
func Solve(m Mat3, v Vec3) (Vec3, error) {
	inv, err := Inverse(m)
	if err != nil {
		return Vec3{}, err
	}

	return inv.VecMul(v), nil
}
