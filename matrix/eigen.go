// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"
)

// Default Jacobi controls.
const (
	DefaultEigenTol     = 1e-12
	DefaultEigenMaxIter = 100
)

// EigenSym performs the cyclic Jacobi eigen-decomposition of a symmetric 3×3 matrix.
//
// Implementation:
//   - Stage 1: validate symmetry within tol.
//   - Stage 2: repeatedly zero the largest off-diagonal entry with a plane
//     rotation, accumulating the rotations in Q.
//   - Stage 3: sort eigenpairs by ascending eigenvalue.
//
// Returns eigenvalues (ascending) and a matrix whose ROWS are the matching
// unit eigenvectors.
//
// Errors:
//   - ErrNonSymmetric if m is not symmetric within tol.
//   - ErrEigenFailed if off-diagonal mass stays above tol after maxIter sweeps.
//
// AI-Hints:
//   - Used for PCA of point clouds: the eigenvector of the largest eigenvalue is
//     the main direction of spread, near-zero eigenvalues reveal flat or linear sets.
func EigenSym(m Mat3, tol float64, maxIter int) (Vec3, Mat3, error) {
	if !m.IsSymmetric(math.Max(tol, 1e-9)) {
		return Vec3{}, Mat3{}, matrixErrorf(opEigen, ErrNonSymmetric)
	}
	a := m
	q := Identity()

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		// pick the largest off-diagonal |a[p][q]|
		p, r := 0, 1
		off := math.Abs(a[0][1])
		if v := math.Abs(a[0][2]); v > off {
			off, p, r = v, 0, 2
		}
		if v := math.Abs(a[1][2]); v > off {
			off, p, r = v, 1, 2
		}
		if off < tol {
			converged = true
			break
		}

		app, aqq, apq := a[p][p], a[r][r], a[p][r]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		for k := 0; k < 3; k++ {
			if k == p || k == r {
				continue
			}
			akp, akq := a[k][p], a[k][r]
			a[k][p] = c*akp - s*akq
			a[p][k] = a[k][p]
			a[k][r] = s*akp + c*akq
			a[r][k] = a[k][r]
		}
		a[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[r][r] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p][r], a[r][p] = 0, 0

		for k := 0; k < 3; k++ {
			qkp, qkq := q[k][p], q[k][r]
			q[k][p] = c*qkp - s*qkq
			q[k][r] = s*qkp + c*qkq
		}
	}
	if !converged {
		off := math.Abs(a[0][1]) + math.Abs(a[0][2]) + math.Abs(a[1][2])
		if off >= tol {
			return Vec3{}, Mat3{}, matrixErrorf(opEigen, ErrEigenFailed)
		}
	}

	idx := []int{0, 1, 2}
	sort.SliceStable(idx, func(i, j int) bool { return a[idx[i]][idx[i]] < a[idx[j]][idx[j]] })

	var (
		vals Vec3
		vecs Mat3
	)
	for n, k := range idx {
		vals[n] = a[k][k]
		vecs[n] = q.Column(k)
	}

	return vals, vecs, nil
}
