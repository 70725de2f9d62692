// SPDX-License-Identifier: MIT

package matrix

import "math"

// Mat3 is a row-major 3×3 matrix. For a simulation cell, Mat3[i] is the
// i-th lattice vector.
type Mat3 [3]Vec3

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag returns a diagonal matrix with the given entries.
func Diag(a, b, c float64) Mat3 {
	return Mat3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Mul returns the product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			r[i][j] = sum
		}
	}

	return r
}

// MulVec returns the column-vector product m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// VecMul returns the row-vector product v·m, i.e. Σ v[i]·m[i].
// With m a cell matrix this maps fractional coordinates to cartesian ones.
func (m Mat3) VecMul(v Vec3) Vec3 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// Det returns the determinant of m (scalar triple product of its rows).
func (m Mat3) Det() float64 {
	return m[0].Dot(m[1].Cross(m[2]))
}

// Column returns the j-th column of m.
func (m Mat3) Column(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// IsSymmetric reports whether |m[i][j] − m[j][i]| ≤ tol for all i<j.
func (m Mat3) IsSymmetric(tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(m[i][j]-m[j][i]) > tol {
				return false
			}
		}
	}

	return true
}

// ApproxEqual reports whether every entry of m and n differs by at most tol.
func (m Mat3) ApproxEqual(n Mat3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if !m[i].ApproxEqual(n[i], tol) {
			return false
		}
	}

	return true
}

// Covariance returns the 3×3 sample scatter matrix Σ (p−c)(p−c)ᵀ / n about the
// centroid c of ps, together with c. Empty input yields zeros.
func Covariance(ps []Vec3) (Mat3, Vec3) {
	var cov Mat3
	c := Mean(ps)
	if len(ps) == 0 {
		return cov, c
	}
	for _, p := range ps {
		d := p.Sub(c)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}
	inv := 1 / float64(len(ps))
	for i := 0; i < 3; i++ {
		cov[i] = cov[i].Scale(inv)
	}

	return cov, c
}
