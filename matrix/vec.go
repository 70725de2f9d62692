// SPDX-License-Identifier: MIT

package matrix

import "math"

// Vec3 is a cartesian or fractional 3-vector.
type Vec3 [3]float64

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns α·v.
func (v Vec3) Scale(alpha float64) Vec3 {
	return Vec3{alpha * v[0], alpha * v[1], alpha * v[2]}
}

// Neg returns −v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the vector product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm2 returns the squared euclidean length of v.
func (v Vec3) Norm2() float64 { return v.Dot(v) }

// Norm returns the euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns v/|v|. The zero vector is returned unchanged.
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Scale(1 / n)
}

// Dist returns |v − w|.
func (v Vec3) Dist(w Vec3) float64 { return v.Sub(w).Norm() }

// ApproxEqual reports whether every component of v and w differs by at most tol.
func (v Vec3) ApproxEqual(w Vec3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v[i]-w[i]) > tol {
			return false
		}
	}

	return true
}

// Angle returns the angle between v and w in degrees, in [0, 180].
// If either vector is zero the angle is reported as 0.
func Angle(v, w Vec3) float64 {
	nv, nw := v.Norm(), w.Norm()
	if nv == 0 || nw == 0 {
		return 0
	}
	c := v.Dot(w) / (nv * nw)
	// clamp rounding noise before acos
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return math.Acos(c) * 180 / math.Pi
}

// Mean returns the arithmetic mean of vs; the zero vector for empty input.
func Mean(vs []Vec3) Vec3 {
	var sum Vec3
	if len(vs) == 0 {
		return sum
	}
	for _, v := range vs {
		sum = sum.Add(v)
	}

	return sum.Scale(1 / float64(len(vs)))
}
