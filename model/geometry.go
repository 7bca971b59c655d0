package model

import (
	"errors"
	"math"
)

// Vec3 represents a 3-component real vector.
type Vec3 [3]float64

// Scale returns the vector with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// ErrSingular is returned by Inverse when the determinant is zero
// within tolerance.
var ErrSingular = errors.New("model: singular matrix")

// singularTol is the determinant magnitude below which a matrix is
// treated as singular.
const singularTol = 1e-12

// Matrix3 represents a 3×3 real matrix, stored row-major. When it
// holds a lattice, each column is one basis vector.
type Matrix3 [3][3]float64

// Col returns column i as a vector.
func (m Matrix3) Col(i int) Vec3 {
	return Vec3{m[0][i], m[1][i], m[2][i]}
}

// SetCol sets column i to v.
func (m *Matrix3) SetCol(i int, v Vec3) {
	m[0][i], m[1][i], m[2][i] = v[0], v[1], v[2]
}

// Det returns the determinant.
func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the matrix inverse. It returns ErrSingular when the
// determinant is zero within tolerance.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Det()
	if math.Abs(det) < singularTol {
		return Matrix3{}, ErrSingular
	}

	d := 1 / det
	return Matrix3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * d,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * d,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * d,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * d,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * d,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * d,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * d,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * d,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * d,
		},
	}, nil
}

// MulVec returns the matrix-vector product m·v.
func (m Matrix3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Scale returns the matrix with every entry multiplied by s.
func (m Matrix3) Scale(s float64) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] * s
		}
	}
	return out
}
