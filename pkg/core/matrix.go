package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a 3x3 double-precision matrix, used for the triangle
// ray/barycentric linear solve (spec 4.2). It wraps a gonum dense matrix so
// that construction and solving go through a single well-tested
// implementation instead of hand-rolled Cramer's rule.
type Matrix3 struct {
	m *mat.Dense
}

// NewMatrix3Columns builds a Matrix3 from three column vectors.
func NewMatrix3Columns(c0, c1, c2 Vec3) Matrix3 {
	data := []float64{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
	return Matrix3{m: mat.NewDense(3, 3, data)}
}

// Determinant returns the matrix determinant.
func (m Matrix3) Determinant() float64 {
	return mat.Det(m.m)
}

// SolveVec solves m*x = b for x, returning (x, ok). ok is false when the
// system is singular (determinant ~0) - this is how triangle.go reports
// "ray parallel to triangle plane" without treating it as an error.
func (m Matrix3) SolveVec(b Vec3) (Vec3, bool) {
	if math.Abs(m.Determinant()) < 1e-12 {
		return Vec3{}, false
	}
	var x mat.VecDense
	rhs := mat.NewVecDense(3, []float64{b.X, b.Y, b.Z})
	if err := x.SolveVec(m.m, rhs); err != nil {
		return Vec3{}, false
	}
	return Vec3{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}, true
}

// Matrix4 is a 4x4 double-precision affine matrix, used for Transform
// primitives (spec 4.2). It wraps gonum for inversion/determinant and
// exposes a value-like API so callers never see gonum types directly.
type Matrix4 struct {
	m *mat.Dense
}

func newMatrix4(data []float64) Matrix4 {
	return Matrix4{m: mat.NewDense(4, 4, data)}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return newMatrix4([]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Translate4 returns a translation matrix.
func Translate4(t Vec3) Matrix4 {
	return newMatrix4([]float64{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	})
}

// Scale4 returns a non-uniform scale matrix.
func Scale4(s Vec3) Matrix4 {
	return newMatrix4([]float64{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	})
}

// UniformScale4 returns a uniform scale matrix.
func UniformScale4(s float64) Matrix4 {
	return Scale4(Vec3{s, s, s})
}

// RotateX4 returns a rotation matrix around the X axis, angle in radians.
func RotateX4(angleRad float64) Matrix4 {
	c, s := math.Cos(angleRad), math.Sin(angleRad)
	return newMatrix4([]float64{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	})
}

// RotateY4 returns a rotation matrix around the Y axis, angle in radians.
func RotateY4(angleRad float64) Matrix4 {
	c, s := math.Cos(angleRad), math.Sin(angleRad)
	return newMatrix4([]float64{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	})
}

// RotateZ4 returns a rotation matrix around the Z axis, angle in radians.
func RotateZ4(angleRad float64) Matrix4 {
	c, s := math.Cos(angleRad), math.Sin(angleRad)
	return newMatrix4([]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Multiply returns m * other (applying other first, then m, to a column vector).
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result mat.Dense
	result.Mul(m.m, other.m)
	return Matrix4{m: &result}
}

// Transpose returns the transpose of the matrix.
func (m Matrix4) Transpose() Matrix4 {
	var result mat.Dense
	result.CloneFrom(m.m.T())
	return Matrix4{m: &result}
}

// Inverse returns the matrix inverse. Panics if the matrix is singular,
// which indicates a malformed scene Transform (a configuration error that
// should have been caught earlier).
func (m Matrix4) Inverse() Matrix4 {
	var inv mat.Dense
	if err := inv.Inverse(m.m); err != nil {
		panic(fmt.Sprintf("core: cannot invert singular transform matrix: %v", err))
	}
	return Matrix4{m: &inv}
}

// Determinant returns the matrix determinant.
func (m Matrix4) Determinant() float64 {
	return mat.Det(m.m)
}

// MultiplyPoint3 transforms a point (implicit w=1), applying translation.
func (m Matrix4) MultiplyPoint3(v Vec3) Vec3 {
	r := m.mulVec4(Vec4{v.X, v.Y, v.Z, 1})
	return r.ToVec3()
}

// MultiplyDirection3 transforms a direction (implicit w=0), ignoring translation.
func (m Matrix4) MultiplyDirection3(v Vec3) Vec3 {
	r := m.mulVec4(Vec4{v.X, v.Y, v.Z, 0})
	return r.ToVec3()
}

func (m Matrix4) mulVec4(v Vec4) Vec4 {
	rhs := mat.NewVecDense(4, []float64{v.X, v.Y, v.Z, v.W})
	var out mat.VecDense
	out.MulVec(m.m, rhs)
	return Vec4{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2), W: out.AtVec(3)}
}

// At returns the element at (row, col), mainly useful for tests.
func (m Matrix4) At(row, col int) float64 {
	return m.m.At(row, col)
}
