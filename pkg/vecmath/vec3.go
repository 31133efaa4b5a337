package vecmath

import (
	"math"
	"strconv"
)

// Vec3 is a 3-component vector of float64.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// ZeroVec3 returns (0, 0, 0).
func ZeroVec3() Vec3 { return Vec3{} }

// UnitX returns (1, 0, 0).
func UnitX() Vec3 { return Vec3{X: 1} }

// UnitZ returns (0, 0, 1).
func UnitZ() Vec3 { return Vec3{Z: 1} }

// Vec3FromQuat returns the vector part of q, dropping the scalar part.
func Vec3FromQuat(q Quat) Vec3 { return Vec3{X: q.X, Y: q.Y, Z: q.Z} }

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Cross returns the cross product v × o. It is anti-commutative:
// a.Cross(b) == b.Cross(a).ScalarMul(-1).
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Dot returns the scalar product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// ScalarMul returns v with every component multiplied by s.
func (v Vec3) ScalarMul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// ScalarDiv returns v with every component divided by s. Dividing by zero
// yields Inf or NaN components.
func (v Vec3) ScalarDiv(s float64) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Unitize returns v scaled to unit length. A zero vector yields NaN
// components; use TryUnitize to detect that case.
func (v Vec3) Unitize() Vec3 {
	l := v.Length()
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Angle returns the angle between v and o in radians, in [0, π].
// It is NaN when either vector has zero length.
func (v Vec3) Angle(o Vec3) float64 {
	d := v.Dot(o)
	lengths := v.Length() * o.Length()
	return math.Acos(d / lengths)
}

// ApplyRotMat3 rotates v by m. Each output component is the dot product of
// a row of m with v: x' = m00*x + m01*y + m02*z, and so on.
func (v Vec3) ApplyRotMat3(m Mat3) Vec3 {
	return Vec3{
		X: v.X*m.M00() + v.Y*m.M01() + v.Z*m.M02(),
		Y: v.X*m.M10() + v.Y*m.M11() + v.Z*m.M12(),
		Z: v.X*m.M20() + v.Y*m.M21() + v.Z*m.M22(),
	}
}

// NormalFromThreeVertices returns the unit normal of triangle (a, b, c),
// oriented by the right-hand rule over the vertex order.
func NormalFromThreeVertices(a, b, c Vec3) Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac).Unitize()
}

// NormalFromVertexArray is NormalFromThreeVertices over an array.
func NormalFromVertexArray(v [3]Vec3) Vec3 {
	return NormalFromThreeVertices(v[0], v[1], v[2])
}

// MeanFromThreeVertices returns the centroid of triangle (a, b, c).
func MeanFromThreeVertices(a, b, c Vec3) Vec3 {
	return a.Add(b).Add(c).ScalarDiv(3.0)
}

// MeanFromVertexArray is MeanFromThreeVertices over an array.
func MeanFromVertexArray(v [3]Vec3) Vec3 {
	return MeanFromThreeVertices(v[0], v[1], v[2])
}

// String formats v as "(x, y, z)".
func (v Vec3) String() string {
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ", " + formatFloat(v.Z) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
