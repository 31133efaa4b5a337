package vecmath

import "math"

// Quat is a quaternion w + xi + yj + zk. A unit Quat represents a rotation.
type Quat struct {
	W, X, Y, Z float64
}

// antiparallelCos is the cosine below which RotBetweenVecs treats the two
// vectors as pointing in opposite directions.
const antiparallelCos = -1.0 + 0.001

// NewQuat returns w + xi + yj + zk.
func NewQuat(w, x, y, z float64) Quat { return Quat{W: w, X: x, Y: y, Z: z} }

// QuatZero returns the all-zero quaternion.
func QuatZero() Quat { return Quat{} }

// QuatFromVec builds a quaternion from a scalar part w and vector part v.
func QuatFromVec(w float64, v Vec3) Quat { return Quat{W: w, X: v.X, Y: v.Y, Z: v.Z} }

// QuatFromVec3 returns the pure quaternion (0, v).
func QuatFromVec3(v Vec3) Quat { return QuatFromVec(0, v) }

// QuatFromAngleAxis returns the rotation of rad radians about axis.
// The axis does not need to be normalized.
func QuatFromAngleAxis(rad float64, axis Vec3) Quat {
	a := axis.Unitize()
	sinHalf := math.Sin(rad * 0.5)
	return Quat{
		W: math.Cos(rad * 0.5),
		X: a.X * sinHalf,
		Y: a.Y * sinHalf,
		Z: a.Z * sinHalf,
	}
}

// Vec returns the vector part of q.
func (q Quat) Vec() Vec3 { return Vec3FromQuat(q) }

// Add returns the component-wise sum q + o.
func (q Quat) Add(o Quat) Quat {
	return Quat{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

// Mul returns the Hamilton product q·o. It is not commutative, and
// (q·o)* == o*·q*.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y + q.Y*o.W + q.Z*o.X - q.X*o.Z,
		Z: q.W*o.Z + q.Z*o.W + q.X*o.Y - q.Y*o.X,
	}
}

// Length returns the Euclidean norm over all four components.
func (q Quat) Length() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// ScalarMul scales all four components by s.
func (q Quat) ScalarMul(s float64) Quat {
	return Quat{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Unitize returns q divided by its length. NaN for the zero quaternion.
func (q Quat) Unitize() Quat {
	l := q.Length()
	return Quat{q.W / l, q.X / l, q.Y / l, q.Z / l}
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

// RotateVec3 returns the vector part of q·(0,v)·q*. For a unit q this is
// a pure rotation; a non-unit q also scales v by |q|².
func (q Quat) RotateVec3(v Vec3) Vec3 {
	return Vec3FromQuat(q.Mul(QuatFromVec3(v)).Mul(q.Conjugate()))
}

// AngleAxis recovers the rotation angle (radians) and axis of q. The angle
// comes from the unitized copy of q; the axis is q's own vector part divided
// by sin(angle/2). Both are NaN or Inf when the angle is 0 or 2π.
func (q Quat) AngleAxis() (float64, Vec3) {
	u := q.Unitize()
	angle := math.Acos(u.W) * 2.0
	sinHalf := math.Sin(angle * 0.5)
	return angle, q.Vec().ScalarDiv(sinHalf)
}

// RotBetweenVecs returns the shortest-arc rotation taking the direction of
// start onto the direction of dest.
//
// Near-antiparallel inputs have no unique arc; the rotation is then 180°
// about an axis perpendicular to start, preferring unit z × start.
func RotBetweenVecs(start, dest Vec3) Quat {
	start = start.Unitize()
	dest = dest.Unitize()

	cosTheta := start.Dot(dest)

	if cosTheta < antiparallelCos {
		axis := UnitZ().Cross(start)
		if axis.Length() < 0.01 {
			axis = UnitX().Cross(start)
		}
		axis = axis.Unitize()
		return QuatFromAngleAxis(ToRadians(180.0), axis)
	}

	// The cross product is left unnormalized: its length sin(θ) combines
	// with 1/s to give sin(θ/2).
	axis := start.Cross(dest)
	s := math.Sqrt((1.0 + cosTheta) * 2.0)
	invs := 1.0 / s

	return Quat{
		W: s * 0.5,
		X: axis.X * invs,
		Y: axis.Y * invs,
		Z: axis.Z * invs,
	}
}

// String formats q as "(w, x, y, z)".
func (q Quat) String() string {
	return "(" + formatFloat(q.W) + ", " + formatFloat(q.X) + ", " +
		formatFloat(q.Y) + ", " + formatFloat(q.Z) + ")"
}
