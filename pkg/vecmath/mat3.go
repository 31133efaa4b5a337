package vecmath

import (
	"math"
	"strings"
)

// Mat3 is a 3x3 matrix stored row-major: element (row, col) is at
// index row*3+col.
//
// A Mat3 built by Mat3FromAngleAxis or from a unit quaternion is a proper
// rotation, but nothing enforces that.
type Mat3 [9]float64

// Mat3Zero returns the all-zero matrix.
func Mat3Zero() Mat3 { return Mat3{} }

// NewMat3 builds a matrix from nine row-major values.
func NewMat3(v [9]float64) Mat3 { return Mat3(v) }

// Values returns the nine row-major components.
func (m Mat3) Values() [9]float64 { return [9]float64(m) }

// Mat3FromAngleAxis builds the rotation of rad radians about axis using
// Rodrigues' formula. The axis does not need to be normalized.
func Mat3FromAngleAxis(rad float64, axis Vec3) Mat3 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	a := axis.Unitize()
	x, y, z := a.X, a.Y, a.Z

	return Mat3{
		c + (1-c)*x*x, (1-c)*x*y - s*z, (1-c)*x*z + s*y,
		(1-c)*x*y + s*z, c + (1-c)*y*y, (1-c)*y*z - s*x,
		(1-c)*x*z - s*y, (1-c)*y*z + s*x, c + (1-c)*z*z,
	}
}

// Mat3FromQuat converts q to a rotation matrix. q is assumed to be a unit
// quaternion; a non-unit q is not normalized first.
func Mat3FromQuat(q Quat) Mat3 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Mat3{
		w*w + x*x - y*y - z*z, 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), w*w - x*x + y*y - z*z, 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), w*w - x*x - y*y + z*z,
	}
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3+0]*o[0*3+col] +
				m[row*3+1]*o[1*3+col] +
				m[row*3+2]*o[2*3+col]
		}
	}
	return r
}

// YawPitchRoll decomposes m as a z-y-x rotation and returns
// (yaw, pitch, roll) in radians.
//
// pitch = asin(-m20), yaw = asin(m21/cos(pitch)), roll = acos(m00/cos(pitch)).
// asin and acos are single valued, so angles outside their principal range
// come back folded, and cos(pitch) == 0 divides by zero.
func (m Mat3) YawPitchRoll() (yaw, pitch, roll float64) {
	pitch = math.Asin(-m.M20())
	yaw = math.Asin(m.M21() / math.Cos(pitch))
	roll = math.Acos(m.M00() / math.Cos(pitch))
	return yaw, pitch, roll
}

// EulerAngleZYZ decomposes m into z-y-z Euler angles (phi, theta, psi).
//
// theta = acos(m22), phi = asin(m12/sin(theta)), psi = asin(m21/sin(theta)).
// Undefined when sin(theta) == 0.
func (m Mat3) EulerAngleZYZ() (phi, theta, psi float64) {
	theta = math.Acos(m.M22())
	sinTheta := math.Sin(theta)
	phi = math.Asin(m.M12() / sinTheta)
	psi = math.Asin(m.M21() / sinTheta)
	return phi, theta, psi
}

// M00 through M22 return the element at row i, column j (Mij).
func (m Mat3) M00() float64 { return m[0] }
func (m Mat3) M01() float64 { return m[1] }
func (m Mat3) M02() float64 { return m[2] }
func (m Mat3) M10() float64 { return m[3] }
func (m Mat3) M11() float64 { return m[4] }
func (m Mat3) M12() float64 { return m[5] }
func (m Mat3) M20() float64 { return m[6] }
func (m Mat3) M21() float64 { return m[7] }
func (m Mat3) M22() float64 { return m[8] }

// String dumps the nine components row by row. Debug output only.
func (m Mat3) String() string {
	return dumpRows(m[:], 3)
}

func dumpRows(v []float64, n int) string {
	var b strings.Builder
	for row := 0; row < n; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < n; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatFloat(v[row*n+col]))
		}
	}
	return b.String()
}
