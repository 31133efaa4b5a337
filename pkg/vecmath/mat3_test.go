package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testAxis is a deliberately unnormalized rotation axis shared by the
// rotation tests.
var testAxis = NewVec3(-1.36712, 2.55664, 0.862798)

func assertMat3InDelta(t *testing.T, want, got Mat3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "element %d (row %d, col %d)", i, i/3, i%3)
	}
}

func TestRotMatrixAboutY(t *testing.T) {
	p := NewVec3(-1, 3, 2)
	m := Mat3FromAngleAxis(ToRadians(30), NewVec3(0, 1, 0))

	answer := NewVec3(0.133975, 3.0, 2.23205)
	assert.Less(t, p.ApplyRotMat3(m).Distance(answer), 0.001)
}

func TestRotMatrixClosedForm(t *testing.T) {
	m := Mat3FromAngleAxis(ToRadians(45), NewVec3(1, 1, 1))

	s2 := math.Sqrt(2)
	s3 := math.Sqrt(3)
	s23 := s2 * s3
	i := (2 + s2) / (3 * s2)
	d := 3 * s23
	n1 := (3 - s3 + s23) / d
	n2 := (-3 - s3 + s23) / d

	want := NewMat3([9]float64{
		i, n2, n1,
		n1, i, n2,
		n2, n1, i,
	})
	assertMat3InDelta(t, want, m, 1e-12)
}

func TestRotMatrixIsOrthonormal(t *testing.T) {
	m := Mat3FromAngleAxis(ToRadians(73), testAxis)

	var mt Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			mt[c*3+r] = m[r*3+c]
		}
	}
	identity := NewMat3([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	assertMat3InDelta(t, identity, m.Mul(mt), 1e-12)
}

func TestMat3Multiply(t *testing.T) {
	a := NewMat3([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	b := NewMat3([9]float64{
		9, 8, 7,
		6, 5, 4,
		3, 2, 1,
	})

	assert.Equal(t, NewMat3([9]float64{
		30, 24, 18,
		84, 69, 54,
		138, 114, 90,
	}), a.Mul(b))
	assert.Equal(t, NewMat3([9]float64{
		90, 114, 138,
		54, 69, 84,
		18, 24, 30,
	}), b.Mul(a))
	assert.Equal(t, Mat3Zero(), a.Mul(Mat3Zero()))
}

func TestMat3ComposesRotations(t *testing.T) {
	v := NewVec3(0.3, -1.2, 2.5)
	a := Mat3FromAngleAxis(ToRadians(20), testAxis)
	b := Mat3FromAngleAxis(ToRadians(50), testAxis)

	// Rotations about one axis commute and add.
	sum := Mat3FromAngleAxis(ToRadians(70), testAxis)
	assertMat3InDelta(t, sum, a.Mul(b), 1e-12)
	assertVecInDelta(t, v.ApplyRotMat3(b).ApplyRotMat3(a), v.ApplyRotMat3(a.Mul(b)), 1e-12)
}

func TestMat3FromQuatMatchesAngleAxis(t *testing.T) {
	rad := ToRadians(30)
	q := QuatFromAngleAxis(rad, testAxis)

	assertMat3InDelta(t, Mat3FromAngleAxis(rad, testAxis), Mat3FromQuat(q), 1e-12)
}

func TestYawPitchRoll(t *testing.T) {
	q := QuatFromAngleAxis(ToRadians(30), testAxis)
	m := Mat3FromQuat(q)

	yaw, pitch, roll := m.YawPitchRoll()
	m01 := math.Sin(yaw)*math.Sin(pitch)*math.Cos(roll) - math.Cos(yaw)*math.Sin(roll)

	assert.InDelta(t, m.M01(), m01, 0.0001)
	assert.InDelta(t, math.Asin(-m.M20()), pitch, 0)
}

func TestEulerAngleZYZ(t *testing.T) {
	q := QuatFromAngleAxis(ToRadians(30), testAxis)
	m := Mat3FromQuat(q)

	phi, theta, psi := m.EulerAngleZYZ()
	m00 := math.Cos(psi)*math.Cos(theta)*math.Cos(phi) - math.Sin(psi)*math.Sin(phi)

	assert.InDelta(t, m.M00(), m00, 0.00001)
}

func TestEulerZYZIdentityIsNaN(t *testing.T) {
	identity := NewMat3([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	phi, theta, psi := identity.EulerAngleZYZ()
	assert.Equal(t, 0.0, theta)
	assert.True(t, math.IsNaN(phi), "phi = %g", phi)
	assert.True(t, math.IsNaN(psi), "psi = %g", psi)
}

func TestMat3Accessors(t *testing.T) {
	m := NewMat3([9]float64{0, 1, 2, 10, 11, 12, 20, 21, 22})
	got := []float64{m.M00(), m.M01(), m.M02(), m.M10(), m.M11(), m.M12(), m.M20(), m.M21(), m.M22()}
	assert.Equal(t, []float64{0, 1, 2, 10, 11, 12, 20, 21, 22}, got)
	assert.Equal(t, [9]float64{0, 1, 2, 10, 11, 12, 20, 21, 22}, m.Values())
}

func TestMat3String(t *testing.T) {
	m := NewMat3([9]float64{1, 0, 0, 0, 0.5, 0, 0, 0, -2})
	assert.Equal(t, "1, 0, 0\n0, 0.5, 0\n0, 0, -2", m.String())
}
