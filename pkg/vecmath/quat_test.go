package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertQuatInDelta(t *testing.T, want, got Quat, delta float64) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, delta, "w of %s", got)
	assert.InDelta(t, want.X, got.X, delta, "x of %s", got)
	assert.InDelta(t, want.Y, got.Y, delta, "y of %s", got)
	assert.InDelta(t, want.Z, got.Z, delta, "z of %s", got)
}

func TestQuatArithmetic(t *testing.T) {
	q1 := NewQuat(3, 2, -1, -2)
	q2 := NewQuat(-2, -4, 1, -3)

	assert.Equal(t, NewQuat(11, 2, -3, -16), q1.ScalarMul(5).Add(q2.ScalarMul(2)))
	assert.Equal(t, NewQuat(-3, -11, 19, -7), q1.Mul(q2))
	assert.Equal(t, NewQuat(-3, -21, -9, -3), q2.Mul(q1))
	assert.Equal(t, q1.Mul(q2).Conjugate(), q2.Conjugate().Mul(q1.Conjugate()))
}

func TestQuatConjugateInvolution(t *testing.T) {
	q := NewQuat(0.25, -1.5, 3, 7)
	assert.Equal(t, q, q.Conjugate().Conjugate())
	assert.Equal(t, NewQuat(0.25, 1.5, -3, -7), q.Conjugate())
}

func TestQuatConstructors(t *testing.T) {
	v := NewVec3(1, 2, 3)

	assert.Equal(t, Quat{}, QuatZero())
	assert.Equal(t, NewQuat(4, 1, 2, 3), QuatFromVec(4, v))
	assert.Equal(t, NewQuat(0, 1, 2, 3), QuatFromVec3(v))
	assert.Equal(t, v, Vec3FromQuat(QuatFromVec3(v)))
}

func TestQuatLengthAndUnitize(t *testing.T) {
	q := NewQuat(1, 1, 1, 1)
	assert.Equal(t, 2.0, q.Length())
	assert.Equal(t, NewQuat(0.5, 0.5, 0.5, 0.5), q.Unitize())

	r := QuatFromAngleAxis(ToRadians(123), testAxis)
	assert.InDelta(t, 1.0, r.Length(), 1e-12)
}

func TestQuatRotation(t *testing.T) {
	start := NewVec3(0.393636, -0.271898, 0.863048)
	end := NewVec3(0.754185, -0.00259262, 0.63634)

	q := QuatFromAngleAxis(ToRadians(30), testAxis)
	assert.Less(t, q.RotateVec3(start).Distance(end), 0.0001)

	between := RotBetweenVecs(start, end)
	assert.Less(t, between.RotateVec3(start).Distance(end), 0.0001)
}

func TestQuatMatRotation(t *testing.T) {
	start := NewVec3(0.393636, -0.271898, 0.863048)
	axis := testAxis.Unitize()
	rad := ToRadians(30)

	q := QuatFromAngleAxis(rad, axis)
	m := Mat3FromAngleAxis(rad, axis)

	assert.Less(t, q.RotateVec3(start).Distance(start.ApplyRotMat3(m)), 0.001)
}

func TestQuatNonUnitScales(t *testing.T) {
	q := QuatFromAngleAxis(ToRadians(40), testAxis).ScalarMul(2)
	v := NewVec3(1, 0, 0)

	assert.InDelta(t, 4.0, q.RotateVec3(v).Length(), 1e-12)
}

func TestAngleAxisRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		axis Vec3
	}{
		{"small", 1, NewVec3(0, 0, 1)},
		{"thirty", 30, testAxis},
		{"obtuse", 160, NewVec3(1, 2, 2)},
		{"half turn", 180, NewVec3(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAngleAxis(ToRadians(tt.deg), tt.axis)
			angle, axis := q.AngleAxis()

			assert.InDelta(t, ToRadians(tt.deg), angle, 1e-9)
			assertVecInDelta(t, tt.axis.Unitize(), axis, 1e-9)
		})
	}
}

func TestAngleAxisIdentityIsNaN(t *testing.T) {
	angle, axis := NewQuat(1, 0, 0, 0).AngleAxis()
	assert.Equal(t, 0.0, angle)
	assert.True(t, math.IsNaN(axis.X), "axis = %s", axis)
}

func TestRotBetweenVecsPerpendicular(t *testing.T) {
	q := RotBetweenVecs(UnitX(), NewVec3(0, 2, 0))
	assertQuatInDelta(t, NewQuat(math.Sqrt2/2, 0, 0, math.Sqrt2/2), q, 1e-12)
	assertVecInDelta(t, NewVec3(0, 1, 0), q.RotateVec3(UnitX()), 1e-12)
}

func TestRotBetweenVecsParallel(t *testing.T) {
	q := RotBetweenVecs(NewVec3(1, 2, 3), NewVec3(2, 4, 6))
	assertQuatInDelta(t, NewQuat(1, 0, 0, 0), q, 1e-12)
}

func TestRotBetweenVecsAntiparallel(t *testing.T) {
	tests := []struct {
		name  string
		start Vec3
	}{
		{"general", NewVec3(1, 2, 3)},
		{"along z", NewVec3(0, 0, 2)},
		{"along negative z", NewVec3(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := RotBetweenVecs(tt.start, tt.start.ScalarMul(-1))
			u := tt.start.Unitize()

			assert.InDelta(t, 1.0, q.Length(), 1e-12)
			assert.InDelta(t, 0.0, q.Vec().Dot(u), 1e-12, "axis must be perpendicular to start")
			assertVecInDelta(t, u.ScalarMul(-1), q.RotateVec3(u), 1e-12)
		})
	}
}

func TestRotBetweenVecsFallbackAxis(t *testing.T) {
	// start is parallel to unit z, so unit z × start vanishes and the
	// axis falls back to unit x × start = (0, -1, 0).
	q := RotBetweenVecs(NewVec3(0, 0, 2), NewVec3(0, 0, -1))
	assertQuatInDelta(t, NewQuat(0, 0, -1, 0), q, 1e-12)
}

func TestQuatString(t *testing.T) {
	assert.Equal(t, "(1, -0.5, 2, 0)", NewQuat(1, -0.5, 2, 0).String())
}
