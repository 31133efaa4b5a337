package vecmath

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the magnitude below which the Try* functions treat a divisor
// as zero.
const Epsilon = 1e-12

var (
	// ErrZeroLength is returned when a vector or quaternion of zero length
	// would be normalized.
	ErrZeroLength = errors.New("zero length")

	// ErrSingular is returned when an angle extraction hits a singular
	// configuration (gimbal lock, identity rotation).
	ErrSingular = errors.New("singular configuration")
)

// TryUnitize is Unitize with a zero-length check.
func (v Vec3) TryUnitize() (Vec3, error) {
	if v.Length() < Epsilon {
		return Vec3{}, fmt.Errorf("unitize %s: %w", v, ErrZeroLength)
	}
	return v.Unitize(), nil
}

// TryAngleAxis is AngleAxis with checks for the zero quaternion and for a
// rotation angle of zero, where the axis is undefined.
func (q Quat) TryAngleAxis() (float64, Vec3, error) {
	if q.Length() < Epsilon {
		return 0, Vec3{}, fmt.Errorf("angle axis of %s: %w", q, ErrZeroLength)
	}
	angle, axis := q.AngleAxis()
	if math.Abs(math.Sin(angle*0.5)) < Epsilon {
		return angle, Vec3{}, fmt.Errorf("angle axis of %s: angle %g: %w", q, angle, ErrSingular)
	}
	return angle, axis, nil
}

// TryYawPitchRoll is YawPitchRoll with a gimbal-lock check on cos(pitch).
func (m Mat3) TryYawPitchRoll() (yaw, pitch, roll float64, err error) {
	pitch = math.Asin(-m.M20())
	if math.Abs(math.Cos(pitch)) < Epsilon {
		return 0, pitch, 0, fmt.Errorf("yaw pitch roll: pitch %g: %w", pitch, ErrSingular)
	}
	yaw, pitch, roll = m.YawPitchRoll()
	return yaw, pitch, roll, nil
}

// TryEulerAngleZYZ is EulerAngleZYZ with a check on sin(theta).
func (m Mat3) TryEulerAngleZYZ() (phi, theta, psi float64, err error) {
	theta = math.Acos(m.M22())
	if math.Abs(math.Sin(theta)) < Epsilon {
		return 0, theta, 0, fmt.Errorf("euler zyz: theta %g: %w", theta, ErrSingular)
	}
	phi, theta, psi = m.EulerAngleZYZ()
	return phi, theta, psi, nil
}
