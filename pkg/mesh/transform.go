package mesh

import "github.com/chazu/spatial/pkg/vecmath"

// Transform is a rigid placement: rotate by Rotation (a unit quaternion),
// then translate by Translation.
type Transform struct {
	Rotation    vecmath.Quat `json:"rotation"`
	Translation vecmath.Vec3 `json:"translation"`
}

// Identity returns the transform that leaves every point in place.
func Identity() Transform {
	return Transform{Rotation: vecmath.NewQuat(1, 0, 0, 0)}
}

// Translate returns a pure translation by v.
func Translate(v vecmath.Vec3) Transform {
	return Transform{Rotation: vecmath.NewQuat(1, 0, 0, 0), Translation: v}
}

// Rotate returns a pure rotation of rad radians about axis.
func Rotate(rad float64, axis vecmath.Vec3) Transform {
	return Transform{Rotation: vecmath.QuatFromAngleAxis(rad, axis)}
}

// RotateEuler returns the rotation by Euler angles in degrees applied about
// X first, then Y, then Z.
func RotateEuler(x, y, z float64) Transform {
	qx := vecmath.QuatFromAngleAxis(vecmath.ToRadians(x), vecmath.UnitX())
	qy := vecmath.QuatFromAngleAxis(vecmath.ToRadians(y), vecmath.NewVec3(0, 1, 0))
	qz := vecmath.QuatFromAngleAxis(vecmath.ToRadians(z), vecmath.UnitZ())
	return Transform{Rotation: qz.Mul(qy).Mul(qx)}
}

// Apply maps point v through t.
func (t Transform) Apply(v vecmath.Vec3) vecmath.Vec3 {
	return t.Rotation.RotateVec3(v).Add(t.Translation)
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Rotation:    next.Rotation.Mul(t.Rotation),
		Translation: next.Rotation.RotateVec3(t.Translation).Add(next.Translation),
	}
}

// Matrix returns the rotation part of t as a row-major 3x3 matrix.
func (t Transform) Matrix() vecmath.Mat3 {
	return vecmath.Mat3FromQuat(t.Rotation)
}

// Homogeneous returns t as a 4x4 matrix acting on column vectors
// (x, y, z, 1).
func (t Transform) Homogeneous() vecmath.Mat4 {
	r := t.Matrix()
	p := t.Translation
	return vecmath.NewMat4([16]float64{
		r.M00(), r.M01(), r.M02(), p.X,
		r.M10(), r.M11(), r.M12(), p.Y,
		r.M20(), r.M21(), r.M22(), p.Z,
		0, 0, 0, 1,
	})
}

// Stack accumulates nested placements while walking a scene: each Push
// enters a child frame, each Pop leaves it.
type Stack struct {
	frames []Transform
}

// NewStack returns an empty stack whose Current is the identity.
func NewStack() *Stack {
	return &Stack{}
}

// Push makes t the current transform.
func (s *Stack) Push(t Transform) {
	s.frames = append(s.frames, t)
}

// Pop discards the current transform. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Depth returns the number of frames on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Current returns the transform from the innermost frame to world space:
// the innermost placement applies first, the outermost last.
func (s *Stack) Current() Transform {
	acc := Identity()
	for i := len(s.frames) - 1; i >= 0; i-- {
		acc = acc.Then(s.frames[i])
	}
	return acc
}
