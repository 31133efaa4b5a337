package engine

import (
	"fmt"
	"strconv"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/spatial/pkg/vecmath"
)

// Angles is an Euler angle triple in radians. Order is "ypr" for
// (yaw, pitch, roll) or "zyz" for (phi, theta, psi).
type Angles struct {
	Order   string
	A, B, C float64
}

// AngleAxis is a rotation angle in radians about an axis.
type AngleAxis struct {
	Angle float64
	Axis  vecmath.Vec3
}

func (a Angles) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", a.Order, fmtNum(a.A), fmtNum(a.B), fmtNum(a.C))
}

func (a AngleAxis) String() string {
	return fmt.Sprintf("%s about %s", fmtNum(a.Angle), a.Axis)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing vecmath values through the zygomys environment
// ---------------------------------------------------------------------------

type sexpVec3 struct {
	vec vecmath.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %s %s %s)", fmtNum(v.vec.X), fmtNum(v.vec.Y), fmtNum(v.vec.Z))
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

type sexpQuat struct {
	quat vecmath.Quat
}

func (q *sexpQuat) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(quat %s %s %s %s)", fmtNum(q.quat.W), fmtNum(q.quat.X), fmtNum(q.quat.Y), fmtNum(q.quat.Z))
}
func (q *sexpQuat) Type() *zygo.RegisteredType { return nil }

type sexpMat3 struct {
	mat vecmath.Mat3
}

func (m *sexpMat3) SexpString(ps *zygo.PrintState) string {
	return "(mat3" + fmtNums(m.mat[:]) + ")"
}
func (m *sexpMat3) Type() *zygo.RegisteredType { return nil }

type sexpMat4 struct {
	mat vecmath.Mat4
}

func (m *sexpMat4) SexpString(ps *zygo.PrintState) string {
	return "(mat4" + fmtNums(m.mat[:]) + ")"
}
func (m *sexpMat4) Type() *zygo.RegisteredType { return nil }

// sexpAngles is returned by ypr and zyz.
type sexpAngles struct {
	angles Angles
}

func (a *sexpAngles) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %s %s %s)", a.angles.Order, fmtNum(a.angles.A), fmtNum(a.angles.B), fmtNum(a.angles.C))
}
func (a *sexpAngles) Type() *zygo.RegisteredType { return nil }

// sexpAngleAxis is returned by angle-axis.
type sexpAngleAxis struct {
	aa AngleAxis
}

func (a *sexpAngleAxis) SexpString(ps *zygo.PrintState) string {
	v := &sexpVec3{vec: a.aa.Axis}
	return fmt.Sprintf("(angle-axis %s %s)", fmtNum(a.aa.Angle), v.SexpString(ps))
}
func (a *sexpAngleAxis) Type() *zygo.RegisteredType { return nil }

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func fmtNums(v []float64) string {
	var s string
	for _, f := range v {
		s += " " + fmtNum(f)
	}
	return s
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toFloats(args []zygo.Sexp) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func toVec3(s zygo.Sexp) (vecmath.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return vecmath.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func toQuat(s zygo.Sexp) (vecmath.Quat, error) {
	if q, ok := s.(*sexpQuat); ok {
		return q.quat, nil
	}
	return vecmath.Quat{}, fmt.Errorf("expected quat, got %T (%s)", s, s.SexpString(nil))
}

func toMat3(s zygo.Sexp) (vecmath.Mat3, error) {
	if m, ok := s.(*sexpMat3); ok {
		return m.mat, nil
	}
	return vecmath.Mat3{}, fmt.Errorf("expected mat3, got %T (%s)", s, s.SexpString(nil))
}

func toMat4(s zygo.Sexp) (vecmath.Mat4, error) {
	if m, ok := s.(*sexpMat4); ok {
		return m.mat, nil
	}
	return vecmath.Mat4{}, fmt.Errorf("expected mat4, got %T (%s)", s, s.SexpString(nil))
}

// toGo converts a Sexp to the Go value it carries. Unknown types yield nil.
func toGo(s zygo.Sexp) any {
	switch v := s.(type) {
	case *sexpVec3:
		return v.vec
	case *sexpQuat:
		return v.quat
	case *sexpMat3:
		return v.mat
	case *sexpMat4:
		return v.mat
	case *sexpAngles:
		return v.angles
	case *sexpAngleAxis:
		return v.aa
	case *sexpMesh:
		return v.mesh
	case *zygo.SexpFloat:
		return v.Val
	case *zygo.SexpInt:
		return v.Val
	case *zygo.SexpStr:
		return v.S
	case *zygo.SexpBool:
		return v.Val
	}
	return nil
}

// toResult builds the Result for the final value of a script.
func toResult(s zygo.Sexp) *Result {
	if s == nil || s == zygo.SexpNull {
		return &Result{}
	}
	res := &Result{Value: toGo(s)}
	switch v := res.Value.(type) {
	case fmt.Stringer:
		res.Text = v.String()
	case string:
		res.Text = v
	case float64:
		res.Text = fmtNum(v)
	case int64:
		res.Text = strconv.FormatInt(v, 10)
	default:
		res.Text = s.SexpString(nil)
	}
	return res
}
