package mesh

import (
	"math"
	"testing"

	"github.com/chazu/spatial/pkg/vecmath"
)

func TestIdentity(t *testing.T) {
	v := vecmath.NewVec3(1, -2, 3)
	if got := Identity().Apply(v); got != v {
		t.Errorf("Identity().Apply(%s) = %s", v, got)
	}
}

func TestThenOrder(t *testing.T) {
	rot := Rotate(math.Pi/2, vecmath.UnitZ())
	move := Translate(vecmath.NewVec3(1, 0, 0))
	v := vecmath.UnitX()

	// Rotate first: (1,0,0) -> (0,1,0) -> (1,1,0).
	if got := rot.Then(move).Apply(v); got.Distance(vecmath.NewVec3(1, 1, 0)) > 1e-12 {
		t.Errorf("rotate then move = %s, want (1, 1, 0)", got)
	}
	// Move first: (1,0,0) -> (2,0,0) -> (0,2,0).
	if got := move.Then(rot).Apply(v); got.Distance(vecmath.NewVec3(0, 2, 0)) > 1e-12 {
		t.Errorf("move then rotate = %s, want (0, 2, 0)", got)
	}
}

func TestThenMatchesSequentialApply(t *testing.T) {
	a := Rotate(0.7, vecmath.NewVec3(1, 2, 3)).Then(Translate(vecmath.NewVec3(4, 0, -1)))
	b := Rotate(-1.3, vecmath.NewVec3(-2, 0.5, 1)).Then(Translate(vecmath.NewVec3(0, 3, 2)))
	v := vecmath.NewVec3(0.25, -4, 9)

	want := b.Apply(a.Apply(v))
	if got := a.Then(b).Apply(v); got.Distance(want) > 1e-9 {
		t.Errorf("a.Then(b).Apply = %s, want %s", got, want)
	}
}

func TestHomogeneousComposition(t *testing.T) {
	a := Rotate(0.7, vecmath.NewVec3(1, 2, 3)).Then(Translate(vecmath.NewVec3(4, 0, -1)))
	b := RotateEuler(10, 20, 30).Then(Translate(vecmath.NewVec3(0, 3, 2)))

	want := b.Homogeneous().Mul(a.Homogeneous())
	got := a.Then(b).Homogeneous()
	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-9 {
			t.Errorf("element %d = %g, want %g", i, got[i], want[i])
		}
	}

	v := vecmath.NewVec3(0.25, -4, 9)
	h := a.Homogeneous()
	p := vecmath.NewVec3(
		h.M00()*v.X+h.M01()*v.Y+h.M02()*v.Z+h.M03(),
		h.M10()*v.X+h.M11()*v.Y+h.M12()*v.Z+h.M13(),
		h.M20()*v.X+h.M21()*v.Y+h.M22()*v.Z+h.M23(),
	)
	if p.Distance(a.Apply(v)) > 1e-9 {
		t.Errorf("homogeneous apply = %s, want %s", p, a.Apply(v))
	}
}

func TestMatrixMatchesQuaternion(t *testing.T) {
	tr := Rotate(1.1, vecmath.NewVec3(-1.36712, 2.55664, 0.862798))
	v := vecmath.NewVec3(0.393636, -0.271898, 0.863048)

	if d := v.ApplyRotMat3(tr.Matrix()).Distance(tr.Apply(v)); d > 1e-12 {
		t.Errorf("matrix and quaternion rotations differ by %g", d)
	}
}

func TestRotateEulerRecoversAngles(t *testing.T) {
	m := RotateEuler(10, 20, 30).Matrix()

	// Returned in z-y-x extraction order: the first angle is about X and
	// the last about Z.
	yaw, pitch, roll := m.YawPitchRoll()
	got := []float64{vecmath.ToDegrees(yaw), vecmath.ToDegrees(pitch), vecmath.ToDegrees(roll)}
	want := []float64{10, 20, 30}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("angle %d = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestStack(t *testing.T) {
	s := NewStack()
	v := vecmath.UnitX()

	if s.Current().Apply(v) != v {
		t.Fatal("empty stack should be identity")
	}

	outer := Translate(vecmath.NewVec3(10, 0, 0))
	inner := Rotate(math.Pi/2, vecmath.UnitZ())
	s.Push(outer)
	s.Push(inner)
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}

	// Inner rotation applies first, then the outer translation.
	if got := s.Current().Apply(v); got.Distance(vecmath.NewVec3(10, 1, 0)) > 1e-12 {
		t.Errorf("Current().Apply = %s, want (10, 1, 0)", got)
	}

	s.Pop()
	if got := s.Current().Apply(v); got.Distance(vecmath.NewVec3(11, 0, 0)) > 1e-12 {
		t.Errorf("after Pop, Current().Apply = %s, want (11, 0, 0)", got)
	}
	s.Pop()
	s.Pop()
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d after popping past empty", s.Depth())
	}
}
