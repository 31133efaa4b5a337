package engine

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/spatial/pkg/vecmath"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisableMethods = true
}

// builtinFunc implements a builtin over parsed arguments.
type builtinFunc func(pa kwArgs) (zygo.Sexp, error)

// define registers fn under name. arity is the exact number of positional
// arguments, or -1 to let fn check them. Errors are prefixed with the
// builtin's name.
func define(env *zygo.Zlisp, name string, arity int, fn builtinFunc) {
	env.AddFunction(name, func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if arity >= 0 && len(pa.positional) != arity {
			return zygo.SexpNull, fmt.Errorf("%s: expected %d arguments, got %d", name, arity, len(pa.positional))
		}
		out, err := fn(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	})
}

func num(f float64) zygo.Sexp { return &zygo.SexpFloat{Val: f} }

func vec(v vecmath.Vec3) zygo.Sexp { return &sexpVec3{vec: v} }

func quat(q vecmath.Quat) zygo.Sexp { return &sexpQuat{quat: q} }

func mat3(m vecmath.Mat3) zygo.Sexp { return &sexpMat3{mat: m} }

// angleArg reads an angle in radians, or in degrees when the :deg flag is set.
func angleArg(pa kwArgs, s zygo.Sexp) (float64, error) {
	a, err := toFloat64(s)
	if err != nil {
		return 0, err
	}
	if pa.flag("deg") {
		return vecmath.ToRadians(a), nil
	}
	return a, nil
}

func twoVecs(pa kwArgs) (vecmath.Vec3, vecmath.Vec3, error) {
	a, err := toVec3(pa.positional[0])
	if err != nil {
		return a, a, err
	}
	b, err := toVec3(pa.positional[1])
	return a, b, err
}

func threeVecs(pa kwArgs) (a, b, c vecmath.Vec3, err error) {
	if a, err = toVec3(pa.positional[0]); err != nil {
		return
	}
	if b, err = toVec3(pa.positional[1]); err != nil {
		return
	}
	c, err = toVec3(pa.positional[2])
	return
}

func twoQuats(pa kwArgs) (vecmath.Quat, vecmath.Quat, error) {
	a, err := toQuat(pa.positional[0])
	if err != nil {
		return a, a, err
	}
	b, err := toQuat(pa.positional[1])
	return a, b, err
}

func vecAndScalar(pa kwArgs) (vecmath.Vec3, float64, error) {
	v, err := toVec3(pa.positional[0])
	if err != nil {
		return v, 0, err
	}
	s, err := toFloat64(pa.positional[1])
	return v, s, err
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the vecmath builtins into a zygomys environment.
// Names are registered in snake_case; scripts use the kebab-case spelling,
// which preprocessSource rewrites.
//
// Operations keep vecmath's degenerate-input behavior: unitizing a zero
// vector, for example, yields NaN components rather than an error.
func registerBuiltins(env *zygo.Zlisp, cells int) {
	registerConstructors(env)
	registerVec3(env)
	registerMat(env)
	registerQuat(env)
	registerMesh(env, cells)

	// (dump x) renders the Go value behind x.
	define(env, "dump", 1, func(pa kwArgs) (zygo.Sexp, error) {
		return &zygo.SexpStr{S: spewConfig.Sdump(toGo(pa.positional[0]))}, nil
	})
}

func registerConstructors(env *zygo.Zlisp) {
	// (vec3 x y z)
	define(env, "vec3", 3, func(pa kwArgs) (zygo.Sexp, error) {
		f, err := toFloats(pa.positional)
		if err != nil {
			return nil, err
		}
		return vec(vecmath.NewVec3(f[0], f[1], f[2])), nil
	})

	// (quat w x y z)
	define(env, "quat", 4, func(pa kwArgs) (zygo.Sexp, error) {
		f, err := toFloats(pa.positional)
		if err != nil {
			return nil, err
		}
		return quat(vecmath.NewQuat(f[0], f[1], f[2], f[3])), nil
	})

	// (mat3 m00 m01 ... m22), row-major
	define(env, "mat3", 9, func(pa kwArgs) (zygo.Sexp, error) {
		f, err := toFloats(pa.positional)
		if err != nil {
			return nil, err
		}
		return mat3(vecmath.NewMat3([9]float64(f))), nil
	})

	// (mat4 m00 m01 ... m33), row-major
	define(env, "mat4", 16, func(pa kwArgs) (zygo.Sexp, error) {
		f, err := toFloats(pa.positional)
		if err != nil {
			return nil, err
		}
		return &sexpMat4{mat: vecmath.NewMat4([16]float64(f))}, nil
	})

	// (pure-quat v) is the quaternion (0, v).
	define(env, "pure_quat", 1, func(pa kwArgs) (zygo.Sexp, error) {
		v, err := toVec3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return quat(vecmath.QuatFromVec3(v)), nil
	})

	define(env, "radians", 1, func(pa kwArgs) (zygo.Sexp, error) {
		d, err := toFloat64(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return num(vecmath.ToRadians(d)), nil
	})

	define(env, "degrees", 1, func(pa kwArgs) (zygo.Sexp, error) {
		r, err := toFloat64(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return num(vecmath.ToDegrees(r)), nil
	})

	// (component x i) reads the i-th stored component: x y z of a vec3,
	// w x y z of a quat, row-major elements of a matrix, the three angles
	// of ypr/zyz, or angle then axis x y z of an angle-axis pair.
	define(env, "component", 2, func(pa kwArgs) (zygo.Sexp, error) {
		i, err := toFloat64(pa.positional[1])
		if err != nil {
			return nil, err
		}
		var c []float64
		switch v := pa.positional[0].(type) {
		case *sexpVec3:
			c = []float64{v.vec.X, v.vec.Y, v.vec.Z}
		case *sexpQuat:
			c = []float64{v.quat.W, v.quat.X, v.quat.Y, v.quat.Z}
		case *sexpMat3:
			c = v.mat[:]
		case *sexpMat4:
			c = v.mat[:]
		case *sexpAngles:
			c = []float64{v.angles.A, v.angles.B, v.angles.C}
		case *sexpAngleAxis:
			c = []float64{v.aa.Angle, v.aa.Axis.X, v.aa.Axis.Y, v.aa.Axis.Z}
		default:
			return nil, fmt.Errorf("no components in %s", v.SexpString(nil))
		}
		idx := int(i)
		if float64(idx) != i || idx < 0 || idx >= len(c) {
			return nil, fmt.Errorf("index %v out of range [0, %d)", i, len(c))
		}
		return num(c[idx]), nil
	})
}

func registerVec3(env *zygo.Zlisp) {
	define(env, "vadd", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoVecs(pa)
		if err != nil {
			return nil, err
		}
		return vec(a.Add(b)), nil
	})

	define(env, "vsub", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoVecs(pa)
		if err != nil {
			return nil, err
		}
		return vec(a.Sub(b)), nil
	})

	define(env, "cross", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoVecs(pa)
		if err != nil {
			return nil, err
		}
		return vec(a.Cross(b)), nil
	})

	define(env, "dot", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoVecs(pa)
		if err != nil {
			return nil, err
		}
		return num(a.Dot(b)), nil
	})

	define(env, "norm", 1, func(pa kwArgs) (zygo.Sexp, error) {
		v, err := toVec3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return num(v.Length()), nil
	})

	define(env, "dist", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoVecs(pa)
		if err != nil {
			return nil, err
		}
		return num(a.Distance(b)), nil
	})

	define(env, "unitize", 1, func(pa kwArgs) (zygo.Sexp, error) {
		v, err := toVec3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return vec(v.Unitize()), nil
	})

	define(env, "vscale", 2, func(pa kwArgs) (zygo.Sexp, error) {
		v, s, err := vecAndScalar(pa)
		if err != nil {
			return nil, err
		}
		return vec(v.ScalarMul(s)), nil
	})

	define(env, "vdiv", 2, func(pa kwArgs) (zygo.Sexp, error) {
		v, s, err := vecAndScalar(pa)
		if err != nil {
			return nil, err
		}
		return vec(v.ScalarDiv(s)), nil
	})

	// (angle-between a b) in radians, or degrees with :deg.
	define(env, "angle_between", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoVecs(pa)
		if err != nil {
			return nil, err
		}
		angle := a.Angle(b)
		if pa.flag("deg") {
			angle = vecmath.ToDegrees(angle)
		}
		return num(angle), nil
	})

	// (apply-mat v m) rotates v by the mat3 m.
	define(env, "apply_mat", 2, func(pa kwArgs) (zygo.Sexp, error) {
		v, err := toVec3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		m, err := toMat3(pa.positional[1])
		if err != nil {
			return nil, err
		}
		return vec(v.ApplyRotMat3(m)), nil
	})

	define(env, "normal_of", 3, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, c, err := threeVecs(pa)
		if err != nil {
			return nil, err
		}
		return vec(vecmath.NormalFromThreeVertices(a, b, c)), nil
	})

	define(env, "mean_of", 3, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, c, err := threeVecs(pa)
		if err != nil {
			return nil, err
		}
		return vec(vecmath.MeanFromThreeVertices(a, b, c)), nil
	})

	// (vec-of q) is the vector part of q.
	define(env, "vec_of", 1, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return vec(vecmath.Vec3FromQuat(q)), nil
	})
}

func registerMat(env *zygo.Zlisp) {
	// (mat3-angle-axis angle axis [:deg])
	define(env, "mat3_angle_axis", 2, func(pa kwArgs) (zygo.Sexp, error) {
		angle, err := angleArg(pa, pa.positional[0])
		if err != nil {
			return nil, err
		}
		axis, err := toVec3(pa.positional[1])
		if err != nil {
			return nil, err
		}
		return mat3(vecmath.Mat3FromAngleAxis(angle, axis)), nil
	})

	define(env, "mat3_from_quat", 1, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return mat3(vecmath.Mat3FromQuat(q)), nil
	})

	// (mat-mul a b) multiplies two mat3 or two mat4 values.
	define(env, "mat_mul", 2, func(pa kwArgs) (zygo.Sexp, error) {
		if _, ok := pa.positional[0].(*sexpMat4); ok {
			return mat4Mul(pa)
		}
		a, err := toMat3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		b, err := toMat3(pa.positional[1])
		if err != nil {
			return nil, err
		}
		return mat3(a.Mul(b)), nil
	})

	define(env, "mat4_mul", 2, mat4Mul)

	// (ypr m [:deg])
	define(env, "ypr", 1, func(pa kwArgs) (zygo.Sexp, error) {
		m, err := toMat3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		yaw, pitch, roll := m.YawPitchRoll()
		return anglesOut(pa, "ypr", yaw, pitch, roll), nil
	})

	// (zyz m [:deg])
	define(env, "zyz", 1, func(pa kwArgs) (zygo.Sexp, error) {
		m, err := toMat3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		phi, theta, psi := m.EulerAngleZYZ()
		return anglesOut(pa, "zyz", phi, theta, psi), nil
	})
}

func mat4Mul(pa kwArgs) (zygo.Sexp, error) {
	a, err := toMat4(pa.positional[0])
	if err != nil {
		return nil, err
	}
	b, err := toMat4(pa.positional[1])
	if err != nil {
		return nil, err
	}
	return &sexpMat4{mat: a.Mul(b)}, nil
}

func anglesOut(pa kwArgs, order string, a, b, c float64) zygo.Sexp {
	if pa.flag("deg") {
		a, b, c = vecmath.ToDegrees(a), vecmath.ToDegrees(b), vecmath.ToDegrees(c)
	}
	return &sexpAngles{angles: Angles{Order: order, A: a, B: b, C: c}}
}

func registerQuat(env *zygo.Zlisp) {
	// (quat-angle-axis angle axis [:deg])
	define(env, "quat_angle_axis", 2, func(pa kwArgs) (zygo.Sexp, error) {
		angle, err := angleArg(pa, pa.positional[0])
		if err != nil {
			return nil, err
		}
		axis, err := toVec3(pa.positional[1])
		if err != nil {
			return nil, err
		}
		return quat(vecmath.QuatFromAngleAxis(angle, axis)), nil
	})

	define(env, "qadd", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoQuats(pa)
		if err != nil {
			return nil, err
		}
		return quat(a.Add(b)), nil
	})

	define(env, "hamilton", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoQuats(pa)
		if err != nil {
			return nil, err
		}
		return quat(a.Mul(b)), nil
	})

	define(env, "qscale", 2, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		s, err := toFloat64(pa.positional[1])
		if err != nil {
			return nil, err
		}
		return quat(q.ScalarMul(s)), nil
	})

	define(env, "qnorm", 1, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return num(q.Length()), nil
	})

	define(env, "qunitize", 1, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return quat(q.Unitize()), nil
	})

	define(env, "conjugate", 1, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return quat(q.Conjugate()), nil
	})

	// (rotate q v)
	define(env, "rotate", 2, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		v, err := toVec3(pa.positional[1])
		if err != nil {
			return nil, err
		}
		return vec(q.RotateVec3(v)), nil
	})

	// (angle-axis q [:deg])
	define(env, "angle_axis", 1, func(pa kwArgs) (zygo.Sexp, error) {
		q, err := toQuat(pa.positional[0])
		if err != nil {
			return nil, err
		}
		angle, axis := q.AngleAxis()
		if pa.flag("deg") {
			angle = vecmath.ToDegrees(angle)
		}
		return &sexpAngleAxis{aa: AngleAxis{Angle: angle, Axis: axis}}, nil
	})

	define(env, "rot_between", 2, func(pa kwArgs) (zygo.Sexp, error) {
		a, b, err := twoVecs(pa)
		if err != nil {
			return nil, err
		}
		return quat(vecmath.RotBetweenVecs(a, b)), nil
	})
}
