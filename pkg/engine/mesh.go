package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/spatial/pkg/mesh"
	"github.com/chazu/spatial/pkg/vecmath"
)

type sexpMesh struct {
	mesh *mesh.Mesh
}

func (m *sexpMesh) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(mesh %q %d)", m.mesh.Name, m.mesh.TriangleCount())
}
func (m *sexpMesh) Type() *zygo.RegisteredType { return nil }

func toMesh(s zygo.Sexp) (*mesh.Mesh, error) {
	if m, ok := s.(*sexpMesh); ok {
		return m.mesh, nil
	}
	return nil, fmt.Errorf("expected mesh, got %T (%s)", s, s.SexpString(nil))
}

// registerMesh installs builtins that tessellate solids and place them with
// vecmath rotations. cells is the marching cubes resolution.
func registerMesh(env *zygo.Zlisp, cells int) {
	// (box x y z)
	define(env, "box", 3, func(pa kwArgs) (zygo.Sexp, error) {
		f, err := toFloats(pa.positional)
		if err != nil {
			return nil, err
		}
		m, err := mesh.Box(f[0], f[1], f[2], cells)
		if err != nil {
			return nil, err
		}
		return &sexpMesh{mesh: m}, nil
	})

	// (cylinder height radius)
	define(env, "cylinder", 2, func(pa kwArgs) (zygo.Sexp, error) {
		f, err := toFloats(pa.positional)
		if err != nil {
			return nil, err
		}
		m, err := mesh.Cylinder(f[0], f[1], cells)
		if err != nil {
			return nil, err
		}
		return &sexpMesh{mesh: m}, nil
	})

	// (place m q offset) rotates m by q, then translates it by offset.
	define(env, "place", 3, func(pa kwArgs) (zygo.Sexp, error) {
		m, err := toMesh(pa.positional[0])
		if err != nil {
			return nil, err
		}
		q, err := toQuat(pa.positional[1])
		if err != nil {
			return nil, err
		}
		offset, err := toVec3(pa.positional[2])
		if err != nil {
			return nil, err
		}
		t := mesh.Transform{Rotation: q, Translation: offset}
		return &sexpMesh{mesh: m.Transformed(t)}, nil
	})

	define(env, "centroid", 1, func(pa kwArgs) (zygo.Sexp, error) {
		m, err := toMesh(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return vec(m.Centroid()), nil
	})

	// (extent m) is the size of the axis-aligned bounding box.
	define(env, "extent", 1, func(pa kwArgs) (zygo.Sexp, error) {
		m, err := toMesh(pa.positional[0])
		if err != nil {
			return nil, err
		}
		lo, hi := m.Bounds()
		return vec(hi.Sub(lo)), nil
	})

	define(env, "triangle_count", 1, func(pa kwArgs) (zygo.Sexp, error) {
		m, err := toMesh(pa.positional[0])
		if err != nil {
			return nil, err
		}
		return &zygo.SexpInt{Val: int64(m.TriangleCount())}, nil
	})

	// (face-normal m i) is the unit normal of triangle i.
	define(env, "face_normal", 2, func(pa kwArgs) (zygo.Sexp, error) {
		m, err := toMesh(pa.positional[0])
		if err != nil {
			return nil, err
		}
		i, err := toFloat64(pa.positional[1])
		if err != nil {
			return nil, err
		}
		idx := int(i)
		if float64(idx) != i || idx < 0 || idx >= m.TriangleCount() {
			return nil, fmt.Errorf("triangle %s out of range [0, %d)", fmtNum(i), m.TriangleCount())
		}
		tri := m.Triangle(idx)
		return vec(vecmath.NormalFromVertexArray(tri)), nil
	})
}
