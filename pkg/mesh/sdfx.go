package mesh

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/spatial/pkg/convert"
	"github.com/chazu/spatial/pkg/vecmath"
)

// DefaultCells controls marching cubes tessellation resolution.
const DefaultCells = 64

// Box tessellates a box with the given dimensions, centered at the origin.
func Box(x, y, z float64, cells int) (*Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("mesh: box %gx%gx%g: %w", x, y, z, err)
	}
	m := FromSDF(s, cells)
	m.Name = "box"
	return m, nil
}

// Cylinder tessellates a cylinder along Z, centered at the origin.
func Cylinder(height, radius float64, cells int) (*Mesh, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("mesh: cylinder h=%g r=%g: %w", height, radius, err)
	}
	m := FromSDF(s, cells)
	m.Name = "cylinder"
	return m, nil
}

// FromSDF converts a solid to a triangle mesh using marching cubes.
// Every vertex carries the face normal of its triangle. Zero-area triangles
// have no defined normal and are dropped.
func FromSDF(s sdf.SDF3, cells int) *Mesh {
	if cells <= 0 {
		cells = DefaultCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	numVerts := len(triangles) * 3
	m := &Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
	}

	for _, tri := range triangles {
		verts := [3]vecmath.Vec3{
			convert.FromV3(tri[0]),
			convert.FromV3(tri[1]),
			convert.FromV3(tri[2]),
		}
		ab := verts[1].Sub(verts[0])
		ac := verts[2].Sub(verts[0])
		n, err := ab.Cross(ac).TryUnitize()
		if err != nil {
			continue
		}

		base := uint32(m.VertexCount())
		for j, v := range verts {
			m.Vertices = appendVec3(m.Vertices, v)
			m.Normals = appendVec3(m.Normals, n)
			m.Indices = append(m.Indices, base+uint32(j))
		}
	}

	return m
}
