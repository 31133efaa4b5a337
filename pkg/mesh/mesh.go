// Package mesh holds triangle meshes and the rigid transforms that place
// them. Normals, centroids and rotations are computed with vecmath; meshes
// can be produced from sdfx signed distance functions.
package mesh

import "github.com/chazu/spatial/pkg/vecmath"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) vecmath.Vec3 {
	return vec3At(m.Vertices, i)
}

// Normal returns the normal stored for vertex i.
func (m *Mesh) Normal(i int) vecmath.Vec3 {
	return vec3At(m.Normals, i)
}

// Triangle returns the three vertices of triangle i in winding order.
func (m *Mesh) Triangle(i int) [3]vecmath.Vec3 {
	return [3]vecmath.Vec3{
		m.Vertex(int(m.Indices[i*3])),
		m.Vertex(int(m.Indices[i*3+1])),
		m.Vertex(int(m.Indices[i*3+2])),
	}
}

// FaceNormals returns the unit normal of every triangle, derived from its
// winding. Degenerate triangles yield NaN normals.
func (m *Mesh) FaceNormals() []vecmath.Vec3 {
	out := make([]vecmath.Vec3, m.TriangleCount())
	for i := range out {
		out[i] = vecmath.NormalFromVertexArray(m.Triangle(i))
	}
	return out
}

// Centroid returns the mean of the triangle centroids. Each triangle counts
// once regardless of its area. An empty mesh has its centroid at the origin.
func (m *Mesh) Centroid() vecmath.Vec3 {
	n := m.TriangleCount()
	if n == 0 {
		return vecmath.ZeroVec3()
	}
	sum := vecmath.ZeroVec3()
	for i := 0; i < n; i++ {
		sum = sum.Add(vecmath.MeanFromVertexArray(m.Triangle(i)))
	}
	return sum.ScalarDiv(float64(n))
}

// Transformed returns a copy of m with t applied. Vertices are rotated and
// translated; normals are only rotated.
func (m *Mesh) Transformed(t Transform) *Mesh {
	out := &Mesh{
		Vertices: make([]float32, 0, len(m.Vertices)),
		Normals:  make([]float32, 0, len(m.Normals)),
		Indices:  append([]uint32(nil), m.Indices...),
		Name:     m.Name,
	}
	for i := 0; i < m.VertexCount(); i++ {
		out.Vertices = appendVec3(out.Vertices, t.Apply(m.Vertex(i)))
	}
	for i := 0; i < len(m.Normals)/3; i++ {
		out.Normals = appendVec3(out.Normals, t.Rotation.RotateVec3(m.Normal(i)))
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (lo, hi vecmath.Vec3) {
	if m.IsEmpty() {
		return lo, hi
	}
	lo = m.Vertex(0)
	hi = lo
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		lo = vecmath.NewVec3(min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z))
		hi = vecmath.NewVec3(max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z))
	}
	return lo, hi
}

func vec3At(a []float32, i int) vecmath.Vec3 {
	return vecmath.NewVec3(float64(a[i*3]), float64(a[i*3+1]), float64(a[i*3+2]))
}

func appendVec3(a []float32, v vecmath.Vec3) []float32 {
	return append(a, float32(v.X), float32(v.Y), float32(v.Z))
}
