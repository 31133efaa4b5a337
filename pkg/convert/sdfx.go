package convert

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/spatial/pkg/vecmath"
)

// ToV3 converts a vecmath.Vec3 to an sdfx vector.
func ToV3(v vecmath.Vec3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromV3 converts an sdfx vector to a vecmath.Vec3.
func FromV3(v v3.Vec) vecmath.Vec3 {
	return vecmath.NewVec3(v.X, v.Y, v.Z)
}
