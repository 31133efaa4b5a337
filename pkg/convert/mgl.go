package convert

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/spatial/pkg/vecmath"
)

// ToMGLVec3 converts a vecmath.Vec3 to mgl64.Vec3.
func ToMGLVec3(v vecmath.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMGLVec3 converts an mgl64.Vec3 to vecmath.Vec3.
func FromMGLVec3(v mgl64.Vec3) vecmath.Vec3 {
	return vecmath.NewVec3(v[0], v[1], v[2])
}

// ToMGLQuat converts a vecmath.Quat to mgl64.Quat.
func ToMGLQuat(q vecmath.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// FromMGLQuat converts an mgl64.Quat to vecmath.Quat.
func FromMGLQuat(q mgl64.Quat) vecmath.Quat {
	return vecmath.NewQuat(q.W, q.V[0], q.V[1], q.V[2])
}

// ToMGLMat3 converts a row-major vecmath.Mat3 to a column-major mgl64.Mat3.
func ToMGLMat3(m vecmath.Mat3) mgl64.Mat3 {
	var out mgl64.Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out.Set(row, col, m[row*3+col])
		}
	}
	return out
}

// FromMGLMat3 converts a column-major mgl64.Mat3 to a row-major vecmath.Mat3.
func FromMGLMat3(m mgl64.Mat3) vecmath.Mat3 {
	var out vecmath.Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = m.At(row, col)
		}
	}
	return out
}

// ToMGLMat4 converts a row-major vecmath.Mat4 to a column-major mgl64.Mat4.
func ToMGLMat4(m vecmath.Mat4) mgl64.Mat4 {
	var out mgl64.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, col, m[row*4+col])
		}
	}
	return out
}

// FromMGLMat4 converts a column-major mgl64.Mat4 to a row-major vecmath.Mat4.
func FromMGLMat4(m mgl64.Mat4) vecmath.Mat4 {
	var out vecmath.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = m.At(row, col)
		}
	}
	return out
}
