// Package vecmath provides the fixed-size 3D math primitives used by spatial:
// Vec3, Mat3, Mat4 and Quat.
//
// All types are small value types. Operations never mutate their receiver;
// they return a fresh value. Matrices are stored row-major.
//
// Degenerate inputs (zero-length vectors, gimbal-locked matrices, identity
// quaternions passed to AngleAxis) are not checked by the plain operations:
// they propagate NaN or Inf through ordinary float64 arithmetic. The Try*
// variants in errors.go report those cases as errors instead.
package vecmath
