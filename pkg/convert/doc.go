// Package convert translates vecmath values to and from the math types of
// other geometry libraries: the sdfx CAD kernel (github.com/deadsy/sdfx) and
// mathgl (github.com/go-gl/mathgl).
//
// vecmath matrices are row-major while mathgl matrices are column-major, so
// the matrix conversions transpose storage order while preserving the
// mathematical matrix.
package convert
