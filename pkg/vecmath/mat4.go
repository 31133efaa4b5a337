package vecmath

// Mat4 is a 4x4 matrix stored row-major: element (row, col) is at index
// row*4+col. It has no conversions to the rotation types.
type Mat4 [16]float64

// Mat4Zero returns the all-zero matrix.
func Mat4Zero() Mat4 { return Mat4{} }

// NewMat4 builds a matrix from sixteen row-major values.
func NewMat4(v [16]float64) Mat4 { return Mat4(v) }

// Values returns the sixteen row-major components.
func (m Mat4) Values() [16]float64 { return [16]float64(m) }

// Mul returns the matrix product m·o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row*4+col] = m[row*4+0]*o[0*4+col] +
				m[row*4+1]*o[1*4+col] +
				m[row*4+2]*o[2*4+col] +
				m[row*4+3]*o[3*4+col]
		}
	}
	return r
}

// M00 through M33 return the element at row i, column j (Mij).
func (m Mat4) M00() float64 { return m[0] }
func (m Mat4) M01() float64 { return m[1] }
func (m Mat4) M02() float64 { return m[2] }
func (m Mat4) M03() float64 { return m[3] }
func (m Mat4) M10() float64 { return m[4] }
func (m Mat4) M11() float64 { return m[5] }
func (m Mat4) M12() float64 { return m[6] }
func (m Mat4) M13() float64 { return m[7] }
func (m Mat4) M20() float64 { return m[8] }
func (m Mat4) M21() float64 { return m[9] }
func (m Mat4) M22() float64 { return m[10] }
func (m Mat4) M23() float64 { return m[11] }
func (m Mat4) M30() float64 { return m[12] }
func (m Mat4) M31() float64 { return m[13] }
func (m Mat4) M32() float64 { return m[14] }
func (m Mat4) M33() float64 { return m[15] }

// String dumps the sixteen components row by row. Debug output only.
func (m Mat4) String() string {
	return dumpRows(m[:], 4)
}
