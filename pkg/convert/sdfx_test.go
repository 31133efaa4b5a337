package convert

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"

	"github.com/chazu/spatial/pkg/vecmath"
)

func TestV3RoundTrip(t *testing.T) {
	v := vecmath.NewVec3(-1, 0.5, 12)
	assert.Equal(t, v3.Vec{X: -1, Y: 0.5, Z: 12}, ToV3(v))
	assert.Equal(t, v, FromV3(ToV3(v)))
}

func TestV3CrossAgrees(t *testing.T) {
	a := vecmath.NewVec3(-1, 1, 2)
	b := vecmath.NewVec3(2, 3, -2)

	assert.Equal(t, a.Cross(b), FromV3(ToV3(a).Cross(ToV3(b))))
	assert.Equal(t, a.Dot(b), ToV3(a).Dot(ToV3(b)))
}
