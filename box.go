package ljmd

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SimBox is an axis-aligned, periodic simulation cell: origin plus strictly
// positive extents along each axis.
type SimBox struct {
	Origin    mgl64.Vec3
	Dimension mgl64.Vec3
}

func (b SimBox) Validate() error {
	for k := 0; k < 3; k++ {
		if b.Dimension[k] <= 0 {
			return &ConfigError{Field: "box_length", Reason: "every axis must be strictly positive"}
		}
	}
	return nil
}

func (b SimBox) Volume() float64 {
	return b.Dimension.X() * b.Dimension.Y() * b.Dimension.Z()
}

// MinimumImage returns r adjusted, axis by axis, to the displacement of the
// nearest periodic replica: |MinimumImage(r)[k]| <= Dimension[k]/2.
func (b SimBox) MinimumImage(r mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for k := 0; k < 3; k++ {
		l := b.Dimension[k]
		out[k] = r[k] - l*math.Round(r[k]/l)
	}
	return out
}

// Wrap folds p back into [Origin[k], Origin[k]+Dimension[k]) on every axis,
// using a positive-remainder modulus so negative offsets wrap correctly
// (Go's native % keeps the dividend's sign, which would leave negative
// coordinates outside the box).
func (b SimBox) Wrap(p mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for k := 0; k < 3; k++ {
		out[k] = b.Origin[k] + modPositive(p[k]-b.Origin[k], b.Dimension[k])
	}
	return out
}

func modPositive(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
