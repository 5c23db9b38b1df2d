package ljmd

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSimBox_Wrap(t *testing.T) {
	box := SimBox{Origin: mgl64.Vec3{0, 0, 0}, Dimension: mgl64.Vec3{1, 1, 1}}

	in := []mgl64.Vec3{{1.25, -0.25, 0.5}, {0.0, 0.0, 0.0}}
	want := []mgl64.Vec3{{0.25, 0.75, 0.5}, {0.0, 0.0, 0.0}}

	for i, p := range in {
		got := box.Wrap(p)
		for k := 0; k < 3; k++ {
			if math.Abs(got[k]-want[i][k]) > 1e-9 {
				t.Errorf("Wrap(%v)[%d] = %v, want %v", p, k, got[k], want[i][k])
			}
		}
	}
}

func TestSimBox_Wrap_Idempotent(t *testing.T) {
	box := SimBox{Origin: mgl64.Vec3{-2, 3, 0}, Dimension: mgl64.Vec3{4, 5, 6}}

	points := []mgl64.Vec3{
		{10, -20, 30}, {-100, 100, -50}, {0, 0, 0}, {-2, 8, 6},
	}
	for _, p := range points {
		once := box.Wrap(p)
		twice := box.Wrap(once)
		for k := 0; k < 3; k++ {
			if math.Abs(once[k]-twice[k]) > 1e-9 {
				t.Errorf("wrap not idempotent at %v: once=%v twice=%v", p, once, twice)
			}
			if once[k] < box.Origin[k] || once[k] >= box.Origin[k]+box.Dimension[k] {
				t.Errorf("wrap(%v)[%d] = %v out of [%v,%v)", p, k, once[k], box.Origin[k], box.Origin[k]+box.Dimension[k])
			}
		}
	}
}

func TestSimBox_MinimumImage(t *testing.T) {
	box := SimBox{Origin: mgl64.Vec3{0, 0, 0}, Dimension: mgl64.Vec3{10, 10, 10}}

	got := box.MinimumImage(mgl64.Vec3{6, -7, 0})
	want := mgl64.Vec3{-4, 3, 0}

	for k := 0; k < 3; k++ {
		if math.Abs(got[k]-want[k]) > 1e-9 {
			t.Errorf("MinimumImage[%d] = %v, want %v", k, got[k], want[k])
		}
	}
}

func TestSimBox_MinimumImage_BoundedByHalfBox(t *testing.T) {
	box := SimBox{Origin: mgl64.Vec3{0, 0, 0}, Dimension: mgl64.Vec3{3, 4, 5}}

	for _, d := range []mgl64.Vec3{{100, -200, 37}, {-50, 2, -19}, {1.5, 2, 2.5}} {
		got := box.MinimumImage(d)
		for k := 0; k < 3; k++ {
			if math.Abs(got[k]) > box.Dimension[k]/2+1e-9 {
				t.Errorf("MinimumImage(%v)[%d] = %v exceeds L/2 = %v", d, k, got[k], box.Dimension[k]/2)
			}
		}
	}
}

func TestSimBox_Validate(t *testing.T) {
	bad := SimBox{Origin: mgl64.Vec3{0, 0, 0}, Dimension: mgl64.Vec3{1, 0, 1}}
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for non-positive dimension")
	}
}
