package affine

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func eq(p1, p2 f32.Vec2) bool {
	tol := 1e-5
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	return math.Abs(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestTransformRotateAround(t *testing.T) {
	p := f32.Vec2{-1, -1}
	pt := Transform(Mul(Offsetting(f32.Vec2{1, 1}), Rotating(-math.Pi/2), Offsetting(f32.Vec2{-1, -1})), p)
	target := f32.Vec2{-1, 3}
	if !eq(pt, target) {
		t.Errorf("Rotate not as expected, got %v, want %v", pt, target)
	}
}

func TestScaleThenOffset(t *testing.T) {
	m := Mul(Offsetting(f32.Vec2{10, 0}), Scaling(f32.Vec2{2, -1}))
	if got, want := Transform(m, f32.Vec2{3, 4}), (f32.Vec2{16, -4}); !eq(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		p0, p1 image.Point
		want   float32
	}{
		{image.Pt(0, 0), image.Pt(3, 4), 5},
		{image.Pt(-1, -1), image.Pt(-1, -1), 0},
		{image.Pt(2, 0), image.Pt(-2, 0), 4},
	}
	for _, test := range tests {
		if got := Dist(test.p0, test.p1); got != test.want {
			t.Errorf("Dist(%v, %v) = %g, want %g", test.p0, test.p1, got, test.want)
		}
	}
}
