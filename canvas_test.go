package canvas

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below min", 0.1, MinScale},
		{"at min", MinScale, MinScale},
		{"mid", 1.0, 1.0},
		{"at max", MaxScale, MaxScale},
		{"above max", 3.0, MaxScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampScale(tt.in); got != tt.want {
				t.Errorf("clampScale(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	if !finite(0, -1.5, 1e300) {
		t.Error("real values should be finite")
	}
	if finite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if finite(math.Inf(1)) || finite(math.Inf(-1)) {
		t.Error("infinities should not be finite")
	}
	if finite(1, 2, math.NaN()) {
		t.Error("one NaN should fail the whole set")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 20, Width: 100, Height: 50}.Center()
	assertNear(t, "center X", c.X, 60)
	assertNear(t, "center Y", c.Y, 45)
}

func TestColorToRGBA(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 1}.ToRGBA()
	if got.R != 255 || got.B != 0 || got.A != 255 {
		t.Errorf("ToRGBA = %+v", got)
	}
	if got.G != 128 {
		t.Errorf("G = %d, want 128", got.G)
	}

	// Out-of-range components clamp instead of wrapping.
	hot := Color{R: 1.5, G: -0.2, B: 0, A: 1}.ToRGBA()
	if hot.R != 255 || hot.G != 0 {
		t.Errorf("clamped ToRGBA = %+v", hot)
	}
}

func TestLerp(t *testing.T) {
	assertNear(t, "lerp 0", lerp(2, 10, 0), 2)
	assertNear(t, "lerp 1", lerp(2, 10, 1), 10)
	assertNear(t, "lerp half", lerp(2, 10, 0.5), 6)
}
