package canvas

import (
	"math"
	"testing"
)

func TestBrushCatalogValues(t *testing.T) {
	tests := []struct {
		style BrushStyle
		want  BrushPreset
	}{
		{BrushPencil, BrushPreset{Smoothing: 0.70, Jitter: 0.28, SizeScale: 0.95, Opacity: 0.82, Taper: true}},
		{BrushPen, BrushPreset{Smoothing: 0.78, Jitter: 0.08, SizeScale: 1.00, Opacity: 1.00, Taper: true}},
		{BrushMarker, BrushPreset{Smoothing: 0.68, Jitter: 0.05, SizeScale: 1.40, Opacity: 0.90, Taper: false}},
		{BrushChalk, BrushPreset{Smoothing: 0.62, Jitter: 0.38, SizeScale: 1.25, Opacity: 0.78, Taper: false}},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := Preset(tt.style); got != tt.want {
				t.Errorf("Preset(%s) = %+v, want %+v", tt.style, got, tt.want)
			}
		})
	}
}

func TestPresetUnknownFallsBackToPen(t *testing.T) {
	if got := Preset("crayon"); got != Preset(BrushPen) {
		t.Errorf("unknown style = %+v, want pen preset", got)
	}
}

func TestStylesCoversCatalog(t *testing.T) {
	styles := Styles()
	if len(styles) != len(brushCatalog) {
		t.Fatalf("Styles() has %d entries, catalog has %d", len(styles), len(brushCatalog))
	}
	for _, s := range styles {
		if _, ok := brushCatalog[s]; !ok {
			t.Errorf("style %q not in catalog", s)
		}
	}
}

func TestTaperProfile(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{"start", 0, 0.45},
		{"ramp in", 0.1, lerp(0.45, 1, 0.5)},
		{"end of ramp", 0.2, 1},
		{"middle", 0.5, 1},
		{"start of fall", 0.8, 1},
		{"ramp out", 0.9, lerp(1, 0.55, 0.5)},
		{"end", 1, 0.55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "taper", TaperProfile(tt.p, true), tt.want)
		})
	}
}

func TestTaperProfileConstantWithoutTaper(t *testing.T) {
	for _, p := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if got := TaperProfile(p, false); got != 1 {
			t.Errorf("TaperProfile(%v, false) = %v, want 1", p, got)
		}
	}
}

func TestBuildSegmentsEmpty(t *testing.T) {
	if segs := BuildSegments(nil, Preset(BrushPen), 8); segs != nil {
		t.Errorf("empty input produced %d segments", len(segs))
	}
}

func TestBuildSegmentsSinglePoint(t *testing.T) {
	segs := BuildSegments([]StrokePoint{{X: 4, Y: 5}}, Preset(BrushMarker), 10)
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1", len(segs))
	}
	cap := segs[0]
	if !cap.Round {
		t.Error("first segment should be the round cap")
	}
	assertNear(t, "cap x", cap.X, 4)
	assertNear(t, "cap y", cap.Y, 5)
	// marker: no taper, sizeScale 1.4
	assertNear(t, "cap thickness", cap.Thickness, 14)
	assertNear(t, "cap opacity", cap.Opacity, 0.90)
}

func TestBuildSegmentsSkipsZeroLength(t *testing.T) {
	pts := []StrokePoint{{0, 0}, {10, 0}, {10, 0}, {20, 0}}
	segs := BuildSegments(pts, Preset(BrushMarker), 10)
	// cap + 2 non-degenerate pairs; the duplicate pair is skipped
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3", len(segs))
	}
	for i, s := range segs[1:] {
		if s.Length == 0 {
			t.Errorf("segment %d has zero length", i+1)
		}
	}
}

func TestBuildSegmentsGeometry(t *testing.T) {
	pts := []StrokePoint{{0, 0}, {10, 0}, {10, 10}}
	segs := BuildSegments(pts, Preset(BrushMarker), 10)
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3", len(segs))
	}

	h := segs[1]
	assertNear(t, "horizontal mid x", h.X, 5)
	assertNear(t, "horizontal mid y", h.Y, 0)
	assertNear(t, "horizontal length", h.Length, 10)
	assertNear(t, "horizontal angle", h.Angle, 0)

	v := segs[2]
	assertNear(t, "vertical mid x", v.X, 10)
	assertNear(t, "vertical mid y", v.Y, 5)
	assertNear(t, "vertical angle", v.Angle, math.Pi/2)
}

func TestBuildSegmentsTaperedThickness(t *testing.T) {
	// 11 points, pen preset (taper on), size 10: p runs 0, 0.1, ... 1.0.
	pts := make([]StrokePoint, 11)
	for i := range pts {
		pts[i] = StrokePoint{X: float64(i) * 10}
	}
	segs := BuildSegments(pts, Preset(BrushPen), 10)
	if len(segs) != 11 {
		t.Fatalf("segments = %d, want 11", len(segs))
	}

	assertNear(t, "cap thickness", segs[0].Thickness, 10*0.45)
	// pair index 2 → p = 0.2 → full thickness
	assertNear(t, "plateau start", segs[2].Thickness, 10)
	// pair index 8 → p = 0.8 → still full
	assertNear(t, "plateau end", segs[8].Thickness, 10)
	// pair index 10 → p = 1.0 → tail taper
	assertNear(t, "tail", segs[10].Thickness, 10*0.55)
}
