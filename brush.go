package canvas

import "math"

// BrushStyle names a brush preset in the fixed catalog.
type BrushStyle string

const (
	BrushPencil BrushStyle = "pencil"
	BrushPen    BrushStyle = "pen"
	BrushMarker BrushStyle = "marker"
	BrushChalk  BrushStyle = "chalk"
)

// BrushPreset controls how raw pointer samples become a rendered stroke:
// Smoothing pulls modeled points toward the previous one, Jitter adds
// seeded hand-drawn noise, SizeScale multiplies the pen size, Opacity is
// carried onto every emitted segment, and Taper thins the stroke ends.
type BrushPreset struct {
	Smoothing float64
	Jitter    float64
	SizeScale float64
	Opacity   float64
	Taper     bool
}

// brushCatalog is the fixed preset table. Values are load-bearing:
// committed strokes re-model from (points, style, seed), so changing a
// preset changes every existing stroke drawn with it.
var brushCatalog = map[BrushStyle]BrushPreset{
	BrushPencil: {Smoothing: 0.70, Jitter: 0.28, SizeScale: 0.95, Opacity: 0.82, Taper: true},
	BrushPen:    {Smoothing: 0.78, Jitter: 0.08, SizeScale: 1.00, Opacity: 1.00, Taper: true},
	BrushMarker: {Smoothing: 0.68, Jitter: 0.05, SizeScale: 1.40, Opacity: 0.90, Taper: false},
	BrushChalk:  {Smoothing: 0.62, Jitter: 0.38, SizeScale: 1.25, Opacity: 0.78, Taper: false},
}

// Preset returns the catalog entry for style. Unknown styles fall back
// to the pen preset.
func Preset(style BrushStyle) BrushPreset {
	if p, ok := brushCatalog[style]; ok {
		return p
	}
	return brushCatalog[BrushPen]
}

// Styles returns the catalog's style names in a stable order.
func Styles() []BrushStyle {
	return []BrushStyle{BrushPencil, BrushPen, BrushMarker, BrushChalk}
}

// TaperProfile returns the thickness multiplier at position fraction p
// along the stroke (0 at the first point, 1 at the last). Tapering
// strokes ramp from 0.45 over the first fifth, hold 1 through the
// middle, and fall to 0.55 over the last fifth. Non-tapering strokes
// are constant.
func TaperProfile(p float64, taper bool) float64 {
	if !taper {
		return 1
	}
	switch {
	case p < 0.2:
		return lerp(0.45, 1, p/0.2)
	case p <= 0.8:
		return 1
	default:
		return lerp(1, 0.55, (p-0.8)/0.2)
	}
}

// Segment is one renderable piece of a modeled stroke: either the round
// cap at the stroke's first point (Round true, Length 0) or an oriented
// rectangle between two consecutive modeled points. Coordinates are the
// segment's center; Angle is in radians.
type Segment struct {
	X, Y      float64
	Length    float64
	Angle     float64
	Thickness float64
	Opacity   float64
	Round     bool
}

// BuildSegments converts a modeled point sequence into segment geometry:
// one round cap at the first point plus one oriented rectangle per
// consecutive pair, thickness tapered along the stroke. Zero-length
// pairs are skipped to avoid degenerate geometry. size is the pen size
// before preset scaling.
func BuildSegments(points []StrokePoint, preset BrushPreset, size float64) []Segment {
	if len(points) == 0 {
		return nil
	}
	base := size * preset.SizeScale
	maxIndex := len(points) - 1
	if maxIndex < 1 {
		maxIndex = 1
	}

	segs := make([]Segment, 0, len(points))
	segs = append(segs, Segment{
		X:         points[0].X,
		Y:         points[0].Y,
		Thickness: base * TaperProfile(0, preset.Taper),
		Opacity:   preset.Opacity,
		Round:     true,
	})

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		next := points[i]
		dx := next.X - prev.X
		dy := next.Y - prev.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 || math.IsNaN(dist) {
			continue
		}
		p := float64(i) / float64(maxIndex)
		segs = append(segs, Segment{
			X:         (prev.X + next.X) / 2,
			Y:         (prev.Y + next.Y) / 2,
			Length:    dist,
			Angle:     math.Atan2(dy, dx),
			Thickness: base * TaperProfile(p, preset.Taper),
			Opacity:   preset.Opacity,
		})
	}
	return segs
}
