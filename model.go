package canvas

import "math"

// Stroke modeling: raw pointer samples in, a denser smoothed and
// jittered sequence out. ModelStroke is a pure function of
// (points, preset, seed); a committed stroke re-models to the exact
// same sequence forever, which is what makes saved canvases render
// identically across sessions.

// modelStepLength is the target spacing of interpolated sub-steps.
const modelStepLength = 2.0

// hashNoise is the deterministic noise source for stroke jitter:
//
//	frac(sin(seed·997 + i·12.9898) · 43758.5453)
//
// The exact formula is part of the stroke format. Substituting a PRNG
// (or reordering the arithmetic) changes every rendered stroke shape,
// so it stays verbatim.
func hashNoise(seed, i float64) float64 {
	v := math.Sin(seed*997+i*12.9898) * 43758.5453
	return v - math.Floor(v)
}

// ModelStroke resamples raw points into the modeled sequence for the
// given preset and seed.
//
// The first raw point passes through unchanged. Each consecutive raw
// pair is subdivided into one sub-step per ~2px of distance; every
// sub-step eases toward the next raw point, is pulled toward the
// previously emitted point by the preset's smoothing (relaxing toward
// the raw path as the step completes), and is offset by seeded jitter.
//
// Never panics: a pair with NaN distance is skipped, so malformed input
// degrades to fewer emitted points.
func ModelStroke(points []StrokePoint, preset BrushPreset, seed float64) []StrokePoint {
	if len(points) == 0 {
		return nil
	}

	modeled := make([]StrokePoint, 0, len(points)*2)
	modeled = append(modeled, points[0])
	last := points[0]
	jitter := preset.Jitter * 1.6

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		next := points[i]
		dist := math.Hypot(next.X-prev.X, next.Y-prev.Y)
		if math.IsNaN(dist) {
			continue
		}
		steps := int(math.Ceil(dist / modelStepLength))
		if steps < 1 {
			steps = 1
		}

		for step := 1; step <= steps; step++ {
			t := float64(step) / float64(steps)
			easedT := math.Pow(t, 0.85)

			baseX := lerp(prev.X, next.X, easedT)
			baseY := lerp(prev.Y, next.Y, easedT)

			smoothing := lerp(preset.Smoothing, 1, easedT*0.35)
			sx := lerp(last.X, baseX, smoothing)
			sy := lerp(last.Y, baseY, smoothing)

			noiseX := (hashNoise(seed, float64(i*31+step)) - 0.5) * jitter
			noiseY := (hashNoise(seed, float64(i*31+step+17)) - 0.5) * jitter

			pt := StrokePoint{X: sx + noiseX, Y: sy + noiseY}
			modeled = append(modeled, pt)
			last = pt
		}
	}
	return modeled
}
