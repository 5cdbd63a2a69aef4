package carousel

import "math"

// MinScale is the smallest scale a panel shrinks to while dragging
const MinScale = 0.8

// Transform is the visual placement of one panel for a frame
type Transform struct {
	Index int
	X     float64 // horizontal translation relative to the viewport origin
	Scale float64 // in [MinScale, 1]
}

// LiveDeltaX is the drag offset used for live feedback. A finalized
// sample contributes nothing so the commit snaps cleanly.
func LiveDeltaX(s GestureSample) float64 {
	if s.Final {
		return 0
	}
	return s.DeltaX
}

// ComputeTransform places panel i given the active index, the live drag
// offset and the viewport width. The scale profile is a tent centered on
// the viewport, floored at MinScale:
//
//	__/\__
func ComputeTransform(i, active int, liveDeltaX, width float64) Transform {
	offset := float64(i - active)

	u := offset
	if width > 0 {
		u += liveDeltaX / width
	}
	v := 1 - math.Abs(u*(1-MinScale))

	return Transform{
		Index: i,
		X:     offset*width + liveDeltaX,
		Scale: math.Max(v, MinScale),
	}
}

// ComputeTransforms places all n panels
func ComputeTransforms(n, active int, liveDeltaX, width float64) []Transform {
	out := make([]Transform, n)
	for i := 0; i < n; i++ {
		out[i] = ComputeTransform(i, active, liveDeltaX, width)
	}
	return out
}
