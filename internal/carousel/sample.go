package carousel

// GestureSample is the latest reported pan state
type GestureSample struct {
	DeltaX float64 // horizontal displacement since the gesture started
	Final  bool    // true exactly once per gesture, on release

	// Gesture identifies the pan this sample belongs to. Zero means the
	// sample is untracked and is always honored when final.
	Gesture uint64
}

// RawPan is a pan event as reported by the input layer. Missing fields
// are treated as zero values.
type RawPan struct {
	DeltaX *float64
	Final  *bool
}

// Sampler converts raw pan events into gesture samples.
// It keeps only the latest sample.
type Sampler struct {
	latest  GestureSample
	gesture uint64
	open    bool // a gesture is in progress
}

// NewSampler creates a sampler with the neutral sample
func NewSampler() *Sampler {
	return &Sampler{}
}

// OnPanEvent overwrites the latest sample with the given event and
// returns it. Every call should be followed by exactly one reconcile.
func (s *Sampler) OnPanEvent(raw RawPan) GestureSample {
	var sample GestureSample
	if raw.DeltaX != nil {
		sample.DeltaX = *raw.DeltaX
	}
	if raw.Final != nil {
		sample.Final = *raw.Final
	}

	if !s.open {
		s.gesture++
		s.open = true
	}
	sample.Gesture = s.gesture
	if sample.Final {
		s.open = false
	}

	s.latest = sample
	return sample
}

// Reset replaces the latest sample with the neutral one and abandons the
// gesture in progress. The next event starts a new gesture.
func (s *Sampler) Reset() {
	s.latest = GestureSample{}
	s.open = false
}

// Latest returns the most recent sample
func (s *Sampler) Latest() GestureSample {
	return s.latest
}

// Pan builds a RawPan with both fields present
func Pan(deltaX float64, final bool) RawPan {
	return RawPan{DeltaX: &deltaX, Final: &final}
}
