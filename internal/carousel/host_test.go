package carousel

import "fmt"

// recordingHost is a Host with a fixed panel count that records every
// notification and applied transform.
type recordingHost struct {
	n       int
	width   float64
	events  []string
	applied []Transform
}

func newRecordingHost(n int, width float64) *recordingHost {
	return &recordingHost{n: n, width: width}
}

func (h *recordingHost) Len() int       { return h.n }
func (h *recordingHost) Width() float64 { return h.width }

func (h *recordingHost) Notify(i int, n Notification) {
	h.events = append(h.events, fmt.Sprintf("%s:%d", n, i))
}

func (h *recordingHost) Apply(t Transform) {
	h.applied = append(h.applied, t)
}

func (h *recordingHost) reset() {
	h.events = nil
	h.applied = nil
}
