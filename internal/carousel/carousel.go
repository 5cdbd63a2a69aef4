// Package carousel reconciles pan gestures and direct navigation into an
// active panel index and per-panel transforms.
//
// A Carousel is not safe for concurrent use. The host drives it from a
// single goroutine and calls Reconcile after every event that may change
// what is on screen.
package carousel

import "fmt"

// Host is the container that holds the carousel's panels
type Host interface {
	// Len returns the number of panels. It must be positive.
	Len() int
	// Width returns the viewport width in layout units
	Width() float64
	// Notify tells panel i that it became active or inactive
	Notify(i int, n Notification)
	// Apply places panel i for the current frame
	Apply(t Transform)
}

// Frame is the result of one reconciliation cycle
type Frame struct {
	Active     int
	Transforms []Transform
	Watched    []bool
	Committed  bool // the cycle changed the active index
}

// Carousel owns the active index of a Host's panels
type Carousel struct {
	host  Host
	index int

	// gesture id of the last finalized sample that was committed
	lastCommitted uint64
}

// New creates a carousel on panel 0 and notifies it that it entered.
// Panics if the host has no panels.
func New(host Host) *Carousel {
	if n := host.Len(); n <= 0 {
		panic(fmt.Sprintf("carousel: host has %d panels", n))
	}
	c := &Carousel{host: host}
	host.Notify(0, Entered)
	return c
}

// Index returns the active panel
func (c *Carousel) Index() int {
	return c.index
}

// Len returns the number of panels
func (c *Carousel) Len() int {
	return c.host.Len()
}

// SetIndex makes panel i active. It does not clamp: i must be in
// [0, Len()-1]. Returns true if the active index changed.
func (c *Carousel) SetIndex(i int) bool {
	if i == c.index {
		return false
	}
	c.host.Notify(c.index, Exited)
	c.host.Notify(i, Entered)
	c.index = i
	return true
}

// Next advances one panel, stopping at the last one
func (c *Carousel) Next() bool {
	return c.SetIndex(c.clamp(c.index + 1))
}

// Previous goes back one panel, stopping at the first one
func (c *Carousel) Previous() bool {
	return c.SetIndex(c.clamp(c.index - 1))
}

// JumpTo makes panel i active, clamped to the valid range
func (c *Carousel) JumpTo(i int) bool {
	return c.SetIndex(c.clamp(i))
}

// Refit is called after the host replaced its panel list. The active
// index is clamped to the new length and the panel now at that index is
// notified that it entered. Panels of the old list get no notification.
func (c *Carousel) Refit() {
	if n := c.host.Len(); n <= 0 {
		panic(fmt.Sprintf("carousel: host has %d panels", n))
	}
	c.index = c.clamp(c.index)
	c.host.Notify(c.index, Entered)
}

// Watched reports whether panel j is at or before the active panel
func (c *Carousel) Watched(j int) bool {
	return j <= c.index
}

// WatchedSet returns the watched flag of every panel
func (c *Carousel) WatchedSet() []bool {
	n := c.host.Len()
	out := make([]bool, n)
	for j := 0; j < n; j++ {
		out[j] = c.Watched(j)
	}
	return out
}

// Reconcile runs one cycle: it applies the commit rule when the trigger
// is a finalized gesture, then places every panel. The commit always
// happens before transforms are computed.
func (c *Carousel) Reconcile(trigger Trigger, sample GestureSample) Frame {
	committed := false
	if c.shouldCommit(trigger, sample) {
		if sample.Gesture != 0 {
			c.lastCommitted = sample.Gesture
		}
		// Dragging right reveals the previous panel.
		if sample.DeltaX > 0 {
			committed = c.Previous()
		} else {
			committed = c.Next()
		}
	}

	width := c.host.Width()
	transforms := ComputeTransforms(c.host.Len(), c.index, LiveDeltaX(sample), width)
	for _, t := range transforms {
		c.host.Apply(t)
	}

	return Frame{
		Active:     c.index,
		Transforms: transforms,
		Watched:    c.WatchedSet(),
		Committed:  committed,
	}
}

func (c *Carousel) shouldCommit(trigger Trigger, sample GestureSample) bool {
	if trigger != TriggerGesture || !sample.Final {
		return false
	}
	// A tracked gesture commits at most once, even if its final sample is
	// handed over again.
	if sample.Gesture != 0 && sample.Gesture == c.lastCommitted {
		return false
	}
	return true
}

func (c *Carousel) clamp(i int) int {
	last := c.host.Len() - 1
	if i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}
	return i
}
