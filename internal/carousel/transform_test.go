package carousel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestTransformsWhileDragging(t *testing.T) {
	host := newRecordingHost(3, 300)
	c := New(host)
	c.JumpTo(1)

	frame := c.Reconcile(TriggerGesture, GestureSample{DeltaX: 30})

	want := []Transform{
		{Index: 0, X: -270, Scale: 0.82},
		{Index: 1, X: 30, Scale: 0.98},
		{Index: 2, X: 330, Scale: 0.8},
	}
	if diff := cmp.Diff(want, frame.Transforms, approx); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestFinalSampleDiscardsOffset(t *testing.T) {
	host := newRecordingHost(3, 300)
	c := New(host)
	c.JumpTo(1)

	// Pass a non-gesture trigger so the index stays put.
	frame := c.Reconcile(TriggerRefresh, GestureSample{DeltaX: 30, Final: true})

	want := []Transform{
		{Index: 0, X: -300, Scale: 0.8},
		{Index: 1, X: 0, Scale: 1},
		{Index: 2, X: 300, Scale: 0.8},
	}
	if diff := cmp.Diff(want, frame.Transforms, approx); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestCommitSnapsToNewIndex(t *testing.T) {
	host := newRecordingHost(3, 300)
	c := New(host)
	c.JumpTo(1)

	frame := c.Reconcile(TriggerGesture, GestureSample{DeltaX: 120, Final: true})

	assert.Equal(t, 0, frame.Active)
	if diff := cmp.Diff([]Transform{
		{Index: 0, X: 0, Scale: 1},
		{Index: 1, X: 300, Scale: 0.8},
		{Index: 2, X: 600, Scale: 0.8},
	}, frame.Transforms, approx); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleProfile(t *testing.T) {
	tests := []struct {
		name       string
		i, active  int
		liveDeltaX float64
		want       float64
	}{
		{name: "centered", i: 2, active: 2, want: 1},
		{name: "half way out", i: 2, active: 2, liveDeltaX: -50, want: 0.9},
		{name: "half way in", i: 3, active: 2, liveDeltaX: -50, want: 0.9},
		{name: "neighbour", i: 1, active: 2, want: 0.8},
		{name: "two away", i: 0, active: 2, liveDeltaX: 100, want: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTransform(tt.i, tt.active, tt.liveDeltaX, 100)
			assert.InDelta(t, tt.want, got.Scale, 1e-9)
			assert.GreaterOrEqual(t, got.Scale, MinScale)
			assert.LessOrEqual(t, got.Scale, 1.0)
		})
	}
}

func TestZeroWidthStaysFinite(t *testing.T) {
	for _, tr := range ComputeTransforms(3, 1, 0, 0) {
		assert.False(t, math.IsNaN(tr.Scale), "panel %d scale is NaN", tr.Index)
		assert.False(t, math.IsNaN(tr.X), "panel %d x is NaN", tr.Index)
	}
	assert.Equal(t, 1.0, ComputeTransform(1, 1, 12, 0).Scale)
}

func TestLiveDeltaX(t *testing.T) {
	assert.Equal(t, 42.0, LiveDeltaX(GestureSample{DeltaX: 42}))
	assert.Equal(t, 0.0, LiveDeltaX(GestureSample{DeltaX: 42, Final: true}))
}
