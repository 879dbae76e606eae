package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type fakeFrame int64

func (f fakeFrame) FrameNumber() int64 { return int64(f) }

func TestFrameDropsWithinTolerance(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start("frames")
	assert.True(t, s.CheckFrameDrops(fakeFrame(7), 5, ldvalue.OptionalInt{})) // delta=1, default tolerance 1
	assert.True(t, s.CheckFrameDrops(fakeFrame(6), 5, ldvalue.OptionalInt{})) // consecutive
	s.Finish()

	c := s.Counters()
	assert.Equal(t, 2, c.Assertions)
	assert.Equal(t, 0, c.FailedAssertions)
}

func TestFrameDropsBeyondTolerance(t *testing.T) {
	s, buf, _ := newTestSession()
	s.Start("frames")
	assert.False(t, s.CheckFrameDrops(fakeFrame(9), 5, ldvalue.OptionalInt{})) // delta=3
	s.Finish()

	assert.Contains(t, buf.String(), "3 frame(s) starting from frame 6 were dropped")
	c := s.Counters()
	assert.Equal(t, 1, c.FailedAssertions)
	assert.Equal(t, 1, c.FailedTests)
}

func TestFrameDropsCustomTolerance(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start("frames")
	assert.True(t, s.CheckFrameDrops(fakeFrame(9), 5, ldvalue.NewOptionalInt(3)))
	assert.False(t, s.CheckFrameDrops(fakeFrame(9), 5, ldvalue.NewOptionalInt(2)))
	s.Finish()
}

func TestFrameOutOfOrder(t *testing.T) {
	s, buf, _ := newTestSession()
	s.Start("frames")
	assert.False(t, s.CheckFrameDrops(fakeFrame(4), 5, ldvalue.OptionalInt{})) // delta=-2
	s.Finish()

	assert.Contains(t, buf.String(), "Frames repeated or out of order. Got frame 4 after frame 5")
}

func TestFrameDropsWithNoPriorFrame(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start("frames")
	assert.True(t, s.CheckFrameDrops(fakeFrame(100), 0, ldvalue.OptionalInt{}))
	assert.True(t, s.CheckFrameDrops(fakeFrame(100), -1, ldvalue.OptionalInt{}))
	s.Finish()

	assert.Equal(t, 0, s.Counters().FailedAssertions)
}

func TestFrameDropsOutsideTestIsANoOp(t *testing.T) {
	s, buf, _ := newTestSession()
	// A streaming callback may still be running between test cases.
	assert.True(t, s.CheckFrameDrops(fakeFrame(9), 5, ldvalue.OptionalInt{}))
	assert.True(t, s.CheckFrameDrops(fakeFrame(4), 5, ldvalue.OptionalInt{}))

	assert.Equal(t, Counters{}, s.Counters())
	assert.Empty(t, buf.String())
}

func TestFrameDropFailureSkipsCallTrace(t *testing.T) {
	s, buf, _ := newTestSession()
	s.Start("frames")
	s.Info("stream", "depth")
	s.CheckFrameDrops(fakeFrame(9), 5, ldvalue.OptionalInt{})
	s.Finish()

	// Info still renders, but the hot path never captures a stack.
	assert.Contains(t, buf.String(), "Name: stream        value: depth")
	assert.NotContains(t, buf.String(), "\tat ")
}
