package harness

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// defaultAllowedDrops is the gap tolerance used when the caller does not
// specify one.
const defaultAllowedDrops = 1

// Frame is the minimal view of a streamed frame that the engine needs: its
// position in a monotonically increasing sequence-number stream.
type Frame interface {
	FrameNumber() int64
}

// CheckFrameDrops asserts that frame follows previousFrameNumber with no more
// than allowedDrops frames missing in between, and not out of order. An
// undefined allowedDrops means the default tolerance of 1.
//
// It is safe to call opportunistically from a per-frame callback: when no
// test is in progress it succeeds without touching any counter, and when one
// is, a failure is recorded without printing a call trace and never aborts.
// A previousFrameNumber of zero or less means no prior frame has been seen
// yet, and the check succeeds.
func (s *Session) CheckFrameDrops(frame Frame, previousFrameNumber int64, allowedDrops ldvalue.OptionalInt) bool {
	if !s.testInProgress {
		return true
	}
	allowed := int64(allowedDrops.OrElse(defaultAllowedDrops))
	s.counters.Assertions++

	frameNumber := frame.FrameNumber()
	failed := false
	if previousFrameNumber > 0 {
		dropped := frameNumber - (previousFrameNumber + 1)
		if dropped > allowed {
			fmt.Fprintf(s.out, "%d frame(s) starting from frame %d were dropped\n", dropped, previousFrameNumber+1)
			failed = true
		}
		if dropped < 0 {
			fmt.Fprintf(s.out, "Frames repeated or out of order. Got frame %d after frame %d\n",
				frameNumber, previousFrameNumber)
			failed = true
		}
	}
	if failed {
		s.recordFailedAssertion(nil)
		return false
	}
	s.info.clear(false)
	return true
}
