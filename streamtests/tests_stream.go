package streamtests

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/sensorkit/unit-test-harness/device"
	"github.com/sensorkit/unit-test-harness/harness"
)

// UnsupportedProfileError is returned when a device cannot serve the
// requested stream profile.
type UnsupportedProfileError struct {
	Profile string
}

func (e *UnsupportedProfileError) Error() string {
	return fmt.Sprintf("stream profile %q is not supported", e.Profile)
}

// knownProfiles are the stream profiles every synthetic device serves.
var knownProfiles = map[string]bool{
	"depth":    true,
	"color":    true,
	"infrared": true,
}

func openStream(dev device.Device, profile string) (*frameSource, error) {
	if !knownProfiles[profile] {
		return nil, &UnsupportedProfileError{Profile: profile}
	}
	return &frameSource{next: 1}, nil
}

// frameSource produces deterministic frames for one stream. drop consumes
// sequence numbers without emitting frames, simulating dropped frames.
type frameSource struct {
	next int64
}

func (fs *frameSource) frame() device.Frame {
	f := device.Frame{Number: fs.next, Timestamp: fs.next * 33}
	fs.next++
	return f
}

func (fs *frameSource) drop(n int64) {
	fs.next += n
}

func doMetadataTests(s *harness.Session, dev device.Device) {
	s.PersistentInfo("device", dev.Name)
	s.Info("serial", dev.Serial)
	s.Check().That(dev.Name != "")
	s.Check().That(dev.ProductLine != "")
}

func doStreamOrderingTests(s *harness.Session, dev device.Device) {
	src, err := openStream(dev, "depth")
	if err != nil {
		s.UnexpectedException(err)
		return
	}
	var previous int64
	var previousTimestamp int64
	for i := 0; i < 30; i++ {
		f := src.frame()
		s.Debug("frame %d arrived at %d", f.Number, f.Timestamp)
		s.Info("frame", f.Number)
		s.CheckFrameDrops(f, previous, ldvalue.OptionalInt{})
		s.Check().That(f.Timestamp > previousTimestamp)
		previous = f.Number
		previousTimestamp = f.Timestamp
	}
}

func doDropToleranceTests(s *harness.Session, dev device.Device) {
	src, err := openStream(dev, "depth")
	if err != nil {
		s.UnexpectedException(err)
		return
	}
	previous := src.frame().Number
	src.drop(1) // a single dropped frame is within the default tolerance
	f := src.frame()
	s.CheckFrameDrops(f, previous, ldvalue.OptionalInt{})

	// With a tolerance of 5, even a burst of drops passes.
	previous = f.Number
	src.drop(4)
	f = src.frame()
	s.CheckFrameDrops(f, previous, ldvalue.NewOptionalInt(5))
}

func doProfileErrorTests(s *harness.Session, dev device.Device) {
	_, err := openStream(dev, "thermal")
	if !s.Check().That(err != nil) {
		return
	}
	s.Check().Exception(err, &UnsupportedProfileError{},
		`stream profile "thermal" is not supported`)
}
