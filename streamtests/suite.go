// Package streamtests contains the built-in streaming test cases that the
// harness binary runs against a device. Infrastructure that is not specific
// to device streams, such as the assertion engine and the summary contract,
// is in the lower-level harness package.
package streamtests

import (
	"github.com/sensorkit/unit-test-harness/device"
	"github.com/sensorkit/unit-test-harness/harness"
)

// RunSuite drives every test case against the given device. Cases excluded by
// the filter are not started at all, so they appear in no counter.
func RunSuite(s *harness.Session, dev device.Device, filter harness.Filter) {
	run(s, filter, "device metadata", func() { doMetadataTests(s, dev) })
	run(s, filter, "depth stream ordering", func() { doStreamOrderingTests(s, dev) })
	run(s, filter, "depth stream drop tolerance", func() { doDropToleranceTests(s, dev) })
	run(s, filter, "unsupported stream profile", func() { doProfileErrorTests(s, dev) })
}

func run(s *harness.Session, filter harness.Filter, name string, action func()) {
	if filter != nil && !filter(name) {
		return
	}
	s.Start(name)
	action()
	s.Finish()
}
