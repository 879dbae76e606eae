package streamtests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensorkit/unit-test-harness/device"
	"github.com/sensorkit/unit-test-harness/harness"
)

func testDevice() device.Device {
	return device.Device{Name: "synthetic-d435", ProductLine: "D400", Serial: "021222070598"}
}

func runForTest(t *testing.T, dev device.Device, filter harness.Filter) (*harness.Session, string, []int) {
	t.Helper()
	var buf bytes.Buffer
	var codes []int
	s := harness.NewSession(&buf, nil)
	s.SetExitFunc(func(code int) { codes = append(codes, code) })
	RunSuite(s, dev, filter)
	return s, buf.String(), codes
}

func TestSuitePassesAgainstHealthyDevice(t *testing.T) {
	s, out, codes := runForTest(t, testDevice(), nil)

	c := s.Counters()
	assert.Equal(t, 4, c.Tests)
	assert.Equal(t, 0, c.FailedTests)
	assert.Equal(t, 0, c.FailedAssertions)
	assert.Empty(t, codes, "a suite run must not exit on its own")
	assert.NotContains(t, out, "Test failed")
}

func TestSuiteReportsEachCaseName(t *testing.T) {
	_, out, _ := runForTest(t, testDevice(), nil)

	for _, name := range []string{
		"device metadata",
		"depth stream ordering",
		"depth stream drop tolerance",
		"unsupported stream profile",
	} {
		assert.Contains(t, out, name+"\n")
	}
	assert.Equal(t, 4, strings.Count(out, "Test passed"))
}

func TestSuiteFilterSkipsCasesEntirely(t *testing.T) {
	var filters harness.RegexFilters
	require.NoError(t, filters.MustMatch.Set("stream ordering"))

	s, out, _ := runForTest(t, testDevice(), filters.AsFilter)

	assert.Equal(t, 1, s.Counters().Tests, "filtered cases must not be counted at all")
	assert.Contains(t, out, "depth stream ordering")
	assert.NotContains(t, out, "device metadata")
}

func TestSuiteFlagsDeviceWithoutName(t *testing.T) {
	s, out, _ := runForTest(t, device.Device{Serial: "x"}, nil)

	assert.Greater(t, s.Counters().FailedTests, 0)
	assert.Contains(t, out, "Test failed")
}

func TestOpenStreamRejectsUnknownProfile(t *testing.T) {
	_, err := openStream(testDevice(), "thermal")
	require.Error(t, err)
	assert.Equal(t, `stream profile "thermal" is not supported`, err.Error())

	src, err := openStream(testDevice(), "depth")
	require.NoError(t, err)
	f := src.frame()
	assert.Equal(t, int64(1), f.Number)
	assert.Equal(t, int64(33), f.Timestamp)
	f = src.frame()
	assert.Equal(t, int64(2), f.Number)
	assert.Greater(t, f.Timestamp, int64(33), "frame timestamps must advance with the stream")
	src.drop(3)
	assert.Equal(t, int64(6), src.frame().Number)
}
