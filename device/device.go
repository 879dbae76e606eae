// Package device is the discovery collaborator of the test harness. The
// engine never enumerates devices itself; a driver queries a Provider before
// any test case starts and, when nothing usable is connected, skips the whole
// run with exit status 0 so an unplugged machine does not fail the suite.
package device

import (
	"fmt"
	"io"
	"strings"
)

// Device describes one connected device as reported by a Provider.
type Device struct {
	Name        string
	Serial      string
	ProductLine string
}

// Frame is one frame received from a device stream. Frame numbers increase
// monotonically per stream; gaps indicate dropped frames.
type Frame struct {
	Number    int64
	Timestamp int64
}

// FrameNumber returns the frame's position in its stream's sequence.
func (f Frame) FrameNumber() int64 { return f.Number }

// Provider enumerates connected devices. Implementations may talk to real
// hardware; StaticProvider serves fixed lists for tests and synthetic runs.
type Provider interface {
	Devices() []Device
	QueryDevices(productLine string) []Device
}

// StaticProvider is a Provider over a fixed device list.
type StaticProvider struct {
	devices []Device
}

func NewStaticProvider(devices []Device) *StaticProvider {
	return &StaticProvider{devices: devices}
}

func (p *StaticProvider) Devices() []Device {
	return append([]Device(nil), p.devices...)
}

func (p *StaticProvider) QueryDevices(productLine string) []Device {
	var ret []Device
	for _, d := range p.devices {
		if d.ProductLine == productLine {
			ret = append(ret, d)
		}
	}
	return ret
}

// ParseList parses a comma-separated device list of the form
// "name:productLine:serial"; the product line and serial parts are optional.
// Empty items are ignored.
func ParseList(s string) []Device {
	var ret []Device
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, ":", 3)
		d := Device{Name: parts[0]}
		if len(parts) > 1 {
			d.ProductLine = parts[1]
		}
		if len(parts) > 2 {
			d.Serial = parts[2]
		}
		ret = append(ret, d)
	}
	return ret
}

// FirstOrExit returns the first device the provider reports. With no device
// connected it prints a skip notice and exits with status 0 instead: this
// happens before any test case starts, outside the session lifecycle, and is
// not a pass/fail outcome.
func FirstOrExit(p Provider, out io.Writer, exit func(code int)) Device {
	devices := p.Devices()
	if len(devices) == 0 {
		fmt.Fprintln(out, "No device found, skipping test")
		exit(0)
		return Device{}
	}
	return devices[0]
}

// ByProductLineOrExit returns all devices of the given product line, printing
// a skip notice and exiting with status 0 when there are none, like
// FirstOrExit.
func ByProductLineOrExit(p Provider, productLine string, out io.Writer, exit func(code int)) []Device {
	devices := p.QueryDevices(productLine)
	if len(devices) == 0 {
		fmt.Fprintf(out, "No device of the %s product line was found; skipping test\n", productLine)
		exit(0)
		return nil
	}
	return devices
}
