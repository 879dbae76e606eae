package main

import (
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/sensorkit/unit-test-harness/device"
	"github.com/sensorkit/unit-test-harness/envboot"
	"github.com/sensorkit/unit-test-harness/harness"
	"github.com/sensorkit/unit-test-harness/streamtests"
)

// devicesEnvVar lists the devices visible to the run when no -devices flag is
// given. The bootstrap injects a default so a bare invocation still has one
// synthetic device to test against.
const devicesEnvVar = "SENSORKIT_DEVICES"

const defaultDevices = "synthetic-d435:D400:021222070598"

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	envboot.Bootstrap(map[string]string{devicesEnvVar: defaultDevices}, os.Stdout)

	deviceList := device.ParseList(params.devices)
	if len(deviceList) == 0 {
		deviceList = device.ParseList(os.Getenv(devicesEnvVar))
	}
	provider := device.NewStaticProvider(deviceList)

	var dev device.Device
	if params.productLine != "" {
		dev = device.ByProductLineOrExit(provider, params.productLine, os.Stdout, os.Exit)[0]
	} else {
		dev = device.FirstOrExit(provider, os.Stdout, os.Exit)
	}

	var debugLogger harness.Logger = harness.NullLogger()
	if params.debugAll {
		debugLogger = log.New(os.Stderr, "DEBUG ", log.LstdFlags)
	}

	session := harness.NewSession(os.Stdout, debugLogger)
	if params.debug && !params.debugAll {
		session.SetDebugDumpOnFailure(os.Stderr)
	}
	streamtests.RunSuite(session, dev, params.filters.AsFilter)

	// The banner goes to stderr so the summary contract on stdout stays clean.
	if session.Counters().FailedTests > 0 {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "FAILED")
	} else {
		color.New(color.FgGreen).Fprintln(os.Stderr, "PASSED")
	}
	session.SummarizeAndExit()
}
