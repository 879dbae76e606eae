package harness

import (
	"fmt"
	"io"
	"os"
)

// Counters is the aggregate tally for one Session. All four values increase
// monotonically for the life of the process.
type Counters struct {
	Assertions       int
	FailedAssertions int
	Tests            int
	FailedTests      int
}

// Session owns all state for one test run: the counters, the lifecycle flags,
// and the diagnostic info store. A process creates exactly one Session and
// drives it from a single goroutine; nothing here is locked.
type Session struct {
	counters          Counters
	currentTestFailed bool
	testInProgress    bool
	info              *infoStore

	out         io.Writer
	debugLogger Logger
	debugDump   io.Writer
	testDebug   *CapturingLogger
	exitFunc    func(code int)

	check   *Asserter
	require *Asserter
}

// NewSession creates a Session that writes its report to out. A nil out
// writes to os.Stdout; a nil debugLogger discards debug output.
func NewSession(out io.Writer, debugLogger Logger) *Session {
	if out == nil {
		out = os.Stdout
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	s := &Session{
		info:        newInfoStore(),
		out:         out,
		debugLogger: debugLogger,
		exitFunc:    os.Exit,
	}
	s.check = &Asserter{s: s, abortOnFailure: false}
	s.require = &Asserter{s: s, abortOnFailure: true}
	return s
}

// SetExitFunc replaces the function used to terminate the process on abort
// and in SummarizeAndExit. Tests of the harness itself use this to observe
// exit codes without exiting.
func (s *Session) SetExitFunc(fn func(code int)) {
	s.exitFunc = fn
}

// SetDebugDumpOnFailure enables per-test debug capture: messages passed to
// Debug are collected while a test case runs and dumped to w when the case
// fails. Captured output of passing cases is discarded.
func (s *Session) SetDebugDumpOnFailure(w io.Writer) {
	s.debugDump = w
}

// Debug records a free-form diagnostic message. It goes to the session's
// debug logger and, when dump-on-failure is enabled, into the current test
// case's capture buffer. Debug output never appears on the report stream.
func (s *Session) Debug(message string, args ...interface{}) {
	s.debugLogger.Printf(message, args...)
	if s.testDebug != nil {
		s.testDebug.Printf(message, args...)
	}
}

// Counters returns a copy of the current tallies.
func (s *Session) Counters() Counters {
	return s.counters
}

// TestInProgress reports whether the session is between a Start and its
// matching Finish.
func (s *Session) TestInProgress() bool {
	return s.testInProgress
}

// Check returns the non-aborting assertion family: a failed assertion is
// recorded and reported, and the test run continues.
func (s *Session) Check() *Asserter { return s.check }

// Require returns the aborting assertion family: a failed assertion is
// recorded and reported, and then the process terminates immediately with
// status 1, skipping any remaining test cases and the final summary.
func (s *Session) Require() *Asserter { return s.require }

// Start begins a named test case. It emits the name to the report stream,
// counts the test, and discards all diagnostic info, persistent included.
// Calling Start while a test is already running is a ProtocolError.
func (s *Session) Start(name string) {
	if s.testInProgress {
		protocolViolation("tried to start a test before the previous test finished")
	}
	s.counters.Tests++
	s.currentTestFailed = false
	s.testInProgress = true
	s.info.clear(true)
	if s.debugDump != nil {
		s.testDebug = &CapturingLogger{}
	}
	fmt.Fprintln(s.out, name)
}

// Finish ends the current test case, emitting its verdict followed by a blank
// line. Calling Finish with no test running is a ProtocolError.
func (s *Session) Finish() {
	if !s.testInProgress {
		protocolViolation("tried to finish a test without starting one")
	}
	if s.currentTestFailed {
		s.counters.FailedTests++
		fmt.Fprintln(s.out, "Test failed")
		if s.debugDump != nil && s.testDebug != nil {
			s.testDebug.Output().Dump(s.debugDump, "    DEBUG ")
		}
	} else {
		fmt.Fprintln(s.out, "Test passed")
	}
	fmt.Fprintln(s.out)
	s.testDebug = nil
	s.testInProgress = false
}

// Fail marks the current test case failed without going through an assertion,
// for conditions that no check operation expresses. The failed-test counter
// moves at most once per test case; repeated calls are logged and otherwise
// ignored. Calling Fail with no test running is a ProtocolError.
func (s *Session) Fail() {
	if !s.testInProgress {
		protocolViolation("tried to fail a test with no test running")
	}
	if s.currentTestFailed {
		s.Debug("Fail called on an already-failed test")
		return
	}
	s.counters.FailedTests++
	s.currentTestFailed = true
}

// recordFailedAssertion is the shared failure path: count the failure, mark
// the test failed, render and clear the accumulated diagnostic info, and
// print the call context that led here.
func (s *Session) recordFailedAssertion(stk callStack) {
	s.counters.FailedAssertions++
	s.currentTestFailed = true
	s.printInfo()
	if len(stk) > 0 {
		fmt.Fprintln(s.out, stk.String())
	}
}

// abort terminates the process after a failed Require assertion. There is no
// unwind phase: remaining test cases and the final summary never run.
func (s *Session) abort() {
	fmt.Fprintln(s.out, "Abort was specified in a failed check. Aborting test")
	s.exitFunc(1)
}
