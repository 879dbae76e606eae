// Package harness contains the assertion and test-lifecycle reporting engine.
//
// The general model is:
//
// 1. A driver program creates one Session per process and brackets each test
// case with Start and Finish. Between the two it evaluates assertions through
// the Check and Require families; Check records a failure and continues,
// Require records it and terminates the process immediately.
//
// 2. Test code can attach named diagnostic info to the session at any point.
// The stored info is printed as part of the next failure report and is
// otherwise discarded, so a failing check always shows the context that was
// current when it failed.
//
// 3. After the last test case the driver calls SummarizeAndExit exactly once.
// The summary lines and the process exit code form a fixed text contract that
// an external log-scanning tool parses, so their shape must not change.
//
// Device discovery and environment bootstrapping are deliberately not part of
// this package; see the device and envboot packages. The engine only ever
// receives values that test code obtained from those collaborators.
package harness
