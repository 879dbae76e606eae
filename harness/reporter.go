package harness

import "fmt"

// SummarizeAndExit emits the final aggregate summary and terminates the
// process: status 1 if any test case failed, 0 otherwise. The exact shape of
// these lines is parsed by an external log-scanning tool; do not change the
// field order, punctuation, or pluralization. It is called exactly once,
// after the last test case.
func (s *Session) SummarizeAndExit() {
	c := s.counters
	if c.FailedTests > 0 {
		passed := c.Assertions - c.FailedAssertions
		fmt.Fprintf(s.out, "test cases: %d | %d failed\n", c.Tests, c.FailedTests)
		fmt.Fprintf(s.out, "assertions: %d | %d passed | %d failed\n", c.Assertions, passed, c.FailedAssertions)
		s.exitFunc(1)
		return
	}
	fmt.Fprintf(s.out, "All tests passed (%d assertions in %d test cases)\n", c.Assertions, c.Tests)
	s.exitFunc(0)
}
