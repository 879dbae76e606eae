package harness

// ProtocolError indicates that test code misused the session lifecycle, such
// as starting a test while another is running or finishing one that was never
// started. This is a bug in the test code itself, not a test failure: it is
// raised as a panic, never counted against any assertion or test counter, and
// must not be swallowed.
type ProtocolError struct {
	msg string
}

func (e *ProtocolError) Error() string { return e.msg }

func protocolViolation(msg string) {
	panic(&ProtocolError{msg: msg})
}
