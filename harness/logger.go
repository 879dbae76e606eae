package harness

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger receives debug output from the engine. It is separate from the
// report stream: the report stream is the fixed text contract, the Logger is
// free-form diagnostics that a driver may show or discard.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one timestamped message held by a CapturingLogger.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// Dump writes the captured messages to dest, one per line, each prefixed
// with prefix and its capture time.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n", prefix, m.Time.Format("2006-01-02 15:04:05.000"), m.Message)
	}
}

// CapturingLogger accumulates messages in memory. The session keeps one per
// test case when dump-on-failure is enabled, so a failing case can replay
// the debug output that led up to it.
type CapturingLogger struct {
	lock     sync.Mutex
	messages CapturedOutput
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.messages = append(l.messages, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

// Output returns a snapshot of everything captured so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.messages...)
}
