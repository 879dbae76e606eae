package harness

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	maxStackDepth = 8 // maximum number of stack frames to record

	stackEllipsis = "\t..." // trailing marker line added if the trace is too long
)

// callStack holds a snapshot of program counters leading to a failed
// assertion. The engine's own frames are excluded by the skip count chosen at
// each assertion entry point, so the innermost recorded frame is always the
// test code that made the call.
type callStack []uintptr

// newStack captures a stack trace. skip specifies the number of frames to
// skip; skip=0 records the newStack call site as the innermost frame.
func newStack(skip int) callStack {
	pc := make([]uintptr, maxStackDepth+1)
	pc = pc[:runtime.Callers(skip+2, pc)]
	return callStack(pc)
}

func (s callStack) String() string {
	var lines []string

	cf := runtime.CallersFrames(s)
	for {
		f, more := cf.Next()
		line := fmt.Sprintf("\tat %s (%s:%d)", f.Function, filepath.Base(f.File), f.Line)
		lines = append(lines, line)
		if !more {
			break
		} else if len(lines) >= maxStackDepth {
			lines = append(lines, stackEllipsis)
			break
		}
	}
	return strings.Join(lines, "\n")
}
