package navlog

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// StackFrame is one entry of a captured call stack, attached to every
// logged message so a trace can be correlated back to the code that
// issued it without re-running under a debugger.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}

// callstack walks up from the Logger method (skipping runtime.Callers
// itself, this function, and stackArg) until it hits main or runs out of
// frames.
func callstack() []StackFrame {
	var callers [16]uintptr
	n := runtime.Callers(3, callers[:])
	frames := runtime.CallersFrames(callers[:n])

	fr := make([]StackFrame, 0, n)
	for i := 0; i < n; i++ {
		frame, more := frames.Next()
		fn := strings.TrimPrefix(frame.Function, "github.com/aeronav/wpnav/")
		fn = strings.TrimPrefix(fn, "main.")

		fr = append(fr, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: fn,
		})

		if !more || frame.Function == "main.main" {
			break
		}
	}
	return fr
}
