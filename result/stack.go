package result

import (
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

// callers formats the calling goroutine's stack, skipping skip frames above
// the caller of callers itself.
func callers(skip int) string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return "stack unavailable"
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		b.WriteString(frame.Function)
		b.WriteString("\n\t")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		b.WriteByte('\n')
		if !more {
			break
		}
	}

	return b.String()
}
