package monkey

import (
	"fmt"
	"strings"
)

type StackFrame struct {
	Function string
	Pos      Position
}

// RuntimeError is the host-facing form of an error value that reached the top
// of a program.
type RuntimeError struct {
	Message   string
	Pos       Position
	CodeFrame string
	Frames    []StackFrame
}

const (
	runtimeErrorFrameHead = 8
	runtimeErrorFrameTail = 8
)

func (re *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(re.Message)
	if re.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(re.CodeFrame)
	}
	renderFrame := func(frame StackFrame) {
		if frame.Pos.Line > 0 && frame.Pos.Column > 0 {
			fmt.Fprintf(&b, "\n  at %s (%d:%d)", frame.Function, frame.Pos.Line, frame.Pos.Column)
		} else {
			fmt.Fprintf(&b, "\n  at %s", frame.Function)
		}
	}

	if len(re.Frames) <= runtimeErrorFrameHead+runtimeErrorFrameTail {
		for _, frame := range re.Frames {
			renderFrame(frame)
		}
		return b.String()
	}

	for _, frame := range re.Frames[:runtimeErrorFrameHead] {
		renderFrame(frame)
	}
	omitted := len(re.Frames) - (runtimeErrorFrameHead + runtimeErrorFrameTail)
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", omitted)
	for _, frame := range re.Frames[len(re.Frames)-runtimeErrorFrameTail:] {
		renderFrame(frame)
	}
	return b.String()
}

func newRuntimeError(val Value, source string) *RuntimeError {
	pos := val.ErrorPos()
	return &RuntimeError{
		Message:   val.ErrorMessage(),
		Pos:       pos,
		CodeFrame: formatCodeFrame(source, pos),
		Frames:    val.ErrorFrames(),
	}
}
