package fail

import (
	"strconv"

	"github.com/go-stack/stack"
)

// Src is a source location. Line and Col are 1-based; zero means unknown.
type Src struct {
	File string
	Line int32
	Col  int32
}

// NoSrc is the unknown location.
var NoSrc = Src{}

// At returns a location for generated code that knows its own position.
// An empty file name is recorded as "<unknown>".
func At(file string, line, col int32) Src {
	if file == "" {
		file = "<unknown>"
	}
	return Src{File: file, Line: line, Col: col}
}

// Here returns the location of a caller on the current goroutine's stack.
// skip 0 is the function calling Here, 1 its caller, and so on.
func Here(skip int) Src {
	frame := stack.Caller(skip + 1).Frame()
	if frame.Line <= 0 {
		return NoSrc
	}
	return Src{File: frame.File, Line: int32(frame.Line)}
}

// Known reports whether the location carries a file and line.
func (s Src) Known() bool {
	return s.File != "" && s.Line > 0
}

// String renders file:line[:col], or "?" when the location is unknown.
func (s Src) String() string {
	if !s.Known() {
		return "?"
	}
	b := make([]byte, 0, len(s.File)+16)
	b = append(b, s.File...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(s.Line), 10)
	if s.Col > 0 {
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(s.Col), 10)
	}
	return string(b)
}
