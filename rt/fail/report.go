package fail

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	out  io.Writer = os.Stderr
	exit           = os.Exit

	// trapping counts active Try frames.
	trapping atomic.Int32
)

// SetOutput replaces the diagnostic stream and returns the previous one.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// SetExit replaces the process exit function and returns the previous one.
// The replacement may return; Raise never does.
func SetExit(fn func(code int)) func(code int) {
	prev := exit
	exit = fn
	return prev
}

// AbortStatus is the exit status used for fatal failures.
func AbortStatus() int { return abortStatus }

// Raise reports err. Inside Try the error unwinds to the Try call; otherwise
// the diagnostic line is written and the process exits.
func Raise(err *Error) {
	if trapping.Load() > 0 {
		panic(err)
	}
	fmt.Fprintln(out, err.Error())
	exit(abortStatus)
	// exit was replaced by one that returns.
	panic(err)
}

// Fail raises a failure of the given kind at src.
func Fail(kind Kind, src Src, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	Raise(&Error{Kind: kind, Src: src, Msg: msg})
}

// Failf raises a failure located at a caller of the function calling Failf.
// skip 0 locates the direct caller of Failf.
func Failf(skip int, kind Kind, format string, args ...any) {
	Fail(kind, Here(skip+1), format, args...)
}

// Panicf raises a Panic failure.
func Panicf(src Src, format string, args ...any) {
	Fail(Panic, src, format, args...)
}

// OOB raises an OutOfBounds failure.
func OOB(src Src, msg string) {
	Fail(OutOfBounds, src, "%s", msg)
}

// KeyErr raises a Key failure.
func KeyErr(src Src, msg string) {
	Fail(Key, src, "%s", msg)
}

// Assert raises an Assertion failure when cond is false.
func Assert(cond bool, src Src, msg string) {
	if !cond {
		Fail(Assertion, src, "%s", msg)
	}
}

// NullCheck raises a Panic failure when p is nil.
func NullCheck[T any](p *T, src Src) {
	if p == nil {
		Fail(Panic, src, "null pointer dereference")
	}
}
