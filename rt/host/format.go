package host

import (
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/rc"
	"github.com/joshuapare/rtcore/rt/str"
)

type argKind uint8

const (
	argI64 argKind = iota
	argU64
	argF64
	argBool
	argStr
)

// Arg is one Format argument.
type Arg struct {
	kind argKind
	i    int64
	u    uint64
	f    float64
	b    bool
	s    *str.Str
}

// I64 wraps a signed integer.
func I64(v int64) Arg { return Arg{kind: argI64, i: v} }

// U64 wraps an unsigned integer.
func U64(v uint64) Arg { return Arg{kind: argU64, u: v} }

// F64 wraps a float, printed with 17 significant digits.
func F64(v float64) Arg { return Arg{kind: argF64, f: v} }

// Bool wraps a boolean.
func Bool(v bool) Arg { return Arg{kind: argBool, b: v} }

// S wraps a string. The string is borrowed; a nil string formats as nothing.
func S(v *str.Str) Arg { return Arg{kind: argStr, s: v} }

func (a Arg) appendTo(b *str.Builder) {
	switch a.kind {
	case argI64:
		b.AppendInt(a.i)
	case argU64:
		b.AppendUint(a.u)
	case argF64:
		b.AppendFloat(a.f)
	case argBool:
		b.AppendBool(a.b)
	case argStr:
		b.AppendStr(a.s)
	}
}

// Format interpolates args into each {} of format. {{ and }} produce
// literal braces; any other brace is copied through. Extra arguments are
// ignored; too few is a failure.
func Format(format *str.Str, args ...Arg) *str.Str {
	if format == nil {
		fail.Panicf(fail.Here(1), "format: format string is nil")
	}
	sb := str.NewBuilder()
	defer sb.Release()

	p := format.Bytes()
	next := 0
	for i := 0; i < len(p); {
		switch c := p[i]; {
		case c == '{' && i+1 < len(p) && p[i+1] == '{':
			sb.AppendByte('{')
			i += 2
		case c == '{' && i+1 < len(p) && p[i+1] == '}':
			if next >= len(args) {
				fail.Panicf(fail.Here(1), "format: not enough arguments")
			}
			args[next].appendTo(sb)
			next++
			i += 2
		case c == '}' && i+1 < len(p) && p[i+1] == '}':
			sb.AppendByte('}')
			i += 2
		case c == '{' || c == '}':
			sb.AppendByte(c)
			i++
		default:
			j := i
			for j < len(p) && p[j] != '{' && p[j] != '}' {
				j++
			}
			sb.AppendBytes(p[i:j])
			i = j
		}
	}

	site := fail.NoSrc
	if rc.Observed() {
		site = fail.Here(1)
	}
	return str.NewAt(sb.Bytes(), site)
}
