package str

import (
	"math"
	"strconv"

	"github.com/joshuapare/rtcore/rt/fail"
)

// FromInt formats v in decimal.
func FromInt(v int64) *Str {
	var buf [24]byte
	return newStr(strconv.AppendInt(buf[:0], v, 10), 1)
}

// FromFloat formats v with 17 significant digits, the shortest form that
// round-trips every float64.
func FromFloat(v float64) *Str {
	var buf [32]byte
	return newStr(AppendFloat(buf[:0], v, 17), 1)
}

// FromBool returns "true" or "false".
func FromBool(v bool) *Str {
	return newStr(strconv.AppendBool(nil, v), 1)
}

// AppendFloat appends v rendered with prec significant digits in the
// shortest of fixed or exponent notation, trailing zeros removed. NaN and
// infinities render as nan, inf and -inf.
func AppendFloat(dst []byte, v float64, prec int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, v, 'g', prec, 64)
}

// ParseInt reads a leading integer from s the way strtoll does with base 0:
// optional whitespace and sign, then a 0x, 0b or 0o prefix or a leading 0
// for octal. Parsing stops at the first invalid digit. Out-of-range values
// saturate; 0 is returned when nothing parses.
func ParseInt(s *Str) int64 {
	if s == nil {
		fail.Panicf(fail.Here(1), "str_to_i64: string is nil")
	}
	return parseInt(s.Bytes())
}

// ParseFloat reads the longest leading decimal float from s, including
// inf, infinity and nan. 0 is returned when nothing parses.
func ParseFloat(s *Str) float64 {
	if s == nil {
		fail.Panicf(fail.Here(1), "str_to_f64: string is nil")
	}
	return parseFloat(s.Bytes())
}

func isSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

func parseInt(b []byte) int64 {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	base := 10
	if i+1 < len(b) && b[i] == '0' {
		switch b[i+1] {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}
		if base != 10 {
			// "0x" without digits parses as the single "0".
			if i+2 >= len(b) || digitVal(b[i+2]) >= base {
				return 0
			}
			i += 2
		} else {
			base = 8
		}
	}

	j := i
	for j < len(b) && digitVal(b[j]) < base {
		j++
	}
	if j == i {
		return 0
	}

	u, err := strconv.ParseUint(string(b[i:j]), base, 64)
	if err != nil {
		u = math.MaxUint64
	}
	if neg {
		if u >= 1<<63 {
			return math.MinInt64
		}
		return -int64(u)
	}
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

func hasFoldPrefix(b []byte, word string) bool {
	if len(b) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

func parseFloat(b []byte) float64 {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	neg := i > start && b[start] == '-'

	rest := b[i:]
	switch {
	case hasFoldPrefix(rest, "inf"):
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case hasFoldPrefix(rest, "nan"):
		return math.NaN()
	}

	digits := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		if j < len(b) && b[j] >= '0' && b[j] <= '9' {
			for j < len(b) && b[j] >= '0' && b[j] <= '9' {
				j++
			}
			i = j
		}
	}

	// Out of range values come back as ±Inf or ±0 together with an error;
	// the value is what strtod would return.
	v, _ := strconv.ParseFloat(string(b[start:i]), 64)
	return v
}
