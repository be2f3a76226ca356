package host

import (
	"io"
	"os"
	"strconv"

	"github.com/joshuapare/rtcore/rt/str"
)

// Console writes runtime values as text. Write errors are ignored, like
// stdio.
type Console struct {
	w   io.Writer
	tmp []byte
}

// NewConsole returns a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, tmp: make([]byte, 0, 32)}
}

// Stdout is the process console.
var Stdout = NewConsole(os.Stdout)

func (c *Console) flush() {
	c.w.Write(c.tmp)
	c.tmp = c.tmp[:0]
}

// PrintInt prints v in decimal.
func (c *Console) PrintInt(v int64) {
	c.tmp = strconv.AppendInt(c.tmp, v, 10)
	c.flush()
}

// PrintUint prints v in decimal.
func (c *Console) PrintUint(v uint64) {
	c.tmp = strconv.AppendUint(c.tmp, v, 10)
	c.flush()
}

// PrintFloat prints v with 17 significant digits.
func (c *Console) PrintFloat(v float64) {
	c.tmp = str.AppendFloat(c.tmp, v, 17)
	c.flush()
}

// PrintF32 prints v with 9 significant digits, enough for any float32.
func (c *Console) PrintF32(v float32) {
	c.tmp = str.AppendFloat(c.tmp, float64(v), 9)
	c.flush()
}

// PrintBool prints "true" or "false".
func (c *Console) PrintBool(v bool) {
	c.tmp = strconv.AppendBool(c.tmp, v)
	c.flush()
}

// PrintStr prints the bytes of s, or "nil".
func (c *Console) PrintStr(s *str.Str) {
	if s == nil {
		io.WriteString(c.w, "nil")
		return
	}
	c.w.Write(s.Bytes())
}

// Println ends the line.
func (c *Console) Println() {
	io.WriteString(c.w, "\n")
}
