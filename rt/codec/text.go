package codec

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/str"
)

func utf16(order binary.ByteOrder) encoding.Encoding {
	if order == binary.BigEndian {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

// WriteUTF16 appends s, read as UTF-8, encoded as UTF-16 without a BOM.
// It returns the number of code units written. Invalid UTF-8 is written as
// U+FFFD.
func (b *Buffer) WriteUTF16(s *str.Str, order binary.ByteOrder) int {
	out, err := utf16(order).NewEncoder().Bytes(s.Bytes())
	if err != nil {
		fail.Fail(fail.Type, fail.Here(1), "buffer: utf-16 encode: %v", err)
	}
	b.append(out)
	return len(out) / 2
}

// ReadUTF16 reads units UTF-16 code units and returns them as UTF-8.
// Unpaired surrogates decode to U+FFFD.
func (b *Buffer) ReadUTF16(units int64, order binary.ByteOrder) *str.Str {
	if units < 0 {
		fail.Panicf(fail.Here(1), "buffer: negative read length")
	}
	if units > int64(b.Remaining()/2) {
		fail.Panicf(fail.Here(1), "buffer: read past end")
	}
	raw := b.take(int(units)*2, 1)
	out, err := utf16(order).NewDecoder().Bytes(raw)
	if err != nil {
		fail.Fail(fail.Type, fail.Here(1), "buffer: utf-16 decode: %v", err)
	}
	return newStr(out)
}

// WriteLatin1 appends s, read as UTF-8, encoded as ISO 8859-1. Characters
// outside Latin-1 are written as the SUB byte 0x1A. It returns the number of
// bytes written.
func (b *Buffer) WriteLatin1(s *str.Str) int {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes(s.Bytes())
	if err != nil {
		fail.Fail(fail.Type, fail.Here(1), "buffer: latin-1 encode: %v", err)
	}
	b.append(out)
	return len(out)
}

// ReadLatin1 reads n ISO 8859-1 bytes and returns them as UTF-8.
func (b *Buffer) ReadLatin1(n int64) *str.Str {
	if n < 0 {
		fail.Panicf(fail.Here(1), "buffer: negative read length")
	}
	if n > int64(b.Remaining()) {
		fail.Panicf(fail.Here(1), "buffer: read past end")
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b.take(int(n), 1))
	if err != nil {
		fail.Fail(fail.Type, fail.Here(1), "buffer: latin-1 decode: %v", err)
	}
	return newStr(out)
}
