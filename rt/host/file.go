package host

import (
	"os"

	"github.com/joshuapare/rtcore/internal/mmfile"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/rc"
	"github.com/joshuapare/rtcore/rt/str"
)

// ReadFile returns the whole content of the file at path.
func ReadFile(path *str.Str) *str.Str {
	if path == nil {
		fail.Fail(fail.IO, fail.Here(1), "file_read: path is nil")
	}
	m, err := mmfile.Map(path.String())
	if err != nil {
		fail.Fail(fail.IO, fail.Here(1), "file_read: cannot open '%s'", path)
	}
	defer m.Close()
	site := fail.NoSrc
	if rc.Observed() {
		site = fail.Here(1)
	}
	return str.NewAt(m.Bytes(), site)
}

// WriteFile replaces the file at path with content.
func WriteFile(path, content *str.Str) {
	writeFile(path, content, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, "file_write")
}

// AppendFile appends content to the file at path, creating it if needed.
func AppendFile(path, content *str.Str) {
	writeFile(path, content, os.O_WRONLY|os.O_CREATE|os.O_APPEND, "file_append")
}

func writeFile(path, content *str.Str, flag int, op string) {
	if path == nil {
		fail.Fail(fail.IO, fail.Here(2), "%s: path is nil", op)
	}
	if content == nil {
		fail.Fail(fail.IO, fail.Here(2), "%s: content is nil", op)
	}
	f, err := os.OpenFile(path.String(), flag, 0o644)
	if err != nil {
		fail.Fail(fail.IO, fail.Here(2), "%s: cannot open '%s'", op, path)
	}
	_, werr := f.Write(content.Bytes())
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		fail.Fail(fail.IO, fail.Here(2), "%s: cannot write '%s': %v", op, path, werr)
	}
}

// FileExists reports whether path names an existing file system entry.
func FileExists(path *str.Str) bool {
	if path == nil {
		return false
	}
	_, err := os.Stat(path.String())
	return err == nil
}

// DirExists reports whether path names an existing directory.
func DirExists(path *str.Str) bool {
	if path == nil {
		return false
	}
	fi, err := os.Stat(path.String())
	return err == nil && fi.IsDir()
}
