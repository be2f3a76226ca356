package fail

import "errors"

// Error is a runtime failure with its kind and source location.
type Error struct {
	Kind Kind
	Src  Src
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Src.Known() {
		return e.Src.String() + ": " + e.Kind.String() + ": " + e.Msg
	}
	return e.Kind.String() + ": " + e.Msg
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err carries a failure of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
