package fail

// Try runs fn and returns the first failure it raises as an *Error.
// Panics that are not runtime failures propagate unchanged.
func Try(fn func()) (err error) {
	trapping.Add(1)
	defer func() {
		trapping.Add(-1)
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// Catch is Try for functions returning a value.
func Catch[T any](fn func() T) (v T, err error) {
	err = Try(func() { v = fn() })
	return v, err
}
