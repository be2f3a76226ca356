package fail

import "reflect"

// Downcast narrows obj to T. It fails Panic when obj is absent and Type when
// its dynamic type is not T. name is the target type as spelled in the source
// program.
func Downcast[T any](src Src, obj any, name string) T {
	if isNil(obj) {
		Fail(Panic, src, "'as %s' failed: object is None", name)
	}
	v, ok := obj.(T)
	if !ok {
		Fail(Type, src, "'as %s' failed: object is not %s", name, name)
	}
	return v
}

// DowncastTag is Downcast for objects that carry an explicit type tag.
func DowncastTag[T comparable](src Src, present bool, actual, expected T, name string) {
	if !present {
		Fail(Panic, src, "'as %s' failed: object is None", name)
	}
	if actual != expected {
		Fail(Type, src, "'as %s' failed: object is not %s", name, name)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
