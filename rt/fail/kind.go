package fail

// Kind classifies a failure so callers can branch on intent rather than text.
type Kind uint8

const (
	Panic       Kind = iota + 1 // generic logic violation (nil dereference, malformed input)
	Type                        // failed checked downcast
	OutOfBounds                 // index, slice or seek outside the valid range
	Key                         // missing or invalid map key
	Allocation                  // memory exhaustion or impossible allocation size
	IO                          // host file or device failure
	Assertion                   // explicit program assertion
)

// String returns the name used in diagnostic lines.
func (k Kind) String() string {
	switch k {
	case Panic:
		return "panic"
	case Type:
		return "type error"
	case OutOfBounds:
		return "out of bounds"
	case Key:
		return "key error"
	case Allocation:
		return "alloc error"
	case IO:
		return "io error"
	case Assertion:
		return "assert"
	default:
		return "error"
	}
}
