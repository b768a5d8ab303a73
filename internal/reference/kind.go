package reference

// Kind is the absolute or relative flavor of a column or row reference.
type Kind uint8

const (
	// Relative references have no "$" prefix and move when copied.
	Relative Kind = iota
	// Absolute references are "$" prefixed.
	Absolute
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// prefix returns the text printed before the column letters or row digits.
func (k Kind) prefix() string {
	if k == Absolute {
		return "$"
	}
	return ""
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
