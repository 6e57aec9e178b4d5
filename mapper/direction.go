package mapper

//go:generate go tool stringer -type=Direction,HookKind -output=direction_string.go

// Direction selects which path of each Rule is read and which is written.
type Direction int

const (
	Normalize Direction = iota
	Denormalize
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Normalize {
		return Denormalize
	}

	return Normalize
}

// HookKind identifies one of the four hook sequences of a Mapper.
type HookKind int

const (
	BeforeNormalize HookKind = iota
	BeforeDenormalize
	AfterNormalize
	AfterDenormalize

	// hookKindTotal is the number of hook kinds defined
	hookKindTotal = int(iota)
)

// BeforeHook returns the before hook kind for a direction.
func BeforeHook(d Direction) HookKind {
	if d == Denormalize {
		return BeforeDenormalize
	}

	return BeforeNormalize
}

// AfterHook returns the after hook kind for a direction.
func AfterHook(d Direction) HookKind {
	if d == Denormalize {
		return AfterDenormalize
	}

	return AfterNormalize
}

// ParseHookKind parses names such as "before_normalize" or "after_denormalize".
func ParseHookKind(name string) (HookKind, bool) {
	switch name {
	case "before_normalize":
		return BeforeNormalize, true
	case "before_denormalize":
		return BeforeDenormalize, true
	case "after_normalize":
		return AfterNormalize, true
	case "after_denormalize":
		return AfterDenormalize, true
	default:
		return 0, false
	}
}
