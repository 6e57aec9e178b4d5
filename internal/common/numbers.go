package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if lo <= value < hi.
func IsInRange[T number](lo, value, hi T) bool {
	return lo <= value && value < hi
}
