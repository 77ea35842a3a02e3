package converting

// Unwrap returns the pointed value, or the zero value of T for nil.
func Unwrap[T any](x *T) T {
	var zero T
	if x == nil {
		return zero
	}

	return *x
}

// PointerToValue returns a pointer to a copy of v.
func PointerToValue[T any](v T) *T {
	return &v
}
