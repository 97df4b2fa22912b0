package types

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// Ptr returns a pointer to a copy of v
func Ptr[T any](v T) *T {
	return &v
}
