package ptr

func ToString(s string) *string {
	return &s
}

// FromString returns the empty string for nil.
func FromString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NilIfEmpty maps "" to nil so optional columns stay NULL.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
