package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Copy returns a new pointer to the value behind p, or nil.
func Copy[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return To(*p)
}
