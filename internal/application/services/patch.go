package services

// apply copies *src into *dst when the caller supplied a value
func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// applyRef is apply for optional fields stored as pointers
func applyRef[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
