package failure

// Tag converts a comma-ok constructor result into an error return, tagging
// absence with the given reason. The value passes through untouched when ok
// is true.
func Tag[T any](value T, ok bool, r Reason) (T, error) {
	if ok {
		return value, nil
	}
	var zero T
	return zero, r
}

// TagList behaves like Tag but reports absence as a one-element List, for
// call sites that go on to concatenate failures from independent checks.
func TagList[T any](value T, ok bool, r Reason) (T, error) {
	if ok {
		return value, nil
	}
	var zero T
	return zero, List{r}
}
