package utils

type releaser interface {
	Release()
}

// Release - Calls Release on the value at p if its type (or its pointer type) has such a method,
// then resets the value to its zero value
func Release[T any](p *T) {
	if r, ok := any(*p).(releaser); ok {
		r.Release()
	} else if r, ok := any(p).(releaser); ok {
		r.Release()
	}
	var zero T
	*p = zero
}

// Releasable - Returns true if values of type T will have a Release method called by Release
func Releasable[T any]() bool {
	var zero T
	if _, ok := any(zero).(releaser); ok {
		return true
	}
	_, ok := any(&zero).(releaser)
	return ok
}
