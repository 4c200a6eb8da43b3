package list

// Find - Returns the position of the first element equal to v, or End()
func Find[T comparable](L *List[T], v T) Iterator[T] {
	return FindFrom(L, L.Begin(), v)
}

// FindFrom - Returns the position of the first element equal to v at or after start, or End()
func FindFrom[T comparable](L *List[T], start Iterator[T], v T) Iterator[T] {
	return L.FindFunc(start, func(e T) bool { return e == v })
}

// IsHere - Returns true if v is an element of L
func IsHere[T comparable](L *List[T], v T) bool {
	return !Find(L, v).IsEnd()
}

// RemoveValue - Removes the first element equal to v, returns false if not found
func RemoveValue[T comparable](L *List[T], v T) bool {
	it := Find(L, v)
	if it.IsEnd() {
		return false
	}
	L.Remove(it)
	return true
}
