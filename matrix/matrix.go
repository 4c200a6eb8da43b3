package matrix

import (
	"github.com/gostonefire/xcontainers/internal/check"
	"unsafe"
)

// Matrix - Two dimensional grid stored row by row, element (x, y) lives at y*width + x
type Matrix[T any] struct {
	data   []T
	width  int
	height int
}

// New - Returns a width by height matrix of zero values
func New[T any](width, height int) *Matrix[T] {
	M := &Matrix[T]{}
	M.Create(width, height)
	return M
}

// Create - Discards the contents and sets the dimensions, all elements become zero values
func (M *Matrix[T]) Create(width, height int) {
	check.That(width >= 0 && height >= 0, "negative dimensions %dx%d", width, height)
	M.Clear()
	if width == 0 || height == 0 {
		return
	}
	M.data = make([]T, width*height)
	M.width = width
	M.height = height
}

// Clear - Frees the storage and sets both dimensions to zero
func (M *Matrix[T]) Clear() {
	M.data = nil
	M.width = 0
	M.height = 0
}

// GetWidth - Returns the number of columns
func (M *Matrix[T]) GetWidth() int {
	return M.width
}

// GetHeight - Returns the number of rows
func (M *Matrix[T]) GetHeight() int {
	return M.height
}

// Size - Returns the number of bytes used by the elements
func (M *Matrix[T]) Size() int {
	var zero T
	return len(M.data) * int(unsafe.Sizeof(zero))
}

// At - Returns a pointer to element (x, y)
func (M *Matrix[T]) At(x, y int) *T {
	check.Index(x, M.width)
	check.Index(y, M.height)
	return &M.data[y*M.width+x]
}

// Get - Returns element (x, y)
func (M *Matrix[T]) Get(x, y int) T {
	return *M.At(x, y)
}

// Set - Sets element (x, y)
func (M *Matrix[T]) Set(x, y int, v T) {
	*M.At(x, y) = v
}

// Fill - Sets every element to v
func (M *Matrix[T]) Fill(v T) {
	for i := range M.data {
		M.data[i] = v
	}
}

// Row - Returns row y, the slice aliases the matrix storage
func (M *Matrix[T]) Row(y int) []T {
	check.Index(y, M.height)
	return M.data[y*M.width : (y+1)*M.width : (y+1)*M.width]
}
