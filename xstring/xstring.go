// Package xstring holds the string operations of the engine's string type that Go's strings
// package does not offer as such. Strings stay plain Go strings, every function returns a new one.
//
// Trim, Find, RFind, Contains, ToUpper, ToLower and Substring map directly onto strings.TrimSpace,
// strings.Index, strings.LastIndex, strings.Contains, strings.ToUpper, strings.ToLower and slicing.
package xstring

import (
	"golang.org/x/text/cases"
	"strings"
	"unicode"
)

// Folder - Case folding for case-insensitive comparison. A value must not be shared between goroutines.
type Folder struct {
	caser cases.Caser
}

// NewFolder - Returns a Folder using Unicode full case folding
func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

// Fold - Returns s case folded
func (F *Folder) Fold(s string) string {
	return F.caser.String(s)
}

// EqualFold - Returns true if a and b are equal ignoring case
func (F *Folder) EqualFold(a, b string) bool {
	if a == b {
		return true
	}
	return F.Fold(a) == F.Fold(b)
}

// ICompare - Compares a and b ignoring case, the result is -1, 0 or 1
func (F *Folder) ICompare(a, b string) int {
	return strings.Compare(F.Fold(a), F.Fold(b))
}

// ICompare - Compares a and b ignoring case, the result is -1, 0 or 1
func ICompare(a, b string) int {
	return NewFolder().ICompare(a, b)
}

// NCompare - Compares the first n bytes of a and b, the result is -1, 0 or 1
func NCompare(a, b string, n int) int {
	n = max(n, 0)
	return strings.Compare(a[:min(n, len(a))], b[:min(n, len(b))])
}

// Strip - Replaces every run of white space with a single space. Leading and trailing white space
// is collapsed as well but not removed, use strings.TrimSpace for that.
func Strip(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	wasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !wasSpace {
				sb.WriteByte(' ')
			}
			wasSpace = true
			continue
		}
		wasSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// bounds clamps the byte range [start, start+length) to s
func bounds(s string, start, length int) (from, to int) {
	from = min(max(start, 0), len(s))
	to = from + min(max(length, 0), len(s)-from)
	return
}

// Crop - Keeps only the length bytes starting at start, the range is clamped to s
func Crop(s string, start, length int) string {
	from, to := bounds(s, start, length)
	return s[from:to]
}

// Cut - Removes the length bytes starting at start, the range is clamped to s
func Cut(s string, start, length int) string {
	from, to := bounds(s, start, length)
	return s[:from] + s[to:]
}

// Replace - Replaces every non-overlapping occurrence of old with new and returns the number of
// replacements. An empty old replaces nothing.
func Replace(s, old, new string) (result string, count int) {
	if old == "" {
		result = s
		return
	}
	if count = strings.Count(s, old); count == 0 {
		result = s
		return
	}
	result = strings.ReplaceAll(s, old, new)
	return
}
