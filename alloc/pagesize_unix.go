//go:build unix

package alloc

import "golang.org/x/sys/unix"

func defaultPageSize() int {
	return unix.Getpagesize()
}
