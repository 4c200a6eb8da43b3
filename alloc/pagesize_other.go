//go:build !unix

package alloc

import "github.com/gostonefire/xcontainers/internal/conf"

func defaultPageSize() int {
	return conf.DefaultChunkSize
}
