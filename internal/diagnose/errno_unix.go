//go:build unix

package diagnose

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func isRefusedErrno(e syscall.Errno) bool {
	return e == unix.ECONNREFUSED
}

func isTimedOutErrno(e syscall.Errno) bool {
	return e == unix.ETIMEDOUT
}
