//go:build !unix && !windows

package diagnose

import "syscall"

func isRefusedErrno(e syscall.Errno) bool {
	return e == syscall.ECONNREFUSED
}

func isTimedOutErrno(e syscall.Errno) bool {
	return e == syscall.ETIMEDOUT
}
