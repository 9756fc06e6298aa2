//go:build windows

package diagnose

import "syscall"

const (
	wsaeTimedOut    syscall.Errno = 10060
	wsaeConnRefused syscall.Errno = 10061
)

func isRefusedErrno(e syscall.Errno) bool {
	return e == wsaeConnRefused
}

func isTimedOutErrno(e syscall.Errno) bool {
	return e == wsaeTimedOut
}
