package diagnose

import (
	"net"
	"syscall"

	"github.com/pkg/errors"

	"github.com/pranshuparmar/conndiag/pkg/model"
)

// RawFromError extracts kind, numeric code and message from a dial error.
//
// Go's resolver folds the platform's "host not found" result (EAI_NONAME,
// WSAHOST_NOT_FOUND) into net.DNSError.IsNotFound, so that case is given
// the classifier's registered code back.
func RawFromError(err error, c ErrorClassifier) model.RawError {
	raw := model.RawError{
		Kind:    model.KindUncategorized,
		Message: err.Error(),
		Err:     err,
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		raw.Code = int(errno)
		raw.HasCode = true
		switch {
		case isRefusedErrno(errno):
			raw.Kind = model.KindRefused
			return raw
		case isTimedOutErrno(errno):
			raw.Kind = model.KindTimedOut
			return raw
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		raw.Kind = model.KindTimedOut
		return raw
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		if code, ok := c.HostNotFoundCode(); ok {
			raw.Code = code
			raw.HasCode = true
		}
	}
	return raw
}
