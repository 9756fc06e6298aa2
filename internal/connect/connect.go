// Package connect performs the single TCP connection attempt.
package connect

import (
	"context"
	"net"
	"time"

	"github.com/pranshuparmar/conndiag/internal/diagnose"
	"github.com/pranshuparmar/conndiag/pkg/model"
)

// Dialer opens a stream connection. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// NewDialer returns a TCP dialer. A zero timeout leaves the connect
// timeout to the operating system.
func NewDialer(timeout time.Duration) *net.Dialer {
	return &net.Dialer{Timeout: timeout}
}

// Attempt dials target exactly once. The connection, if any, is closed
// after its addresses are recorded. Failures are classified, never
// returned as errors.
func Attempt(ctx context.Context, d Dialer, c diagnose.ErrorClassifier, target model.ConnectionTarget) model.ConnectionOutcome {
	outcome := model.ConnectionOutcome{
		Target:   target,
		Platform: c.Platform(),
	}

	start := time.Now()
	conn, err := d.DialContext(ctx, "tcp", target.Address())
	outcome.Elapsed = time.Since(start)

	if err != nil {
		raw := diagnose.RawFromError(err, c)
		outcome.Status = model.OutcomeFailed
		outcome.Class = c.Classify(raw)
		outcome.Raw = &raw
		return outcome
	}
	defer conn.Close()

	outcome.Status = model.OutcomeConnected
	if addr := conn.LocalAddr(); addr != nil {
		outcome.LocalAddr = addr.String()
	}
	if addr := conn.RemoteAddr(); addr != nil {
		outcome.RemoteAddr = addr.String()
	}
	return outcome
}
