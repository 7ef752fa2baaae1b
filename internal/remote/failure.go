package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Reason classifies why a remote call did not produce a payload.
type Reason string

const (
	ReasonNetworkUnreachable Reason = "network_unreachable"
	ReasonTimeout            Reason = "timeout"
	ReasonBadStatus          Reason = "bad_status"
	ReasonDecode             Reason = "decode_error"
	ReasonNotConfigured      Reason = "not_configured"
)

// Failure is the only error type returned by Client methods.
type Failure struct {
	Reason     Reason
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	switch {
	case f.Reason == ReasonBadStatus:
		return fmt.Sprintf("remote: bad status %d", f.StatusCode)
	case f.Err != nil:
		return fmt.Sprintf("remote: %s: %v", f.Reason, f.Err)
	default:
		return "remote: " + string(f.Reason)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// ReasonOf extracts the failure reason from err, if it is a *Failure.
func ReasonOf(err error) (Reason, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason, true
	}
	return "", false
}

func transportFailure(err error) *Failure {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Failure{Reason: ReasonTimeout, Err: err}
	}
	return &Failure{Reason: ReasonNetworkUnreachable, Err: err}
}

func decodeFailure(format string, args ...any) *Failure {
	return &Failure{Reason: ReasonDecode, Err: fmt.Errorf(format, args...)}
}
