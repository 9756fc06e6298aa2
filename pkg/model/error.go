package model

type ErrorKind string

const (
	KindRefused       ErrorKind = "refused"
	KindTimedOut      ErrorKind = "timed_out"
	KindUncategorized ErrorKind = "uncategorized"
)

type ErrorClass string

const (
	ClassRefused        ErrorClass = "refused"
	ClassTimedOut       ErrorClass = "timed_out"
	ClassHostUnresolved ErrorClass = "host_unresolved"
	ClassUnknown        ErrorClass = "unknown"
)

// RawError is the dial failure as reported by the networking stack,
// before classification.
type RawError struct {
	Kind    ErrorKind `json:"kind"`
	Code    int       `json:"code,omitempty"`
	HasCode bool      `json:"has_code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}
