// Package diagnose turns a failed dial into a diagnostic category and the
// guidance printed for it.
package diagnose

import "github.com/pranshuparmar/conndiag/pkg/model"

// ErrorClassifier maps a raw dial failure to exactly one ErrorClass.
type ErrorClassifier interface {
	Classify(raw model.RawError) model.ErrorClass
	// HostNotFoundCode is the platform's resolver "host not found" code,
	// if one is registered.
	HostNotFoundCode() (int, bool)
	Platform() string
}

type classifier struct {
	platform        string
	hostNotFound    int
	hasHostNotFound bool
}

// Classify checks refused, then timed out, then host not found; the first
// match wins and everything else is ClassUnknown.
func (c classifier) Classify(raw model.RawError) model.ErrorClass {
	switch {
	case raw.Kind == model.KindRefused:
		return model.ClassRefused
	case raw.Kind == model.KindTimedOut:
		return model.ClassTimedOut
	case raw.Kind == model.KindUncategorized && raw.HasCode &&
		c.hasHostNotFound && raw.Code == c.hostNotFound:
		return model.ClassHostUnresolved
	default:
		return model.ClassUnknown
	}
}

func (c classifier) HostNotFoundCode() (int, bool) {
	return c.hostNotFound, c.hasHostNotFound
}

func (c classifier) Platform() string {
	return c.platform
}
