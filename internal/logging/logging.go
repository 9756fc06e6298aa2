// Package logging configures the logrus logger used for diagnostics on
// stderr. Program output proper goes to stdout and never through here.
package logging

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	default:
		return nil, errors.Errorf("invalid log format %q", format)
	}
	return logger, nil
}
