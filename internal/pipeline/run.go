package pipeline

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pranshuparmar/conndiag/internal/connect"
	"github.com/pranshuparmar/conndiag/internal/diagnose"
	"github.com/pranshuparmar/conndiag/internal/output"
	"github.com/pranshuparmar/conndiag/internal/tui"
	"github.com/pranshuparmar/conndiag/pkg/model"
)

type RunConfig struct {
	Target     model.ConnectionTarget
	Dialer     connect.Dialer
	Classifier diagnose.ErrorClassifier
	Renderer   output.Renderer
	Log        logrus.FieldLogger

	// SpinnerOut, when set, draws a spinner there while the dial blocks.
	SpinnerOut io.Writer
}

// Run makes the single attempt and renders the outcome. A failed
// connection is a normal outcome; the error return is for rendering and
// terminal failures only.
func Run(ctx context.Context, cfg RunConfig) (model.ConnectionOutcome, error) {
	log := cfg.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	classifier := cfg.Classifier
	if classifier == nil {
		classifier = diagnose.Default()
	}
	log = log.WithFields(logrus.Fields{
		"destination": cfg.Target.Destination,
		"port":        cfg.Target.Port,
		"platform":    classifier.Platform(),
	})

	if err := cfg.Renderer.Attempting(cfg.Target); err != nil {
		return model.ConnectionOutcome{}, errors.Wrap(err, "writing target")
	}

	attempt := func(ctx context.Context) model.ConnectionOutcome {
		return connect.Attempt(ctx, cfg.Dialer, classifier, cfg.Target)
	}

	log.Debug("attempting connection")
	var outcome model.ConnectionOutcome
	if cfg.SpinnerOut != nil {
		var err error
		outcome, err = tui.RunAttempt(ctx, cfg.Target.Address(), cfg.SpinnerOut, attempt)
		if err != nil {
			return model.ConnectionOutcome{}, err
		}
	} else {
		outcome = attempt(ctx)
	}

	log = log.WithFields(logrus.Fields{
		"status":  outcome.Status,
		"elapsed": outcome.Elapsed,
	})

	var advice *model.Advice
	if outcome.Connected() {
		log.WithField("remote", outcome.RemoteAddr).Debug("connected")
	} else {
		fields := logrus.Fields{"class": outcome.Class}
		if outcome.Raw != nil {
			fields["kind"] = outcome.Raw.Kind
			fields["error"] = outcome.Raw.Message
			if outcome.Raw.HasCode {
				fields["code"] = outcome.Raw.Code
			}
		}
		log.WithFields(fields).Debug("connection failed")
		a := diagnose.Advise(outcome.Class, outcome.Target, outcome.Raw)
		advice = &a
	}

	if err := cfg.Renderer.Outcome(outcome, advice); err != nil {
		return outcome, errors.Wrap(err, "writing outcome")
	}
	return outcome, nil
}
