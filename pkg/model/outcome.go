package model

import "time"

type OutcomeStatus string

const (
	OutcomeConnected OutcomeStatus = "connected"
	OutcomeFailed    OutcomeStatus = "failed"
)

type ConnectionOutcome struct {
	Target   ConnectionTarget `json:"target"`
	Status   OutcomeStatus    `json:"status"`
	Platform string           `json:"platform"`
	Elapsed  time.Duration    `json:"elapsed_ns"`

	// Set when Status is OutcomeConnected.
	LocalAddr  string `json:"local_addr,omitempty"`
	RemoteAddr string `json:"remote_addr,omitempty"`

	// Set when Status is OutcomeFailed.
	Class ErrorClass `json:"class,omitempty"`
	Raw   *RawError  `json:"raw_error,omitempty"`
}

func (o ConnectionOutcome) Connected() bool {
	return o.Status == OutcomeConnected
}

// Advice is the human-readable narration for a failed attempt.
type Advice struct {
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Causes      []string `json:"causes,omitempty"`
	NextSteps   []string `json:"next_steps,omitempty"`
}
