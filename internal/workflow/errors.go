package workflow

import (
	"context"
	"errors"

	"resume-client/internal/analyses"
	"resume-client/internal/analyzer"
)

const (
	MessageMissingInput       = "Please upload a resume and enter a job description."
	MessageMissingFile        = "Please select a resume file."
	MessageUnexpectedResponse = "Unexpected response from the analysis service. Please try again."
)

var (
	// ErrSubmissionInFlight rejects a submit while another is outstanding.
	ErrSubmissionInFlight = errors.New("submission already in progress")
	// ErrInvalidTransition rejects an operation the current state does not allow.
	ErrInvalidTransition = errors.New("invalid workflow transition")
	// ErrSuperseded is returned to a submit whose workflow was reset while it waited.
	ErrSuperseded = errors.New("submission superseded by reset")
)

// ValidationError is a local input problem; it never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Kind classifies a submit error for logs and metrics.
func Kind(err error) string {
	var (
		verr *ValidationError
		rerr *analyzer.InputRejectedError
		terr *analyzer.TransportError
		perr *analyses.ParseError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &verr):
		return "validation"
	case errors.As(err, &rerr):
		return "input_rejected"
	case errors.As(err, &perr):
		return "parse"
	case errors.As(err, &terr):
		if terr.Timeout {
			return "timeout"
		}
		return "transport"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unknown"
	}
}

// userMessage converts any error into the text shown on the upload step.
func userMessage(err error) string {
	var (
		verr *ValidationError
		rerr *analyzer.InputRejectedError
		perr *analyses.ParseError
	)
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.As(err, &rerr):
		return rerr.Message
	case errors.As(err, &perr):
		return MessageUnexpectedResponse
	default:
		return analyzer.MessageServerError
	}
}
