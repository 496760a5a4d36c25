package analyzer

import "fmt"

const (
	// MessageInputRejected is shown when the service rejects the input without saying why.
	MessageInputRejected = "Invalid input. Make sure you uploaded a PDF/DOCX and added the job description."
	// MessageServerError is shown for every other failed attempt.
	MessageServerError = "Server error. Please try again."
)

// InputRejectedError is returned when the service answers 422.
type InputRejectedError struct {
	Message string
}

func (e *InputRejectedError) Error() string {
	return e.Message
}

// TransportError covers network failures, timeouts and unexpected statuses.
// Detail carries diagnostics for logs; Error() is always the user-facing text.
type TransportError struct {
	Status  int
	Timeout bool
	Detail  string
	Err     error
}

func (e *TransportError) Error() string {
	return MessageServerError
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Diagnostic renders the underlying cause for logging.
func (e *TransportError) Diagnostic() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("status=%d timeout=%t: %v", e.Status, e.Timeout, e.Err)
	default:
		return fmt.Sprintf("status=%d timeout=%t: %s", e.Status, e.Timeout, e.Detail)
	}
}
