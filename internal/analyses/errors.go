package analyses

import (
	"fmt"
	"strings"
)

// ParseError reports a service response that does not match the result contract.
type ParseError struct {
	Problems []string
	Err      error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("parse analysis result: %v", e.Err)
	case len(e.Problems) > 0:
		return "parse analysis result: " + strings.Join(e.Problems, "; ")
	default:
		return "parse analysis result"
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
