package nicebot

import (
	"fmt"

	"github.com/alexanderjkslfj/nicebot/pkg/failure"
)

// ParseError reports that a string handed to Facade.Check could not be
// parsed as a URL. It is always fatal:
// retrying the same malformed string cannot succeed.
type ParseError struct {
	Input string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nicebot: parse %q: %v", e.Input, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func (e *ParseError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// MissingHost reports that a URL parsed cleanly but carried no host
// component, so Facade has no engine to dispatch the check to.
type MissingHost struct {
	Input string
}

func (e *MissingHost) Error() string {
	return fmt.Sprintf("nicebot: %q has no host", e.Input)
}

func (e *MissingHost) Severity() failure.Severity {
	return failure.SeverityFatal
}

var (
	_ failure.ClassifiedError = (*ParseError)(nil)
	_ failure.ClassifiedError = (*MissingHost)(nil)
)
