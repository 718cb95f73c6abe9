package syntax

import (
	"fmt"
)

// maximum number of characters of the offending input included in error strings
const maxErrorInputLen = 128

// Returned by all the ParseX functions in this package when the input string does not match the syntax of the identifier type.
//
// Parsers never return a partially-valid value along with a SyntaxError; the returned identifier is always the zero value.
type SyntaxError struct {
	// Identifier type being parsed, eg "DID" or "AT-URI"
	Type string
	// The full input string
	Raw    string
	Reason string
	// Set when validation of a nested identifier failed (eg, the authority segment of an AT-URI)
	Err error
}

func (e *SyntaxError) Error() string {
	raw := e.Raw
	if len(raw) > maxErrorInputLen {
		raw = raw[:maxErrorInputLen] + "..."
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %s: %s", e.Type, raw, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Type, raw, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func malformed(typ, raw, reason string) error {
	return &SyntaxError{Type: typ, Raw: raw, Reason: reason}
}

func malformedNested(typ, raw, reason string, inner error) error {
	return &SyntaxError{Type: typ, Raw: raw, Reason: reason, Err: inner}
}
