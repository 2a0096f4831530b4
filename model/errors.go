package model

import "fmt"

// ParseError reports input that is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports well-formed JSON whose shape is not a mapping of AS
// identifiers to AS record objects.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "unexpected input shape: " + e.Reason
}
