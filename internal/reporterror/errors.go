// Package reporterror defines the error classes surfaced by the report pipeline.
package reporterror

import "fmt"

// InputError represents a failure to access or read the input file.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input file '%s': %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// SchemaError represents a required column missing from the input header.
type SchemaError struct {
	Path   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column '%s' not found in header of '%s'", e.Column, e.Path)
}

// OutputError represents a failure to write the report file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output file '%s': %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// ArgumentError represents an invalid flag value or flag combination.
type ArgumentError struct {
	Flag   string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid value '%s' for %s: %s", e.Value, e.Flag, e.Reason)
}
