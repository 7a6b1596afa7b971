package config

import "fmt"

// ParseError reports an integer setting whose environment value is not a
// base-10 integer.
type ParseError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s=%q as integer: %v", e.Name, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
