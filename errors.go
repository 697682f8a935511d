// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import "fmt"

// ConfigurationError is returned by constructors when a validator is
// registered with missing or malformed static attributes.
//
// It is always a programmer error: the descriptor or the allow-list is
// wrong, regardless of what the user passes on the command line.
type ConfigurationError struct {
	// Name is the name of the validator being registered, if known.
	Name string

	// Field is the offending attribute (e.g., "Func", "Plural", "allowed").
	Field string

	// Reason explains what is wrong with Field.
	Reason string
}

var _ error = &ConfigurationError{}

// Error implements error.
func (e *ConfigurationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("argcheck: %s: %s: %s", e.Name, e.Field, e.Reason)
	}
	return fmt.Sprintf("argcheck: %s: %s", e.Field, e.Reason)
}

func newMissingAttributeError(name, field string) *ConfigurationError {
	return &ConfigurationError{Name: name, Field: field, Reason: "missing required attribute"}
}

// ValidationError is returned when an argument value is rejected at parse time.
//
// Message is the singular message for scalar input and the plural message
// for list input. Failures of the underlying function (e.g., a network error
// while probing a URL) are folded into this type through Err.
type ValidationError struct {
	// Name is the name of the validator that rejected the value.
	Name string

	// Message is the configured singular or plural message.
	Message string

	// Value is the first rejected value.
	Value string

	// Index is the position of Value within the input.
	Index int

	// List is true when the input was list-valued.
	List bool

	// Class is the classification of Err, empty when Err is nil.
	Class string

	// Err is the underlying failure, if any.
	Err error
}

var _ error = &ValidationError{}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying failure.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
