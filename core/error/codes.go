// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by charseq packages. Codes
//              classify failures so callers can tell argument problems
//              apart from requests that cannot be satisfied by the data.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial code set for query, config and CLI errors

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Argument and state codes raised by the query library
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidInput    Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeInvalidState, CodeValueOutOfRange, CodeInvalidInput,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeInvalidInput:
		return "argument"
	case CodeInvalidState, CodeValueOutOfRange:
		return "state"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "argument":
		return 2
	case "state":
		return 3
	case "configuration":
		return 4
	default:
		return 1
	}
}
