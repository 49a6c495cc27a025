// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the module-scoped error builder and the standard
//              constructors used by every charseq package, so that argument,
//              state and range failures look the same wherever they arise.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/charseq/core/error"
)

// Module identifiers for error categorization
const (
	ModuleSeqx   = "seqx"
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	op := eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
		op = eb.module + "." + eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithOperation(op).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// ArgumentNil reports a required argument that was absent. It is always
// raised before an operation looks at any other input.
func ArgumentNil(module, operation, parameter string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value cannot be nil (parameter '%s')", parameter).
		Code(mdwerror.CodeInvalidArgument).
		Detail("parameter", parameter).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidArgument reports an argument that is present but unusable.
func InvalidArgument(module, operation, parameter string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid value %v for parameter '%s': %s", value, parameter, reason).
		Code(mdwerror.CodeInvalidArgument).
		Detail("parameter", parameter).
		Detail("value", value).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidState reports a request the current data cannot satisfy, such as
// taking the first element of an empty source.
func InvalidState(module, operation, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeInvalidState).
		Severity(mdwerror.SeverityLow).
		Build()
}

// IndexOutOfRange reports an index outside [0, length).
func IndexOutOfRange(module, operation string, index, length int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("index out of range: requested character index %d of a string with %d characters", index, length).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("parameter", "index").
		Detail("index", index).
		Detail("length", length).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s: %v", module, operation, identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// OperationFailed wraps a cause from a lower layer
func OperationFailed(module, operation string, cause error, code mdwerror.Code) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(code).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from an error built by this package
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// ExtractParameter returns the offending parameter name of an argument error
func ExtractParameter(err error) string {
	if parameter, ok := ExtractDetails(err)["parameter"].(string); ok {
		return parameter
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
