// Package errors provides the standard error constructors shared by all
// charseq packages.
//
// Each constructor tags the error with the module and operation that raised
// it, so callers and the command line front end can classify failures
// without string matching:
//
//	err := errors.ArgumentNil(errors.ModuleSeqx, "Take", "source")
//	errors.ExtractParameter(err) // "source"
//	errors.ExtractOperation(err) // "Take"
//
// The codes themselves live in package core/error.
package errors
