// Package error provides structured error values for charseq.
//
// Package: error
// Title: charseq Error Handling
// Description: A structured error type carrying a code, a severity, free-form
//              details and the failing operation. The query library raises
//              INVALID_ARGUMENT, INVALID_STATE and VALUE_OUT_OF_RANGE through it;
//              the config loader and the command line tool reuse the same type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//
//	import mdwerror "github.com/msto63/charseq/core/error"
//
//	err := mdwerror.New("source string cannot be empty").
//	    WithCode(mdwerror.CodeInvalidState).
//	    WithOperation("seqx.First")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidState) {
//	    // fall back to a default
//	}
package error
