// File: errors.go
// Title: Error Classification Helpers
// Description: Lets callers pick a failure policy without importing the
//              core error packages directly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package seqx

import (
	mdwerror "github.com/msto63/charseq/core/error"
)

// IsInvalidArgument reports whether err was raised for an absent or
// unusable argument (nil source, nil predicate, unknown mode).
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// IsInvalidState reports whether err was raised because the source was
// empty or no element matched.
func IsInvalidState(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidState)
}

// IsOutOfRange reports whether err was raised for an index outside the
// source bounds.
func IsOutOfRange(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}
