// Package service orchestrates validation, duplicate checks and repository
// calls for account operations.  Business-rule refusals are reported through
// the sentinel errors below so callers can tell them apart from
// infrastructure failures, which always propagate wrapped but unmodified.
package service

import "errors"

// ErrNotFound signals that the target record does not exist (or the supplied
// _id could never match one).  Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken signals that the email is already owned by another record.
// Handlers translate it into HTTP 409.
var ErrEmailTaken = errors.New("email already registered")
