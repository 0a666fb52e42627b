package storage

import "errors"

// ErrTransactionNotFound is returned when a transaction does not exist or does
// not belong to the requesting user. The two cases are deliberately not
// distinguished to avoid leaking other users' transaction IDs.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrMissingActor is returned when an operation is attempted without an
// authenticated user identity. No read or write is performed in that case.
var ErrMissingActor = errors.New("missing authenticated user")
