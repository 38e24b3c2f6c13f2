package models

import "errors"

// ErrNotFound marks a lookup or update that matched no record. Stores
// return it (possibly wrapped) instead of driver-level errors so callers
// above the persistence layer never inspect database/sql.
var ErrNotFound = errors.New("record not found")
