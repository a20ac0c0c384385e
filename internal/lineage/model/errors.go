package model

import "errors"

// ErrStoreUnavailable is returned when the storage engine reports lock or contention, typically while the
// ingestion process refreshes it.
var ErrStoreUnavailable = errors.New("store is temporarily unavailable")
