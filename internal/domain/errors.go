package domain

import "errors"

// Store-level conditions. Both backends translate their driver errors into
// these before returning.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
