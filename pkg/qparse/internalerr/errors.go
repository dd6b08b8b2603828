package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
	ErrDuplicateKeyword  = errors.New("duplicate keyword")
	ErrUnknownLabel      = errors.New("unknown label")
)
