package domain

import "errors"

var (
	// Record errors
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrCategoryUnset   = errors.New("record has no category")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidKind     = errors.New("invalid record kind")
	ErrRecordNotFound  = errors.New("record not found")

	// Format errors
	ErrInvalidDate   = errors.New("date must be in the format YYYY-MM-DD")
	ErrInvalidPeriod = errors.New("period must be in the format YYYY-MM")

	// Persistence errors
	ErrDecode           = errors.New("malformed ledger document")
	ErrStorage          = errors.New("ledger storage failure")
	ErrDocumentNotFound = errors.New("ledger document not found")
)
