package utils

import "errors"

var (
	ErrEntryNotFound      = errors.New("journal entry not found")
	ErrBadgeNotFound      = errors.New("badge definition not found")
	ErrInvalidMood        = errors.New("invalid mood value")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidBadgeTarget = errors.New("badge progress target must be positive")
	ErrUnknownCategory    = errors.New("unknown badge category")
	ErrEmptyContent       = errors.New("entry content must not be empty")
	ErrDatabaseError      = errors.New("database error")
)
