package domain

import (
	"errors"
)

// Every failure that aborts a run wraps one of these. Callers match with errors.Is and
// the message of the wrapping error is what the user sees.
var (
	ErrUsage        = errors.New("usage")
	ErrFileNotFound = errors.New("file not found")
	ErrSchema       = errors.New("missing required columns")
	ErrEmptyData    = errors.New("no data")
	ErrParsing      = errors.New("parse failure")
)
