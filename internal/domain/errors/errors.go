package errors

import "errors"

var (
	ErrUnavailable       = errors.New("ledger unavailable")
	ErrNotFound          = errors.New("not found")
	ErrInvalidUrgency    = errors.New("invalid urgency")
	ErrInvalidCostCenter = errors.New("invalid cost center")
)
