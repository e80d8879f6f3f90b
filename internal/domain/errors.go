package domain

import "errors"

// These are contract violations, raised with panic. Business declines are
// reported as booleans and never show up here.
var (
	ErrNonPositiveAmount = errors.New("transaction amount must be > 0")
	ErrUnknownKind       = errors.New("unknown transaction kind")
	ErrInactiveAccount   = errors.New("account is not active")
	ErrNegativeOverdraft = errors.New("overdraft limit must be >= 0")
	ErrNegativeQuota     = errors.New("withdrawal quota must be >= 0")
	ErrNilHolder         = errors.New("account needs a holder")
)
