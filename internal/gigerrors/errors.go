package gigerrors

import "errors"

// Repository-level errors
var (
	ErrGigNotFound = errors.New("gig not found")
	ErrBidNotFound = errors.New("bid not found")
)

// business logic errors
var (
	ErrInvalidGig   = errors.New("invalid gig")
	ErrInvalidBid   = errors.New("invalid bid")
	ErrNotGigOwner  = errors.New("not the gig owner")
	ErrOwnGigBid    = errors.New("cannot bid on own gig")
	ErrDuplicateBid = errors.New("bid already submitted for this gig")
)

// Conflict errors: the routine outcome of losing a hire race, or of
// acting on an entity whose lifecycle has already moved on.
var (
	ErrGigNotOpen    = errors.New("gig is no longer open")
	ErrBidNotPending = errors.New("bid is no longer pending")
)

// ErrTxRetryable marks a transient storage fault that aborted the atomic
// unit of work; no partial writes were applied and the caller may retry.
var ErrTxRetryable = errors.New("transaction aborted, retry")
