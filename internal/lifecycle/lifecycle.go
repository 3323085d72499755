// Package lifecycle defines the status state machine for gigs and bids.
//
// Valid status graph:
//
//	Gig:  open ──► assigned
//	Bid:  pending ──► hired
//	          │
//	          └─────► rejected
//
// assigned, hired and rejected are terminal states. The hire transition is
// the only mutation: it moves the gig to assigned, the winning bid to hired
// and every other pending bid on the gig to rejected, as one step.
package lifecycle

import (
	"gigflow/internal/gigerrors"
	"gigflow/internal/models"
)

// Decision is the target state of a legal hire transition, applied
// atomically by the store.
type Decision struct {
	Gig       models.GigStatus // status for the gig
	Winner    models.BidStatus // status for the winning bid
	OtherBids models.BidStatus // status for competing bids currently pending
}

// CanHire reports whether a hire transition is legal: the gig must still be
// open and the chosen bid still pending.
func CanHire(gig models.GigStatus, bid models.BidStatus) bool {
	return gig == models.GigOpen && bid == models.BidPending
}

// DecideHire validates a hire transition and produces its target state.
// It is the sole source of legality truth for hiring; the store calls it
// inside the atomic unit of work with freshly re-read statuses.
func DecideHire(gig models.Gig, bid models.Bid) (Decision, error) {
	if gig.Status != models.GigOpen {
		return Decision{}, gigerrors.ErrGigNotOpen
	}
	if bid.Status != models.BidPending {
		return Decision{}, gigerrors.ErrBidNotPending
	}
	return Decision{
		Gig:       models.GigAssigned,
		Winner:    models.BidHired,
		OtherBids: models.BidRejected,
	}, nil
}

// GigTerminal reports whether a gig status has no outgoing transitions.
func GigTerminal(s models.GigStatus) bool { return s == models.GigAssigned }

// BidTerminal reports whether a bid status has no outgoing transitions.
func BidTerminal(s models.BidStatus) bool {
	return s == models.BidHired || s == models.BidRejected
}
