package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gigflow/internal/gigerrors"
	"gigflow/internal/lifecycle"
	model "gigflow/internal/models"
)

// HireDecider is called by the store inside the atomic unit of work with
// freshly re-read records. It returns the target state to apply, or an
// error that aborts the unit with no writes.
type HireDecider func(gig model.Gig, bid model.Bid) (lifecycle.Decision, error)

// GigDB defines the gig and bid storage interface for the marketplace
type GigDB interface {
	CreateGig(ctx context.Context, gig model.Gig) error
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListGigs(ctx context.Context, search string, status model.GigStatus) ([]model.Gig, error)
	GigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error)
	DeleteOpenGig(ctx context.Context, gigID string) error

	CreateBid(ctx context.Context, bid model.Bid) error
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	BidsByGig(ctx context.Context, gigID string) ([]model.Bid, error)
	BidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error)

	// HireExclusively runs the hire transition as one atomic unit: it
	// re-reads the gig and bid, consults decide, and applies the grouped
	// writes (gig assigned, winner hired, other pending bids rejected).
	// Either all writes land or none do.
	HireExclusively(ctx context.Context, gigID, bidID string, decide HireDecider) (model.Gig, model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of GigDB.
// The mutex-scoped critical section in HireExclusively and CreateBid is
// the atomic unit of work: re-reads and writes happen under one lock, so
// of any set of racing hire calls on a gig exactly one sees it open.
type MemoryRepo struct {
	mu      sync.RWMutex
	gigs    map[string]model.Gig
	bids    map[string]model.Bid
	gigBids map[string][]string // key: gigID -> value: bid IDs on that gig
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		gigs:    make(map[string]model.Gig),
		bids:    make(map[string]model.Bid),
		gigBids: make(map[string][]string),
	}
}

// CreateGig stores a new gig
func (r *MemoryRepo) CreateGig(_ context.Context, gig model.Gig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gigs[gig.GigID] = gig
	return nil
}

// GetGig returns a gig by ID
func (r *MemoryRepo) GetGig(_ context.Context, gigID string) (model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}
	return gig, nil
}

// ListGigs returns gigs matching the status, optionally filtered by a
// case-insensitive title/description search, newest first.
func (r *MemoryRepo) ListGigs(_ context.Context, search string, status model.GigStatus) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	gigs := make([]model.Gig, 0)
	for _, g := range r.gigs {
		if g.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(g.Title), needle) &&
			!strings.Contains(strings.ToLower(g.Description), needle) {
			continue
		}
		gigs = append(gigs, g)
	}
	sortGigsNewestFirst(gigs)
	return gigs, nil
}

// GigsByOwner returns all gigs posted by a user, newest first
func (r *MemoryRepo) GigsByOwner(_ context.Context, ownerID string) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gigs := make([]model.Gig, 0)
	for _, g := range r.gigs {
		if g.OwnerID == ownerID {
			gigs = append(gigs, g)
		}
	}
	sortGigsNewestFirst(gigs)
	return gigs, nil
}

// DeleteOpenGig removes a gig and its bids, but only while the gig is
// still open. Assigned gigs keep their hire record forever.
func (r *MemoryRepo) DeleteOpenGig(_ context.Context, gigID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return fmt.Errorf("delete gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}
	if gig.Status != model.GigOpen {
		return fmt.Errorf("delete gig %s: %w", gigID, gigerrors.ErrGigNotOpen)
	}

	for _, bidID := range r.gigBids[gigID] {
		delete(r.bids, bidID)
	}
	delete(r.gigBids, gigID)
	delete(r.gigs, gigID)
	return nil
}

// CreateBid records a freelancer's bid. The gig-openness and duplicate
// checks run under the same lock as the insert, so a bid can never land
// on a gig that a concurrent hire has already assigned.
func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[bid.GigID]
	if !ok {
		return fmt.Errorf("record bid for gig %s: %w", bid.GigID, gigerrors.ErrGigNotFound)
	}
	if gig.Status != model.GigOpen {
		return fmt.Errorf("record bid for gig %s: %w", bid.GigID, gigerrors.ErrGigNotOpen)
	}

	for _, id := range r.gigBids[bid.GigID] {
		if r.bids[id].FreelancerID == bid.FreelancerID {
			return fmt.Errorf("record bid for gig %s: %w", bid.GigID, gigerrors.ErrDuplicateBid)
		}
	}

	r.bids[bid.BidID] = bid
	r.gigBids[bid.GigID] = append(r.gigBids[bid.GigID], bid.BidID)
	return nil
}

// GetBid returns a bid by ID
func (r *MemoryRepo) GetBid(_ context.Context, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, gigerrors.ErrBidNotFound)
	}
	return bid, nil
}

// BidsByGig returns all bids on a gig, newest first
func (r *MemoryRepo) BidsByGig(_ context.Context, gigID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.gigs[gigID]; !ok {
		return nil, fmt.Errorf("get bids for gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}

	bids := make([]model.Bid, 0, len(r.gigBids[gigID]))
	for _, id := range r.gigBids[gigID] {
		bids = append(bids, r.bids[id])
	}
	sortBidsNewestFirst(bids)
	return bids, nil
}

// BidsByFreelancer returns all bids a user has placed, newest first
func (r *MemoryRepo) BidsByFreelancer(_ context.Context, freelancerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.FreelancerID == freelancerID {
			bids = append(bids, b)
		}
	}
	sortBidsNewestFirst(bids)
	return bids, nil
}

// HireExclusively implements the atomic hire unit of work over the shared
// lock. The gig and bid are re-read inside the critical section and the
// decision re-validated there; a second racing caller therefore always
// observes the committed assigned status and gets a conflict from decide.
func (r *MemoryRepo) HireExclusively(_ context.Context, gigID, bidID string, decide HireDecider) (model.Gig, model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire on gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}
	bid, ok := r.bids[bidID]
	if !ok || bid.GigID != gigID {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, gigerrors.ErrBidNotFound)
	}

	decision, err := decide(gig, bid)
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s on gig %s: %w", bidID, gigID, err)
	}

	gig.Status = decision.Gig
	bid.Status = decision.Winner
	r.gigs[gigID] = gig
	r.bids[bidID] = bid

	for _, id := range r.gigBids[gigID] {
		if id == bidID {
			continue
		}
		if other := r.bids[id]; other.Status == model.BidPending {
			other.Status = decision.OtherBids
			r.bids[id] = other
		}
	}

	return gig, bid, nil
}

// AddGig seeds a gig directly. This method is intended for tests and demo data.
func (r *MemoryRepo) AddGig(gig model.Gig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gigs[gig.GigID] = gig
}

func sortGigsNewestFirst(gigs []model.Gig) {
	sort.Slice(gigs, func(i, j int) bool {
		return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
	})
}

func sortBidsNewestFirst(bids []model.Bid) {
	sort.Slice(bids, func(i, j int) bool {
		return bids[i].CreatedAt.After(bids[j].CreatedAt)
	})
}
