package hiring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gigflow/internal/gigerrors"
	"gigflow/internal/lifecycle"
	"gigflow/internal/models"
	"gigflow/internal/repository"
	"gigflow/utils"
)

// Validation bounds carried over from the marketplace rules.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 2000
	MaxMessageLen     = 1000
)

// HireResult is the committed outcome of a hire. It carries everything the
// caller needs to trigger the winner's notification after commit.
type HireResult struct {
	Gig        models.Gig `json:"gig"`
	Bid        models.Bid `json:"bid"`
	WinnerID   string     `json:"winner_id"`
	GigTitle   string     `json:"gig_title"`
	PosterName string     `json:"poster_name"`
}

// HiringService defines the business logic for the gig marketplace. Hire is
// the transaction coordinator: it fast-fails the existence and ownership
// preconditions, then delegates the openness re-validation and the grouped
// writes to the store's atomic unit of work.
type HiringService struct {
	repo repository.GigDB
}

// NewHiringService creates a new HiringService instance
func NewHiringService(repo repository.GigDB) *HiringService {
	return &HiringService{
		repo: repo,
	}
}

// CreateGig validates and stores a new open gig owned by the acting user
func (s *HiringService) CreateGig(ctx context.Context, title, description string, budget float64, owner models.User) (models.Gig, error) {
	if err := validateGig(title, description, budget, owner); err != nil {
		return models.Gig{}, err
	}

	gig := models.Gig{
		GigID:       utils.GenerateID(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Budget:      budget,
		OwnerID:     owner.UserID,
		OwnerName:   owner.Username,
		Status:      models.GigOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateGig(ctx, gig); err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to create gig for owner %s: %w", owner.UserID, err)
	}

	return gig, nil
}

// GetGig returns a single gig by ID
func (s *HiringService) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	if gigID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - empty gig ID", gigerrors.ErrInvalidGig)
	}

	gig, err := s.repo.GetGig(ctx, gigID)
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}

	return gig, nil
}

// ListGigs returns gigs filtered by status (default open) and an optional
// case-insensitive search over title and description.
func (s *HiringService) ListGigs(ctx context.Context, search, statusStr string) ([]models.Gig, error) {
	status := models.GigOpen
	if statusStr != "" {
		parsed, err := models.ParseGigStatus(statusStr)
		if err != nil {
			return nil, fmt.Errorf("service: %w - %v", gigerrors.ErrInvalidGig, err)
		}
		status = parsed
	}

	gigs, err := s.repo.ListGigs(ctx, strings.TrimSpace(search), status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list gigs: %w", err)
	}

	return gigs, nil
}

// MyGigs returns all gigs posted by a user
func (s *HiringService) MyGigs(ctx context.Context, ownerID string) ([]models.Gig, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", gigerrors.ErrInvalidGig)
	}

	gigs, err := s.repo.GigsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get gigs for owner %s: %w", ownerID, err)
	}

	return gigs, nil
}

// DeleteGig removes the acting user's own gig while it is still open
func (s *HiringService) DeleteGig(ctx context.Context, gigID string, actingUser models.User) error {
	gig, err := s.GetGig(ctx, gigID)
	if err != nil {
		return err
	}
	if gig.OwnerID != actingUser.UserID {
		return fmt.Errorf("service: delete gig %s by user %s: %w", gigID, actingUser.UserID, gigerrors.ErrNotGigOwner)
	}

	if err := s.repo.DeleteOpenGig(ctx, gigID); err != nil {
		return fmt.Errorf("service: failed to delete gig %s: %w", gigID, err)
	}

	return nil
}

// SubmitBid validates and records a freelancer's bid on an open gig. The
// duplicate and openness checks are enforced again inside the store's
// atomic scope, so a bid cannot slip in while a hire is finalizing.
func (s *HiringService) SubmitBid(ctx context.Context, gigID string, freelancer models.User, message string, price float64) (models.Bid, error) {
	if err := validateBid(gigID, freelancer, message, price); err != nil {
		return models.Bid{}, err
	}

	gig, err := s.repo.GetGig(ctx, gigID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to check gig %s: %w", gigID, err)
	}
	if gig.Status != models.GigOpen {
		return models.Bid{}, fmt.Errorf("service: bid on gig %s: %w", gigID, gigerrors.ErrGigNotOpen)
	}
	if gig.OwnerID == freelancer.UserID {
		return models.Bid{}, fmt.Errorf("service: bid on gig %s: %w", gigID, gigerrors.ErrOwnGigBid)
	}

	bid := models.Bid{
		BidID:        utils.GenerateID(),
		GigID:        gigID,
		FreelancerID: freelancer.UserID,
		Message:      strings.TrimSpace(message),
		Price:        price,
		Status:       models.BidPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on gig %s by user %s: %w", gigID, freelancer.UserID, err)
	}

	return bid, nil
}

// MyBids returns all bids a freelancer has placed
func (s *HiringService) MyBids(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	if freelancerID == "" {
		return nil, fmt.Errorf("service: %w - empty freelancer ID", gigerrors.ErrInvalidBid)
	}

	bids, err := s.repo.BidsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for freelancer %s: %w", freelancerID, err)
	}

	return bids, nil
}

// BidsForGig returns all bids on a gig. Only the gig's owner may see them.
func (s *HiringService) BidsForGig(ctx context.Context, gigID, actingUserID string) ([]models.Bid, error) {
	gig, err := s.GetGig(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.OwnerID != actingUserID {
		return nil, fmt.Errorf("service: bids for gig %s by user %s: %w", gigID, actingUserID, gigerrors.ErrNotGigOwner)
	}

	bids, err := s.repo.BidsByGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for gig %s: %w", gigID, err)
	}

	return bids, nil
}

// Hire promotes one bid to hired, closes its gig, and rejects the
// competitors. Preconditions, in order: the bid and its gig exist
// (NotFound), the acting user owns the gig (Forbidden), and the gig is
// still open with the bid still pending (Conflict). The openness checks
// run again inside the store's atomic unit of work. The legality check
// and target state come from lifecycle.DecideHire; the store guarantees
// that of any racing hire calls on one gig exactly one commits.
func (s *HiringService) Hire(ctx context.Context, bidID string, actingUser models.User) (HireResult, error) {
	if bidID == "" {
		return HireResult{}, fmt.Errorf("service: %w - empty bid ID", gigerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return HireResult{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}

	gig, err := s.repo.GetGig(ctx, bid.GigID)
	if err != nil {
		return HireResult{}, fmt.Errorf("service: failed to get gig %s for bid %s: %w", bid.GigID, bidID, err)
	}

	if gig.OwnerID != actingUser.UserID {
		return HireResult{}, fmt.Errorf("service: hire on gig %s by user %s: %w", gig.GigID, actingUser.UserID, gigerrors.ErrNotGigOwner)
	}

	// The pre-reads above may already be stale; HireExclusively re-reads
	// both records inside the atomic scope and re-runs DecideHire there.
	hiredGig, hiredBid, err := s.repo.HireExclusively(ctx, gig.GigID, bidID, lifecycle.DecideHire)
	if err != nil {
		return HireResult{}, fmt.Errorf("service: failed to hire bid %s on gig %s: %w", bidID, gig.GigID, err)
	}

	posterName := actingUser.Username
	if posterName == "" {
		posterName = hiredGig.OwnerName
	}

	return HireResult{
		Gig:        hiredGig,
		Bid:        hiredBid,
		WinnerID:   hiredBid.FreelancerID,
		GigTitle:   hiredGig.Title,
		PosterName: posterName,
	}, nil
}

// validateGig checks input validity for gig creation
func validateGig(title, description string, budget float64, owner models.User) error {
	if owner.UserID == "" {
		return fmt.Errorf("service: %w - missing owner", gigerrors.ErrInvalidGig)
	}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || len(title) > MaxTitleLen {
		return fmt.Errorf("service: %w - title must be 1-%d characters", gigerrors.ErrInvalidGig, MaxTitleLen)
	}
	if description == "" || len(description) > MaxDescriptionLen {
		return fmt.Errorf("service: %w - description must be 1-%d characters", gigerrors.ErrInvalidGig, MaxDescriptionLen)
	}
	if budget <= 0 {
		return fmt.Errorf("service: %w - non-positive budget", gigerrors.ErrInvalidGig)
	}
	return nil
}

// validateBid checks input validity for bid submission
func validateBid(gigID string, freelancer models.User, message string, price float64) error {
	if gigID == "" || freelancer.UserID == "" {
		return fmt.Errorf("service: %w - missing gigID or freelancer", gigerrors.ErrInvalidBid)
	}
	message = strings.TrimSpace(message)
	if message == "" || len(message) > MaxMessageLen {
		return fmt.Errorf("service: %w - message must be 1-%d characters", gigerrors.ErrInvalidBid, MaxMessageLen)
	}
	if price <= 0 {
		return fmt.Errorf("service: %w - non-positive bid price", gigerrors.ErrInvalidBid)
	}
	return nil
}

// IsConflict reports whether err is the routine outcome of losing a hire
// race or acting on a closed gig.
func IsConflict(err error) bool {
	return errors.Is(err, gigerrors.ErrGigNotOpen) || errors.Is(err, gigerrors.ErrBidNotPending)
}
