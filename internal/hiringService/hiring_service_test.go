package hiring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gigflow/internal/gigerrors"
	model "gigflow/internal/models"
	"gigflow/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests CreateGig
func TestHiringService_CreateGig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockGigDB(ctrl)
	service := NewHiringService(mockRepo)
	ctx := context.Background()

	owner := model.User{UserID: "poster1", Username: "Ada"}

	tests := []struct {
		name          string
		title         string
		description   string
		budget        float64
		owner         model.User
		mockSetup     func()
		expectedError error
	}{
		{
			name:        "valid_gig",
			title:       "Landing page",
			description: "Redesign the landing page",
			budget:      500,
			owner:       owner,
			mockSetup: func() {
				mockRepo.EXPECT().CreateGig(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:          "missing_owner",
			title:         "Landing page",
			description:   "Redesign the landing page",
			budget:        500,
			owner:         model.User{},
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidGig,
		},
		{
			name:          "empty_title",
			title:         "   ",
			description:   "Redesign the landing page",
			budget:        500,
			owner:         owner,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidGig,
		},
		{
			name:          "title_too_long",
			title:         strings.Repeat("x", MaxTitleLen+1),
			description:   "Redesign the landing page",
			budget:        500,
			owner:         owner,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidGig,
		},
		{
			name:          "description_too_long",
			title:         "Landing page",
			description:   strings.Repeat("x", MaxDescriptionLen+1),
			budget:        500,
			owner:         owner,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidGig,
		},
		{
			name:          "zero_budget",
			title:         "Landing page",
			description:   "Redesign the landing page",
			budget:        0,
			owner:         owner,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidGig,
		},
		{
			name:          "negative_budget",
			title:         "Landing page",
			description:   "Redesign the landing page",
			budget:        -100,
			owner:         owner,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidGig,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			gig, err := service.CreateGig(ctx, tc.title, tc.description, tc.budget, tc.owner)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, gig.GigID)
			require.Equal(t, model.GigOpen, gig.Status)
			require.Equal(t, tc.owner.UserID, gig.OwnerID)
		})
	}
}

// Tests SubmitBid
func TestHiringService_SubmitBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockGigDB(ctrl)
	service := NewHiringService(mockRepo)
	ctx := context.Background()

	freelancer := model.User{UserID: "f1", Username: "Lin"}
	openGig := model.Gig{GigID: "gig1", OwnerID: "poster1", Status: model.GigOpen}

	tests := []struct {
		name          string
		gigID         string
		freelancer    model.User
		message       string
		price         float64
		mockSetup     func()
		expectedError error
	}{
		{
			name:       "valid_bid",
			gigID:      "gig1",
			freelancer: freelancer,
			message:    "I can do this",
			price:      100,
			mockSetup: func() {
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(openGig, nil)
				mockRepo.EXPECT().CreateBid(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_gigID",
			gigID:         "",
			freelancer:    freelancer,
			message:       "I can do this",
			price:         100,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidBid,
		},
		{
			name:          "empty_freelancer",
			gigID:         "gig1",
			freelancer:    model.User{},
			message:       "I can do this",
			price:         100,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidBid,
		},
		{
			name:          "empty_message",
			gigID:         "gig1",
			freelancer:    freelancer,
			message:       "  ",
			price:         100,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidBid,
		},
		{
			name:          "message_too_long",
			gigID:         "gig1",
			freelancer:    freelancer,
			message:       strings.Repeat("x", MaxMessageLen+1),
			price:         100,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidBid,
		},
		{
			name:          "non_positive_price",
			gigID:         "gig1",
			freelancer:    freelancer,
			message:       "I can do this",
			price:         0,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidBid,
		},
		{
			name:       "gig_not_found",
			gigID:      "gigX",
			freelancer: freelancer,
			message:    "I can do this",
			price:      100,
			mockSetup: func() {
				mockRepo.EXPECT().GetGig(ctx, "gigX").Return(model.Gig{}, gigerrors.ErrGigNotFound)
			},
			expectedError: gigerrors.ErrGigNotFound,
		},
		{
			name:       "gig_not_open",
			gigID:      "gig1",
			freelancer: freelancer,
			message:    "I can do this",
			price:      100,
			mockSetup: func() {
				assigned := openGig
				assigned.Status = model.GigAssigned
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(assigned, nil)
			},
			expectedError: gigerrors.ErrGigNotOpen,
		},
		{
			name:       "owner_bids_own_gig",
			gigID:      "gig1",
			freelancer: model.User{UserID: "poster1", Username: "Ada"},
			message:    "I can do this",
			price:      100,
			mockSetup: func() {
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(openGig, nil)
			},
			expectedError: gigerrors.ErrOwnGigBid,
		},
		{
			name:       "duplicate_bid_from_store",
			gigID:      "gig1",
			freelancer: freelancer,
			message:    "I can do this",
			price:      100,
			mockSetup: func() {
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(openGig, nil)
				mockRepo.EXPECT().CreateBid(ctx, gomock.Any()).Return(gigerrors.ErrDuplicateBid)
			},
			expectedError: gigerrors.ErrDuplicateBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.SubmitBid(ctx, tc.gigID, tc.freelancer, tc.message, tc.price)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, bid.BidID)
			require.Equal(t, model.BidPending, bid.Status)
			require.Equal(t, tc.freelancer.UserID, bid.FreelancerID)
		})
	}
}

// Tests Hire precondition ordering and outcomes
func TestHiringService_Hire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockGigDB(ctrl)
	service := NewHiringService(mockRepo)
	ctx := context.Background()

	owner := model.User{UserID: "poster1", Username: "Ada"}
	stranger := model.User{UserID: "intruder", Username: "Mallory"}
	gig := model.Gig{GigID: "gig1", Title: "Landing page", OwnerID: "poster1", OwnerName: "Ada", Status: model.GigOpen}
	bid := model.Bid{BidID: "bid1", GigID: "gig1", FreelancerID: "f1", Status: model.BidPending}

	tests := []struct {
		name          string
		bidID         string
		actingUser    model.User
		mockSetup     func()
		expectedError error
	}{
		{
			name:          "empty_bidID",
			bidID:         "",
			actingUser:    owner,
			mockSetup:     func() {},
			expectedError: gigerrors.ErrInvalidBid,
		},
		{
			name:       "bid_not_found",
			bidID:      "bidX",
			actingUser: owner,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(ctx, "bidX").Return(model.Bid{}, gigerrors.ErrBidNotFound)
			},
			expectedError: gigerrors.ErrBidNotFound,
		},
		{
			name:       "gig_not_found",
			bidID:      "bid1",
			actingUser: owner,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(ctx, "bid1").Return(bid, nil)
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(model.Gig{}, gigerrors.ErrGigNotFound)
			},
			expectedError: gigerrors.ErrGigNotFound,
		},
		{
			// Forbidden fails fast: the atomic unit is never opened
			name:       "not_gig_owner",
			bidID:      "bid1",
			actingUser: stranger,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(ctx, "bid1").Return(bid, nil)
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(gig, nil)
			},
			expectedError: gigerrors.ErrNotGigOwner,
		},
		{
			// the routine race-loss outcome surfaces from the atomic unit
			name:       "conflict_from_atomic_unit",
			bidID:      "bid1",
			actingUser: owner,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(ctx, "bid1").Return(bid, nil)
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(gig, nil)
				mockRepo.EXPECT().HireExclusively(ctx, "gig1", "bid1", gomock.Any()).
					Return(model.Gig{}, model.Bid{}, fmt.Errorf("hire bid bid1 on gig gig1: %w", gigerrors.ErrGigNotOpen))
			},
			expectedError: gigerrors.ErrGigNotOpen,
		},
		{
			name:       "storage_fault_is_retryable",
			bidID:      "bid1",
			actingUser: owner,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid(ctx, "bid1").Return(bid, nil)
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(gig, nil)
				mockRepo.EXPECT().HireExclusively(ctx, "gig1", "bid1", gomock.Any()).
					Return(model.Gig{}, model.Bid{}, fmt.Errorf("hire tx on gig gig1: %w: %v", gigerrors.ErrTxRetryable, errors.New("connection reset")))
			},
			expectedError: gigerrors.ErrTxRetryable,
		},
		{
			name:       "successful_hire",
			bidID:      "bid1",
			actingUser: owner,
			mockSetup: func() {
				hiredGig := gig
				hiredGig.Status = model.GigAssigned
				hiredBid := bid
				hiredBid.Status = model.BidHired
				mockRepo.EXPECT().GetBid(ctx, "bid1").Return(bid, nil)
				mockRepo.EXPECT().GetGig(ctx, "gig1").Return(gig, nil)
				mockRepo.EXPECT().HireExclusively(ctx, "gig1", "bid1", gomock.Any()).
					Return(hiredGig, hiredBid, nil)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			result, err := service.Hire(ctx, tc.bidID, tc.actingUser)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, model.GigAssigned, result.Gig.Status)
			require.Equal(t, model.BidHired, result.Bid.Status)
			require.Equal(t, "f1", result.WinnerID)
			require.Equal(t, "Landing page", result.GigTitle)
			require.Equal(t, "Ada", result.PosterName)
		})
	}
}

// Concrete race scenario: gig G with pending bids B1 and B2, hire fired
// concurrently for both. Exactly one commits; the other gets a conflict;
// G ends assigned with exactly one hired bid and the loser rejected.
func TestHiringService_Hire_RaceSingleWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	gig, err := service.CreateGig(ctx, "Gig G", "Concrete race scenario", 500, owner)
	require.NoError(t, err)

	b1, err := service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F1"}, "pick me", 200)
	require.NoError(t, err)
	b2, err := service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F2"}, "no, me", 180)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, bidID := range []string{b1.BidID, b2.BidID} {
		wg.Add(1)
		go func(i int, bidID string) {
			defer wg.Done()
			_, errs[i] = service.Hire(ctx, bidID, owner)
		}(i, bidID)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			require.True(t, IsConflict(err), "loser must observe a conflict, got: %v", err)
		}
	}
	require.Equal(t, 1, successes)

	got, err := service.GetGig(ctx, gig.GigID)
	require.NoError(t, err)
	require.Equal(t, model.GigAssigned, got.Status)

	bids, err := service.BidsForGig(ctx, gig.GigID, owner.UserID)
	require.NoError(t, err)
	require.Len(t, bids, 2)

	hired, rejected := 0, 0
	for _, b := range bids {
		switch b.Status {
		case model.BidHired:
			hired++
		case model.BidRejected:
			rejected++
		}
	}
	require.Equal(t, 1, hired)
	require.Equal(t, 1, rejected)
}

// No double hire: the second call on an already-hired bid always conflicts
func TestHiringService_Hire_NoDoubleHire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	gig, err := service.CreateGig(ctx, "Gig G", "Double hire check", 500, owner)
	require.NoError(t, err)
	bid, err := service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F1"}, "pick me", 200)
	require.NoError(t, err)

	_, err = service.Hire(ctx, bid.BidID, owner)
	require.NoError(t, err)

	_, err = service.Hire(ctx, bid.BidID, owner)
	require.True(t, IsConflict(err))
}

// Ownership enforcement holds regardless of gig or bid state
func TestHiringService_Hire_ForbiddenForNonOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	stranger := model.User{UserID: "intruder", Username: "Mallory"}

	gig, err := service.CreateGig(ctx, "Gig G", "Ownership check", 500, owner)
	require.NoError(t, err)
	bid, err := service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F1"}, "pick me", 200)
	require.NoError(t, err)

	_, err = service.Hire(ctx, bid.BidID, stranger)
	require.ErrorIs(t, err, gigerrors.ErrNotGigOwner)

	// still forbidden after the gig is assigned
	_, err = service.Hire(ctx, bid.BidID, owner)
	require.NoError(t, err)
	_, err = service.Hire(ctx, bid.BidID, stranger)
	require.ErrorIs(t, err, gigerrors.ErrNotGigOwner)
}

// Duplicate bid rejection through the full service path
func TestHiringService_SubmitBid_Duplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	gig, err := service.CreateGig(ctx, "Gig G", "Duplicate bid check", 500, owner)
	require.NoError(t, err)

	freelancer := model.User{UserID: "F1", Username: "Lin"}
	_, err = service.SubmitBid(ctx, gig.GigID, freelancer, "first", 200)
	require.NoError(t, err)
	_, err = service.SubmitBid(ctx, gig.GigID, freelancer, "second", 150)
	require.ErrorIs(t, err, gigerrors.ErrDuplicateBid)
}

// A bid cannot slip in once the gig is assigned
func TestHiringService_SubmitBid_AfterHireRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	gig, err := service.CreateGig(ctx, "Gig G", "Late bid check", 500, owner)
	require.NoError(t, err)
	bid, err := service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F1"}, "pick me", 200)
	require.NoError(t, err)

	_, err = service.Hire(ctx, bid.BidID, owner)
	require.NoError(t, err)

	_, err = service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F2"}, "too late", 100)
	require.ErrorIs(t, err, gigerrors.ErrGigNotOpen)
}

// Tests DeleteGig ownership and openness rules
func TestHiringService_DeleteGig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	stranger := model.User{UserID: "intruder", Username: "Mallory"}

	gig, err := service.CreateGig(ctx, "Gig G", "Delete rules", 500, owner)
	require.NoError(t, err)

	require.ErrorIs(t, service.DeleteGig(ctx, gig.GigID, stranger), gigerrors.ErrNotGigOwner)
	require.ErrorIs(t, service.DeleteGig(ctx, "gigX", owner), gigerrors.ErrGigNotFound)

	bid, err := service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F1"}, "pick me", 200)
	require.NoError(t, err)
	_, err = service.Hire(ctx, bid.BidID, owner)
	require.NoError(t, err)

	// assigned gigs keep their hire record
	require.ErrorIs(t, service.DeleteGig(ctx, gig.GigID, owner), gigerrors.ErrGigNotOpen)
}

// Tests BidsForGig owner-only visibility
func TestHiringService_BidsForGig_OwnerOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	gig, err := service.CreateGig(ctx, "Gig G", "Visibility rules", 500, owner)
	require.NoError(t, err)
	_, err = service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F1"}, "pick me", 200)
	require.NoError(t, err)

	_, err = service.BidsForGig(ctx, gig.GigID, "F1")
	require.ErrorIs(t, err, gigerrors.ErrNotGigOwner)

	bids, err := service.BidsForGig(ctx, gig.GigID, owner.UserID)
	require.NoError(t, err)
	require.Len(t, bids, 1)
}

// Hire must not take unbounded time under contention
func TestHiringService_Hire_CompletesPromptly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	service := NewHiringService(repo)

	owner := model.User{UserID: "poster1", Username: "Ada"}
	gig, err := service.CreateGig(ctx, "Gig G", "Latency sanity", 500, owner)
	require.NoError(t, err)
	bid, err := service.SubmitBid(ctx, gig.GigID, model.User{UserID: "F1"}, "pick me", 200)
	require.NoError(t, err)

	start := time.Now()
	_, err = service.Hire(ctx, bid.BidID, owner)
	require.NoError(t, err)
	require.Less(t, time.Since(start), time.Second)
}
