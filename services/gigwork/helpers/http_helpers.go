package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gigflow/internal/gigerrors"
	model "gigflow/internal/models"
	"gigflow/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key the identity middleware stores the
// acting user under.
const ContextUserKey = "currentUser"

// CurrentUser returns the acting user placed in the context by the
// identity middleware.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, gigerrors.ErrGigNotFound):
		return http.StatusNotFound, "gig not found"
	case errors.Is(err, gigerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, gigerrors.ErrNotGigOwner):
		return http.StatusForbidden, "not authorized for this gig"
	case errors.Is(err, gigerrors.ErrGigNotOpen):
		return http.StatusConflict, "gig is already assigned"
	case errors.Is(err, gigerrors.ErrBidNotPending):
		return http.StatusConflict, "bid is no longer pending"
	case errors.Is(err, gigerrors.ErrDuplicateBid):
		return http.StatusConflict, "bid already submitted for this gig"
	case errors.Is(err, gigerrors.ErrOwnGigBid):
		return http.StatusBadRequest, "cannot bid on your own gig"
	case errors.Is(err, gigerrors.ErrInvalidGig):
		return http.StatusBadRequest, "invalid gig details"
	case errors.Is(err, gigerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, gigerrors.ErrTxRetryable):
		return http.StatusServiceUnavailable, "temporary storage fault, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToGigResponse converts a gig record to its transport shape
func ToGigResponse(g model.Gig) GigResponse {
	return GigResponse{
		GigID:       g.GigID,
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		OwnerID:     g.OwnerID,
		OwnerName:   g.OwnerName,
		Status:      string(g.Status),
		CreatedAt:   g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponse converts a bid record to its transport shape
func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:        b.BidID,
		GigID:        b.GigID,
		FreelancerID: b.FreelancerID,
		Message:      b.Message,
		Price:        b.Price,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToGigResponses converts a slice of gig records
func ToGigResponses(gigs []model.Gig) []GigResponse {
	out := make([]GigResponse, 0, len(gigs))
	for _, g := range gigs {
		out = append(out, ToGigResponse(g))
	}
	return out
}

// ToBidResponses converts a slice of bid records
func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}
