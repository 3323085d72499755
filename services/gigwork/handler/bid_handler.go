package handler

import (
	"fmt"
	"net/http"

	"gigflow/services/gigwork/helpers"
	"gigflow/utils"

	"github.com/gin-gonic/gin"
)

// HireNotifier is the post-commit notification phase of hiring. It must
// never fail the hire: implementations deliver best-effort and log drops.
type HireNotifier interface {
	NotifyHire(winnerID, gigTitle, posterName string)
}

// BidHandler serves bid submission, bid queries, and the hire operation.
// Hiring runs as two explicit phases: the transaction commits through the
// service, and only then does the handler fire the winner notification.
type BidHandler struct {
	service    HiringServiceInterface
	dispatcher HireNotifier
}

func NewBidHandler(service HiringServiceInterface, dispatcher HireNotifier) *BidHandler {
	return &BidHandler{service: service, dispatcher: dispatcher}
}

// SubmitBidHandler handles POST /bids
func (h *BidHandler) SubmitBidHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)

	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(c.Request.Context(), req.GigID, user, req.Message, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: failed to record bid", map[string]any{
			"handler": "SubmitBidHandler",
			"gig_id":  req.GigID,
			"user_id": user.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"bid_id":  bid.BidID,
		"gig_id":  bid.GigID,
		"user_id": user.UserID,
		"price":   bid.Price,
	})
}

// MyBidsHandler handles GET /bids/my-bids
func (h *BidHandler) MyBidsHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)

	bids, err := h.service.MyBids(c.Request.Context(), user.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyBidsHandler: error retrieving bids", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
}

// BidsForGigHandler handles GET /gigs/:gig_id/bids
func (h *BidHandler) BidsForGigHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	gigID := c.Param("gig_id")

	bids, err := h.service.BidsForGig(c.Request.Context(), gigID, user.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidsForGigHandler: error retrieving bids", map[string]any{
			"gig_id":  gigID,
			"user_id": user.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("BidsForGigHandler", "bids retrieved successfully", map[string]any{
		"gig_id": gigID,
		"count":  len(bids),
	})
}

// HireHandler handles PATCH /bids/:bid_id/hire
func (h *BidHandler) HireHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	bidID := c.Param("bid_id")

	result, err := h.service.Hire(c.Request.Context(), bidID, user)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("HireHandler: hire failed", map[string]any{
			"bid_id":  bidID,
			"user_id": user.UserID,
			"error":   err.Error(),
		})
		return
	}

	// Phase two, post-commit: best-effort winner notification. A failed
	// or dropped delivery never fails the hire response.
	h.dispatcher.NotifyHire(result.WinnerID, result.GigTitle, result.PosterName)

	resp := helpers.HireResponse{
		Gig:        helpers.ToGigResponse(result.Gig),
		Bid:        helpers.ToBidResponse(result.Bid),
		WinnerID:   result.WinnerID,
		GigTitle:   result.GigTitle,
		PosterName: result.PosterName,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "freelancer hired successfully")
	helpers.LogSuccess("HireHandler", "freelancer hired successfully", map[string]any{
		"bid_id":    result.Bid.BidID,
		"gig_id":    result.Gig.GigID,
		"winner_id": result.WinnerID,
	})
}
