package handler

import (
	"context"
	"fmt"
	"net/http"

	hiring "gigflow/internal/hiringService"
	model "gigflow/internal/models"
	"gigflow/services/gigwork/helpers"
	"gigflow/utils"

	"github.com/gin-gonic/gin"
)

// HiringServiceInterface is the slice of the hiring service the HTTP
// handlers consume; it exists so handler tests can mock the service.
type HiringServiceInterface interface {
	CreateGig(ctx context.Context, title, description string, budget float64, owner model.User) (model.Gig, error)
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListGigs(ctx context.Context, search, status string) ([]model.Gig, error)
	MyGigs(ctx context.Context, ownerID string) ([]model.Gig, error)
	DeleteGig(ctx context.Context, gigID string, actingUser model.User) error
	SubmitBid(ctx context.Context, gigID string, freelancer model.User, message string, price float64) (model.Bid, error)
	MyBids(ctx context.Context, freelancerID string) ([]model.Bid, error)
	BidsForGig(ctx context.Context, gigID, actingUserID string) ([]model.Bid, error)
	Hire(ctx context.Context, bidID string, actingUser model.User) (hiring.HireResult, error)
}

type GigHandler struct {
	service HiringServiceInterface
}

func NewGigHandler(service HiringServiceInterface) *GigHandler {
	return &GigHandler{service: service}
}

// CreateGigHandler handles POST /gigs
func (h *GigHandler) CreateGigHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)

	var req helpers.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGigHandler", err)
		return
	}

	gig, err := h.service.CreateGig(c.Request.Context(), req.Title, req.Description, req.Budget, user)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateGigHandler: failed to create gig", map[string]any{
			"handler":  "CreateGigHandler",
			"owner_id": user.UserID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToGigResponse(gig), "gig created successfully")
	helpers.LogSuccess("CreateGigHandler", "gig created successfully", map[string]any{
		"gig_id":   gig.GigID,
		"owner_id": gig.OwnerID,
		"budget":   gig.Budget,
	})
}

// ListGigsHandler handles GET /gigs
func (h *GigHandler) ListGigsHandler(c *gin.Context) {
	search := c.Query("search")
	status := c.Query("status")

	gigs, err := h.service.ListGigs(c.Request.Context(), search, status)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListGigsHandler: error listing gigs", map[string]any{"search": search, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponses(gigs), "gigs retrieved successfully")
	helpers.LogSuccess("ListGigsHandler", "gigs retrieved successfully", map[string]any{
		"search": search,
		"count":  len(gigs),
	})
}

// GetGigHandler handles GET /gigs/:gig_id
func (h *GigHandler) GetGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")

	gig, err := h.service.GetGig(c.Request.Context(), gigID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetGigHandler: error retrieving gig", map[string]any{"gig_id": gigID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponse(gig), "gig retrieved successfully")
}

// MyGigsHandler handles GET /gigs/my-gigs
func (h *GigHandler) MyGigsHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)

	gigs, err := h.service.MyGigs(c.Request.Context(), user.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyGigsHandler: error retrieving gigs", map[string]any{"owner_id": user.UserID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponses(gigs), "gigs retrieved successfully")
	helpers.LogSuccess("MyGigsHandler", "gigs retrieved successfully", map[string]any{
		"owner_id": user.UserID,
		"count":    len(gigs),
	})
}

// DeleteGigHandler handles DELETE /gigs/:gig_id
func (h *GigHandler) DeleteGigHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	gigID := c.Param("gig_id")

	if err := h.service.DeleteGig(c.Request.Context(), gigID, user); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteGigHandler: failed to delete gig", map[string]any{
			"gig_id":  gigID,
			"user_id": user.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"gig_id": gigID}, "gig removed")
	helpers.LogSuccess("DeleteGigHandler", "gig removed", map[string]any{
		"gig_id":  gigID,
		"user_id": user.UserID,
	})
}
