package server

import (
	hiring "gigflow/internal/hiringService"
	"gigflow/internal/notify"
	handler "gigflow/services/gigwork/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(hiringService *hiring.HiringService, registry *notify.Registry, dispatcher *notify.Dispatcher, notifyBuffer int) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware)      // adopt identity from the auth layer's headers

	gigHandler := handler.NewGigHandler(hiringService)
	bidHandler := handler.NewBidHandler(hiringService, dispatcher)
	eventsHandler := handler.NewEventsHandler(registry, notifyBuffer)

	gigs := router.Group("/gigs")
	{
		gigs.GET("", gigHandler.ListGigsHandler)
		gigs.POST("", RequireIdentity, gigHandler.CreateGigHandler)
		gigs.GET("/my-gigs", RequireIdentity, gigHandler.MyGigsHandler)
		gigs.GET("/:gig_id", gigHandler.GetGigHandler)
		gigs.DELETE("/:gig_id", RequireIdentity, gigHandler.DeleteGigHandler)
		gigs.GET("/:gig_id/bids", RequireIdentity, bidHandler.BidsForGigHandler)
	}

	bids := router.Group("/bids", RequireIdentity)
	{
		bids.POST("", bidHandler.SubmitBidHandler)
		bids.GET("/my-bids", bidHandler.MyBidsHandler)
		bids.PATCH("/:bid_id/hire", bidHandler.HireHandler)
	}

	router.GET("/events", RequireIdentity, eventsHandler.StreamHandler)

	return router
}
