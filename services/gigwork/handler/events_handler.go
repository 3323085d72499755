package handler

import (
	"io"

	"gigflow/internal/notify"
	"gigflow/services/gigwork/helpers"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams hire notifications to the connected user over SSE.
// It is the caller layer for the connection registry: register on connect,
// unregister on disconnect.
type EventsHandler struct {
	registry *notify.Registry
	buffer   int
}

func NewEventsHandler(registry *notify.Registry, buffer int) *EventsHandler {
	if buffer <= 0 {
		buffer = 8
	}
	return &EventsHandler{registry: registry, buffer: buffer}
}

// StreamHandler handles GET /events
func (h *EventsHandler) StreamHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)

	ch := make(notify.Channel, h.buffer)
	h.registry.Register(user.UserID, ch)
	defer h.registry.Unregister(ch)

	helpers.LogSuccess("StreamHandler", "client connected", map[string]any{
		"user_id": user.UserID,
	})

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-ch:
			if !ok {
				// channel was replaced by a reconnect; this stream is superseded
				return false
			}
			c.SSEvent("hire", event)
			return true
		}
	})
}
