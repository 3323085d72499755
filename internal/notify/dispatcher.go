package notify

import (
	"fmt"

	"gigflow/utils"
)

// Dispatcher delivers hire events to the winner's registered channel.
// It is invoked by the caller only after the hire transaction committed,
// keeping the commit and the notification as two independent phases.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a Dispatcher on an existing registry
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// NotifyHire pushes a hire event to the winner's channel. If the winner
// has no registered channel, or the channel's buffer is full, the event is
// dropped with a log line. The send never blocks.
func (d *Dispatcher) NotifyHire(winnerID, gigTitle, posterName string) {
	event := Event{
		Message:    fmt.Sprintf("You have been hired for %q by %s!", gigTitle, posterName),
		GigTitle:   gigTitle,
		PosterName: posterName,
	}

	found, delivered := d.registry.Push(winnerID, event)
	switch {
	case !found:
		utils.Info("notify: winner offline, hire event dropped", map[string]any{
			"winner_id": winnerID,
			"gig_title": gigTitle,
		})
	case !delivered:
		utils.Warn("notify: channel full, hire event dropped", map[string]any{
			"winner_id": winnerID,
			"gig_title": gigTitle,
		})
	default:
		utils.Info("notify: hire event delivered", map[string]any{
			"winner_id": winnerID,
			"gig_title": gigTitle,
		})
	}
}
