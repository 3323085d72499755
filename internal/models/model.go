package models

import (
	"fmt"
	"time"
)

// GigStatus is the lifecycle state of a Gig.
type GigStatus string

const (
	GigOpen     GigStatus = "open"
	GigAssigned GigStatus = "assigned"
)

// BidStatus is the lifecycle state of a Bid.
type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidHired    BidStatus = "hired"
	BidRejected BidStatus = "rejected"
)

// ParseGigStatus converts a raw string to a GigStatus, returning an error for unknown values.
func ParseGigStatus(s string) (GigStatus, error) {
	st := GigStatus(s)
	switch st {
	case GigOpen, GigAssigned:
		return st, nil
	}
	return "", fmt.Errorf("unknown gig status %q", s)
}

// ParseBidStatus converts a raw string to a BidStatus, returning an error for unknown values.
func ParseBidStatus(s string) (BidStatus, error) {
	st := BidStatus(s)
	switch st {
	case BidPending, BidHired, BidRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown bid status %q", s)
}

// User identifies an actor in the marketplace. Identity is established by
// the external auth layer; this service only carries it.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Gig represents a posted unit of work, owned by one poster
type Gig struct {
	GigID       string    `json:"gig_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Status      GigStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid represents a freelancer's proposal on a gig. At most one bid per
// (gig, freelancer) pair, and at most one bid per gig may ever reach hired.
type Bid struct {
	BidID        string    `json:"bid_id"`
	GigID        string    `json:"gig_id"`
	FreelancerID string    `json:"freelancer_id"`
	Message      string    `json:"message"`
	Price        float64   `json:"price"`
	Status       BidStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
