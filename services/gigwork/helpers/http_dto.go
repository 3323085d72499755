package helpers

// Request/Response DTOs
type CreateGigRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required,max=2000"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

type SubmitBidRequest struct {
	GigID   string  `json:"gig_id" binding:"required"`
	Message string  `json:"message" binding:"required,max=1000"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

type GigResponse struct {
	GigID       string  `json:"gig_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	OwnerID     string  `json:"owner_id"`
	OwnerName   string  `json:"owner_name"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	GigID        string  `json:"gig_id"`
	FreelancerID string  `json:"freelancer_id"`
	Message      string  `json:"message"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// HireResponse carries the committed outcome plus the winner identity and
// display names the caller needs to trigger the notification.
type HireResponse struct {
	Gig        GigResponse `json:"gig"`
	Bid        BidResponse `json:"bid"`
	WinnerID   string      `json:"winner_id"`
	GigTitle   string      `json:"gig_title"`
	PosterName string      `json:"poster_name"`
}
