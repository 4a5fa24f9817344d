package dto

import (
	"time"

	"github.com/voyago/tourism-service/internal/domain"
)

// ReviewRequest payload for posting or editing a review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse is the public shape of a review.
type ReviewResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	TouristID  string    `json:"tourist_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewReviewResponse maps the domain model.
func NewReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		TouristID:  r.TouristID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// NewReviewListResponse maps a page of reviews.
func NewReviewListResponse(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
