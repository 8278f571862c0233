package review

import "github.com/changhyeonkim/business-review/go-api-server/internal/model"

type CreateReviewRequest struct {
	Rating     int    `json:"rating" binding:"required,rating"`
	Comment    string `json:"comment" binding:"max=2000"`
	BusinessID uint32 `json:"business_id" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,rating"`
	Comment string `json:"comment" binding:"max=2000"`

	// Sent by the review form; only rating and comment are mutable.
	BusinessID uint32 `json:"business_id"`
}

type ReviewResponse struct {
	ID         uint32 `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	MemberID   uint32 `json:"member_id"`
	BusinessID uint32 `json:"business_id"`
}

func NewReviewResponse(r *model.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		MemberID:   r.MemberID,
		BusinessID: r.BusinessID,
	}
}
