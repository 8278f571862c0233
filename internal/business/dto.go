package business

import "github.com/changhyeonkim/business-review/go-api-server/internal/model"

type BusinessResponse struct {
	ID          uint32           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	City        string           `json:"city"`
	Reviews     []ReviewResponse `json:"reviews"`
}

type ReviewResponse struct {
	ID         uint32 `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	MemberID   uint32 `json:"member_id"`
	BusinessID uint32 `json:"business_id"`
}

func NewBusinessResponse(b *model.Business) *BusinessResponse {
	reviews := make([]ReviewResponse, 0, len(b.Reviews))
	for _, r := range b.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:         r.ID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			MemberID:   r.MemberID,
			BusinessID: r.BusinessID,
		})
	}

	return &BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		City:        b.City,
		Reviews:     reviews,
	}
}
