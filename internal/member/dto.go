package member

import "github.com/changhyeonkim/business-review/go-api-server/internal/model"

// MemberResponse is the public shape of a member. The stored credential is
// never serialized.
type MemberResponse struct {
	ID       uint32           `json:"id"`
	Username string           `json:"username"`
	Reviews  []ReviewResponse `json:"reviews"`
}

type ReviewResponse struct {
	ID         uint32 `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	MemberID   uint32 `json:"member_id"`
	BusinessID uint32 `json:"business_id"`
}

func NewMemberResponse(m *model.Member) *MemberResponse {
	reviews := make([]ReviewResponse, 0, len(m.Reviews))
	for _, r := range m.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:         r.ID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			MemberID:   r.MemberID,
			BusinessID: r.BusinessID,
		})
	}

	return &MemberResponse{
		ID:       m.ID,
		Username: m.Username,
		Reviews:  reviews,
	}
}
