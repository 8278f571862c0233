package auth

import "github.com/changhyeonkim/business-review/go-api-server/internal/member"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Password string `json:"password" binding:"required,min=6,max=30"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token and the authenticated member.
type AuthResponse struct {
	Token  string                 `json:"token"`
	Member *member.MemberResponse `json:"member"`
}
