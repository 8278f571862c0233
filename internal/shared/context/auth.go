package context

import (
	"net/http"
	"strconv"

	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/logger"

	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for storing member authentication information
const (
	MemberIDKey       = "member_id"
	MemberUsernameKey = "member_username"
)

func GetMemberID(c *gin.Context) (uint32, bool) {
	memberID, exists := c.Get(MemberIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := memberID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// RequireMemberID retrieves the authenticated member's ID from the Gin context.
// If the member ID is not found, automatically sends an authentication error response.
// Returns the member ID and true if found, 0 and false if not found (error already sent).
// Use this in handlers behind the JWT middleware to reduce boilerplate.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "Please log in.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] member ID missing from context")
		return 0, false
	}
	return memberID, true
}
