package review

import (
	"strconv"

	sharedContext "github.com/changhyeonkim/business-review/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *ReviewService
}

func NewReviewHandler(reviewService *ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create handles POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CreateReviewRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.reviewService.Create(c.Request.Context(), memberID, &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(201, response)
}

// Update handles PUT /api/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	var request UpdateReviewRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.reviewService.Update(c.Request.Context(), memberID, uint32(id), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
