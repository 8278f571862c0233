package business

import (
	"strconv"

	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	businessService *BusinessService
}

func NewBusinessHandler(businessService *BusinessService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
	}
}

// List handles GET /api/businesses
func (h *BusinessHandler) List(c *gin.Context) {
	response, err := h.businessService.List(c.Request.Context())
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

// Get handles GET /api/businesses/:id
func (h *BusinessHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	response, err := h.businessService.Get(c.Request.Context(), uint32(id))
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
