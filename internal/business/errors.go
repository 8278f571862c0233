package business

import (
	"net/http"

	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
)

const (
	businessNotFound = "BUSINESS_NOT_FOUND" // errInfo
)

var (
	ErrBusinessNotFound = sharedError.NewDomainError(businessNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(businessNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BUSINESS-001",
		Message: "Business not found.",
	})
}
