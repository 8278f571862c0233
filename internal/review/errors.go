package review

import (
	"net/http"

	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
)

const (
	reviewAlreadyExists = "REVIEW_ALREADY_EXISTS" // errInfo
	reviewNotFound      = "REVIEW_NOT_FOUND"      // errInfo
	reviewNotOwned      = "REVIEW_NOT_OWNED"      // errInfo
)

var (
	ErrReviewAlreadyExists = sharedError.NewDomainError(reviewAlreadyExists)
	ErrReviewNotFound      = sharedError.NewDomainError(reviewNotFound)
	ErrReviewNotOwned      = sharedError.NewDomainError(reviewNotOwned)
)

func init() {
	sharedError.RegisterDomainErrorResponse(reviewAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "REVIEW-001",
		Message: "You have already reviewed this business.",
	})

	sharedError.RegisterDomainErrorResponse(reviewNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "REVIEW-002",
		Message: "Review not found.",
	})

	sharedError.RegisterDomainErrorResponse(reviewNotOwned, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "REVIEW-003",
		Message: "You can only edit your own reviews.",
	})
}
