package auth

import (
	"net/http"

	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
)

const (
	incorrectUsernamePassword = "INCORRECT_USERNAME_PASSWORD" // errInfo
)

var (
	ErrIncorrectUsernamePassword = sharedError.NewDomainError(incorrectUsernamePassword)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectUsernamePassword, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-003",
		Message: "Login failed: incorrect username or password.",
	})
}
