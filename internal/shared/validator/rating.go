package validator

import (
	"github.com/go-playground/validator/v10"
)

// Review rating bounds, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// ValidateRating validates a review rating is an integer in [1,5].
// This is a common validator used across multiple domains.
func ValidateRating(fl validator.FieldLevel) bool {
	rating := fl.Field().Int()
	return rating >= RatingMin && rating <= RatingMax
}
