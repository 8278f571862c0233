package testutil

import (
	"testing"

	"github.com/changhyeonkim/business-review/go-api-server/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestMember inserts a member with a bcrypt-hashed password and
// returns it.
func CreateTestMember(t *testing.T, db *gorm.DB, username, password string) *model.Member {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	member := model.NewMember(username, string(hashed))
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}
	return member
}

// CreateTestBusiness inserts a business and returns it.
func CreateTestBusiness(t *testing.T, db *gorm.DB, name, description, city string) *model.Business {
	t.Helper()

	business := model.NewBusiness(name, description, city)
	if err := db.Create(business).Error; err != nil {
		t.Fatalf("Failed to create test business: %v", err)
	}
	return business
}

// CreateTestReview inserts a review row directly.
func CreateTestReview(t *testing.T, db *gorm.DB, memberID, businessID uint32, rating int, comment string) *model.Review {
	t.Helper()

	review := model.NewReview(memberID, businessID, rating, comment)
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}
	return review
}
