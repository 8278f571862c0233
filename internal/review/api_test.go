package review_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/business-review/go-api-server/internal/business"
	"github.com/changhyeonkim/business-review/go-api-server/internal/model"
	"github.com/changhyeonkim/business-review/go-api-server/internal/review"
	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*review.ReviewHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	reviewRepo := review.NewReviewRepository()
	businessRepo := business.NewBusinessRepository()
	reviewService := review.NewReviewService(db, reviewRepo, businessRepo)
	reviewHandler := review.NewReviewHandler(reviewService)

	return reviewHandler, db
}

func countReviews(t *testing.T, db *gorm.DB, memberID, businessID uint32) int64 {
	t.Helper()

	var count int64
	err := db.Model(&model.Review{}).
		Where("member_id = ? AND business_id = ?", memberID, businessID).
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestCreateReview_Success(t *testing.T) {
	// Given: moe has not reviewed Apple yet
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")

	router := testutil.SetupTestRouter()
	router.POST("/api/reviews", testutil.AuthMember(moe.ID), reviewHandler.Create)

	// When: moe submits rating=5, comment="great" for Apple
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/reviews",
		Body: review.CreateReviewRequest{
			Rating:     5,
			Comment:    "great",
			BusinessID: apple.ID,
		},
	})

	// Then: Exactly one review links moe and Apple with rating 5
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response review.ReviewResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.NotZero(t, response.ID)
	assert.Equal(t, 5, response.Rating)
	assert.Equal(t, "great", response.Comment)
	assert.Equal(t, moe.ID, response.MemberID)
	assert.Equal(t, apple.ID, response.BusinessID)
	assert.Equal(t, int64(1), countReviews(t, db, moe.ID, apple.ID))
}

func TestCreateReview_DuplicateConflict(t *testing.T) {
	// Given: moe already reviewed Apple
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")
	testutil.CreateTestReview(t, db, moe.ID, apple.ID, 5, "great")

	router := testutil.SetupTestRouter()
	router.POST("/api/reviews", testutil.AuthMember(moe.ID), reviewHandler.Create)

	// When: moe submits a second create for the same business
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/reviews",
		Body: review.CreateReviewRequest{
			Rating:     3,
			Comment:    "changed my mind",
			BusinessID: apple.ID,
		},
	})

	// Then: The unique constraint rejects it as a conflict, one row remains
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "REVIEW-001", errorResponse.Code)
	assert.Equal(t, int64(1), countReviews(t, db, moe.ID, apple.ID))
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	// Given: A valid member and business
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")

	router := testutil.SetupTestRouter()
	router.POST("/api/reviews", testutil.AuthMember(moe.ID), reviewHandler.Create)

	for _, rating := range []int{-1, 0, 6, 100} {
		t.Run(fmt.Sprintf("rating=%d", rating), func(t *testing.T) {
			// When: Submitting a rating outside [1,5]
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/reviews",
				Body: map[string]interface{}{
					"rating":      rating,
					"comment":     "bad rating",
					"business_id": apple.ID,
				},
			})

			// Then: Validation fails, nothing is stored
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, int64(0), countReviews(t, db, moe.ID, apple.ID))
		})
	}
}

func TestCreateReview_UnknownBusiness(t *testing.T) {
	// Given: moe exists but the business does not
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")

	router := testutil.SetupTestRouter()
	router.POST("/api/reviews", testutil.AuthMember(moe.ID), reviewHandler.Create)

	// When: Submitting a review for a missing business
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/reviews",
		Body: review.CreateReviewRequest{
			Rating:     4,
			Comment:    "ghost business",
			BusinessID: 999,
		},
	})

	// Then: 404 with the business error code
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "BUSINESS-001", errorResponse.Code)
}

func TestCreateReview_Unauthenticated(t *testing.T) {
	// Given: The create route behind the real JWT middleware
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")

	cfg := testutil.NewTestConfig()
	router := testutil.SetupTestRouter()
	router.POST("/api/reviews", middleware.JWT(cfg), reviewHandler.Create)

	// When: Submitting without a token
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/reviews",
		Body: review.CreateReviewRequest{
			Rating:     5,
			Comment:    "great",
			BusinessID: apple.ID,
		},
	})

	// Then: 401 and no store mutation
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, int64(0), countReviews(t, db, moe.ID, apple.ID))
}

func TestUpdateReview_Resubmit(t *testing.T) {
	// Given: moe already reviewed Apple with rating 5
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")
	existing := testutil.CreateTestReview(t, db, moe.ID, apple.ID, 5, "great")

	router := testutil.SetupTestRouter()
	router.PUT("/api/reviews/:id", testutil.AuthMember(moe.ID), reviewHandler.Update)

	// When: moe resubmits with rating 3
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/reviews/%d", existing.ID),
		Body: review.UpdateReviewRequest{
			Rating:     3,
			Comment:    "downgraded",
			BusinessID: apple.ID,
		},
	})

	// Then: The existing row is mutated, no second row appears
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response review.ReviewResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, existing.ID, response.ID)
	assert.Equal(t, 3, response.Rating)
	assert.Equal(t, int64(1), countReviews(t, db, moe.ID, apple.ID))

	var stored model.Review
	require.NoError(t, db.First(&stored, existing.ID).Error)
	assert.Equal(t, 3, stored.Rating)
	assert.Equal(t, "downgraded", stored.Comment)
}

func TestUpdateReview_NotOwned(t *testing.T) {
	// Given: lucy tries to edit moe's review
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	lucy := testutil.CreateTestMember(t, db, "lucy", "lucy123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")
	existing := testutil.CreateTestReview(t, db, moe.ID, apple.ID, 5, "great")

	router := testutil.SetupTestRouter()
	router.PUT("/api/reviews/:id", testutil.AuthMember(lucy.ID), reviewHandler.Update)

	// When: lucy submits an update for moe's review
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/reviews/%d", existing.ID),
		Body: review.UpdateReviewRequest{
			Rating:  1,
			Comment: "sabotage",
		},
	})

	// Then: Forbidden, the review is untouched
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "REVIEW-003", errorResponse.Code)

	var stored model.Review
	require.NoError(t, db.First(&stored, existing.ID).Error)
	assert.Equal(t, 5, stored.Rating)
}

func TestUpdateReview_NotFound(t *testing.T) {
	// Given: No reviews
	reviewHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")

	router := testutil.SetupTestRouter()
	router.PUT("/api/reviews/:id", testutil.AuthMember(moe.ID), reviewHandler.Update)

	// When: Updating a missing review
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/reviews/999",
		Body: review.UpdateReviewRequest{
			Rating:  2,
			Comment: "nothing here",
		},
	})

	// Then: 404 with the review error code
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "REVIEW-002", errorResponse.Code)
}

func TestReviewRepository_DuplicateInsertTranslated(t *testing.T) {
	// Given: One review row for the pair
	_, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")

	repo := review.NewReviewRepository()
	first := model.NewReview(moe.ID, apple.ID, 5, "great")
	require.NoError(t, repo.Create(t.Context(), db, first))

	// When: A second insert races in for the same (member, business) pair
	second := model.NewReview(moe.ID, apple.ID, 4, "again")
	err := repo.Create(t.Context(), db, second)

	// Then: The store serializes on the unique constraint
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.Equal(t, int64(1), countReviews(t, db, moe.ID, apple.ID))
}
