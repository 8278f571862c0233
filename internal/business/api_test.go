package business_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/business-review/go-api-server/internal/business"
	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*business.BusinessHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	businessRepo := business.NewBusinessRepository()
	businessService := business.NewBusinessService(db, businessRepo)
	businessHandler := business.NewBusinessHandler(businessService)

	return businessHandler, db
}

func TestListBusinesses_NestedReviewsMatchBusiness(t *testing.T) {
	// Given: Two businesses, reviews spread across them
	businessHandler, db := setupTestEnvironment(t)

	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	lucy := testutil.CreateTestMember(t, db, "lucy", "lucy123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")
	tesla := testutil.CreateTestBusiness(t, db, "Tesla", "Tesla is a technology company", "Palo Alto")
	testutil.CreateTestReview(t, db, moe.ID, apple.ID, 5, "great")
	testutil.CreateTestReview(t, db, lucy.ID, apple.ID, 4, "pretty good")
	testutil.CreateTestReview(t, db, moe.ID, tesla.ID, 2, "meh")

	router := testutil.SetupTestRouter()
	router.GET("/api/businesses", businessHandler.List)

	// When: List businesses
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/businesses",
	})

	// Then: Each business carries exactly its own reviews
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []business.BusinessResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response, 2)

	assert.Equal(t, "Apple", response[0].Name)
	require.Len(t, response[0].Reviews, 2)
	for _, r := range response[0].Reviews {
		assert.Equal(t, apple.ID, r.BusinessID)
	}

	assert.Equal(t, "Tesla", response[1].Name)
	require.Len(t, response[1].Reviews, 1)
	assert.Equal(t, tesla.ID, response[1].Reviews[0].BusinessID)
	assert.Equal(t, moe.ID, response[1].Reviews[0].MemberID)
}

func TestGetBusiness_Success(t *testing.T) {
	// Given: A business with one review
	businessHandler, db := setupTestEnvironment(t)

	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")
	testutil.CreateTestReview(t, db, moe.ID, apple.ID, 5, "great")

	router := testutil.SetupTestRouter()
	router.GET("/api/businesses/:id", businessHandler.Get)

	// When: Fetch the business detail
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/businesses/%d", apple.ID),
	})

	// Then: Business and its review come back
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response business.BusinessResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "Apple", response.Name)
	assert.Equal(t, "San Francisco", response.City)
	require.Len(t, response.Reviews, 1)
	assert.Equal(t, 5, response.Reviews[0].Rating)
}

func TestGetBusiness_NotFound(t *testing.T) {
	// Given: No businesses
	businessHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/businesses/:id", businessHandler.Get)

	// When: Fetch an unknown business
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/businesses/999",
	})

	// Then: 404 with the business error code
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "BUSINESS-001", errorResponse.Code)
}
