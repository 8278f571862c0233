package member_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/changhyeonkim/business-review/go-api-server/internal/member"
	sharedError "github.com/changhyeonkim/business-review/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*member.MemberHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	memberRepo := member.NewMemberRepository()
	memberService := member.NewMemberService(db, memberRepo)
	memberHandler := member.NewMemberHandler(memberService)

	return memberHandler, db
}

func TestListMembers_IncludesReviewsAndOmitsPassword(t *testing.T) {
	// Given: Two members, one with a review
	memberHandler, db := setupTestEnvironment(t)

	moe := testutil.CreateTestMember(t, db, "moe", "moe123")
	testutil.CreateTestMember(t, db, "lucy", "lucy123")
	apple := testutil.CreateTestBusiness(t, db, "Apple", "Apple is a technology company", "San Francisco")
	testutil.CreateTestReview(t, db, moe.ID, apple.ID, 5, "great")

	router := testutil.SetupTestRouter()
	router.GET("/api/members", memberHandler.List)

	// When: List members
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/members",
	})

	// Then: Both members present, moe carries his review, no password leaks
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []member.MemberResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response, 2)
	assert.Equal(t, "moe", response[0].Username)
	require.Len(t, response[0].Reviews, 1)
	assert.Equal(t, apple.ID, response[0].Reviews[0].BusinessID)
	assert.Empty(t, response[1].Reviews)
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestGetProfile_WhoAmI(t *testing.T) {
	// Given: moe exists and holds a valid bearer token
	memberHandler, db := setupTestEnvironment(t)
	moe := testutil.CreateTestMember(t, db, "moe", "moe123")

	cfg := testutil.NewTestConfig()
	tokenManager := token.NewJWTManager(cfg)
	bearer, err := tokenManager.GenerateToken(strconv.FormatUint(uint64(moe.ID), 10), moe.Username)
	require.NoError(t, err)

	router := testutil.SetupTestRouter()
	router.GET("/api/auth/me", middleware.JWT(cfg), memberHandler.GetProfile)

	// When: GET /api/auth/me with the token
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/auth/me",
		Headers: map[string]string{"Authorization": "Bearer " + bearer},
	})

	// Then: moe's record comes back, password omitted
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.MemberResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, moe.ID, response.ID)
	assert.Equal(t, "moe", response.Username)
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestGetProfile_MissingToken(t *testing.T) {
	// Given: The profile route behind the JWT middleware
	memberHandler, _ := setupTestEnvironment(t)

	cfg := testutil.NewTestConfig()
	router := testutil.SetupTestRouter()
	router.GET("/api/auth/me", middleware.JWT(cfg), memberHandler.GetProfile)

	// When: GET /api/auth/me without a token
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/auth/me",
	})

	// Then: Middleware short-circuits with 401
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-000", errorResponse.Code)
}

func TestGetProfile_InvalidToken(t *testing.T) {
	// Given: The profile route behind the JWT middleware
	memberHandler, _ := setupTestEnvironment(t)

	cfg := testutil.NewTestConfig()
	router := testutil.SetupTestRouter()
	router.GET("/api/auth/me", middleware.JWT(cfg), memberHandler.GetProfile)

	// When: GET /api/auth/me with a malformed token
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/auth/me",
		Headers: map[string]string{"Authorization": "Bearer not-a-token"},
	})

	// Then: Middleware short-circuits with 401
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
