package client_test

import (
	"testing"

	"github.com/changhyeonkim/business-review/go-api-server/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewForm_CreateThenEdit(t *testing.T) {
	// Given: A running API, moe logged in through the form
	c, db := setupServer(t)
	seedDemoData(t, db)

	form := client.NewReviewForm(c)
	assert.Equal(t, client.StateUnauthenticated, form.State())

	require.NoError(t, form.Login(t.Context(), "moe", "moe123"))
	require.NoError(t, form.Refresh(t.Context()))
	assert.Equal(t, client.StateCreate, form.State())

	options := form.BusinessOptions()
	require.Len(t, options, 2)
	assert.False(t, options[0].Editable)

	// When: moe selects Apple, pushes the slider past the bound, and submits
	form.SelectBusiness(options[0].ID)
	form.SetRating(9) // clamped to 5
	form.SetComment("great")

	navigateTo, err := form.Submit(t.Context())
	require.NoError(t, err)

	// Then: The form navigates to Apple and flips into edit mode
	assert.Equal(t, options[0].ID, navigateTo)
	assert.Equal(t, client.StateEdit, form.State())
	assert.True(t, form.BusinessOptions()[0].Editable)

	apple, err := c.Business(t.Context(), options[0].ID)
	require.NoError(t, err)
	require.Len(t, apple.Reviews, 1)
	assert.Equal(t, 5, apple.Reviews[0].Rating)

	// When: moe resubmits with rating 3 for the same business
	form.SetRating(3)
	form.SetComment("changed my mind")
	_, err = form.Submit(t.Context())
	require.NoError(t, err)

	// Then: The existing review is updated, still exactly one row
	apple, err = c.Business(t.Context(), options[0].ID)
	require.NoError(t, err)
	require.Len(t, apple.Reviews, 1)
	assert.Equal(t, 3, apple.Reviews[0].Rating)
	assert.Equal(t, "changed my mind", apple.Reviews[0].Comment)
}

func TestReviewForm_SubmitGuards(t *testing.T) {
	// Given: A running API with demo data
	c, db := setupServer(t)
	seedDemoData(t, db)

	form := client.NewReviewForm(c)

	// When/Then: Submitting before login is rejected locally
	_, err := form.Submit(t.Context())
	assert.ErrorIs(t, err, client.ErrNotAuthenticated)

	// When/Then: After login, submitting without a business is rejected
	require.NoError(t, form.Login(t.Context(), "moe", "moe123"))
	_, err = form.Submit(t.Context())
	assert.ErrorIs(t, err, client.ErrNoBusinessSelected)
	assert.Equal(t, client.ErrNoBusinessSelected, form.FormError())
}

func TestReviewForm_AuthErrorsStayInAuthDialog(t *testing.T) {
	// Given: A running API with demo data
	c, db := setupServer(t)
	seedDemoData(t, db)

	form := client.NewReviewForm(c)

	// When: Login fails
	err := form.Login(t.Context(), "moe", "wrong")
	require.Error(t, err)

	// Then: The error lands in the auth dialog, not the review form banner
	assert.Error(t, form.AuthError())
	assert.NoError(t, form.FormError())

	// When: Registration hits a taken username
	err = form.Register(t.Context(), "lucy", "whatever1")
	require.Error(t, err)

	// Then: Same routing
	assert.Error(t, form.AuthError())
	assert.NoError(t, form.FormError())
}

func TestReviewForm_RatingDefaultsAndClamping(t *testing.T) {
	// Given: A fresh form
	form := client.NewReviewForm(client.New("http://localhost:3000"))

	// Then: Defaults mirror the slider
	assert.Equal(t, 1, form.Rating())
	assert.Empty(t, form.Comment())

	// When/Then: Out-of-range values clamp to the bounds
	form.SetRating(0)
	assert.Equal(t, 1, form.Rating())
	form.SetRating(-3)
	assert.Equal(t, 1, form.Rating())
	form.SetRating(6)
	assert.Equal(t, 5, form.Rating())
	form.SetRating(4)
	assert.Equal(t, 4, form.Rating())
}
