package client

import (
	"context"
	"errors"
)

// Form states. The form is unauthenticated until a member logs in or
// registers; once authenticated it is in create mode unless the selected
// business already carries a review by the caller, in which case submitting
// edits that review instead of creating a second one.
type FormState int

const (
	StateUnauthenticated FormState = iota
	StateCreate
	StateEdit
)

var (
	// ErrNoBusinessSelected is returned by Submit when no business has been
	// chosen yet.
	ErrNoBusinessSelected = errors.New("reviewform: select a business before submitting")

	// ErrNotAuthenticated is returned by Submit before login.
	ErrNotAuthenticated = errors.New("reviewform: log in before submitting")
)

// BusinessOption is one entry of the business selector. Editable marks
// businesses the member has already reviewed.
type BusinessOption struct {
	ID       uint32
	Name     string
	Editable bool
}

// ReviewForm drives the create/edit review flow against the API. Field
// mutations only touch local state; Submit performs the single write, so
// last-submit-wins semantics apply.
type ReviewForm struct {
	client *Client

	member     *Member
	businesses []Business

	businessID uint32
	rating     int
	comment    string

	formError error // shown in the form banner
	authError error // shown inline in the login/registration dialog
}

// NewReviewForm creates a form with default field values: no business
// selected, rating 1, empty comment.
func NewReviewForm(c *Client) *ReviewForm {
	return &ReviewForm{
		client: c,
		rating: 1,
	}
}

// Refresh reloads the business list (and the caller's member record when
// authenticated) from the API.
func (f *ReviewForm) Refresh(ctx context.Context) error {
	businesses, err := f.client.Businesses(ctx)
	if err != nil {
		f.setError(err)
		return err
	}
	f.businesses = businesses

	if f.member != nil {
		me, err := f.client.Me(ctx)
		if err != nil {
			f.setError(err)
			return err
		}
		f.member = me
	}
	return nil
}

// Login authenticates through the form's client. Auth failures are routed to
// the auth dialog, not the form banner.
func (f *ReviewForm) Login(ctx context.Context, username, password string) error {
	resp, err := f.client.Login(ctx, username, password)
	if err != nil {
		f.setError(err)
		return err
	}
	f.member = resp.Member
	f.authError = nil

	// The login response does not nest the member's reviews; fetch them so a
	// returning reviewer lands in edit mode for businesses they already rated.
	if me, err := f.client.Me(ctx); err == nil {
		f.member = me
	}
	return nil
}

// Register creates an account through the form's client and logs in.
func (f *ReviewForm) Register(ctx context.Context, username, password string) error {
	resp, err := f.client.Register(ctx, username, password)
	if err != nil {
		f.setError(err)
		return err
	}
	f.member = resp.Member
	f.authError = nil
	return nil
}

// Logout clears the auth state; the form drops back to unauthenticated.
func (f *ReviewForm) Logout() {
	f.client.Logout()
	f.member = nil
}

// SelectBusiness changes the selected business, which may flip the form
// between create and edit mode.
func (f *ReviewForm) SelectBusiness(businessID uint32) {
	f.businessID = businessID
}

// SetRating clamps the value into [1,5] like the slider it mirrors.
func (f *ReviewForm) SetRating(rating int) {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	f.rating = rating
}

func (f *ReviewForm) SetComment(comment string) {
	f.comment = comment
}

func (f *ReviewForm) Rating() int     { return f.rating }
func (f *ReviewForm) Comment() string { return f.comment }

// State derives the current form state from the auth state and the selected
// business.
func (f *ReviewForm) State() FormState {
	if f.member == nil {
		return StateUnauthenticated
	}
	if f.existingReview() != nil {
		return StateEdit
	}
	return StateCreate
}

// BusinessOptions enumerates the selector entries, annotating businesses the
// member has already reviewed as editable.
func (f *ReviewForm) BusinessOptions() []BusinessOption {
	options := make([]BusinessOption, 0, len(f.businesses))
	for _, b := range f.businesses {
		options = append(options, BusinessOption{
			ID:       b.ID,
			Name:     b.Name,
			Editable: f.hasReviewFor(b.ID),
		})
	}
	return options
}

// Submit performs the create-or-update decision: if the caller already has a
// review for the selected business it is updated, otherwise a new one is
// created. On success it returns the business ID to navigate to.
func (f *ReviewForm) Submit(ctx context.Context) (uint32, error) {
	if f.member == nil {
		f.setError(ErrNotAuthenticated)
		return 0, ErrNotAuthenticated
	}
	if f.businessID == 0 {
		f.setError(ErrNoBusinessSelected)
		return 0, ErrNoBusinessSelected
	}

	input := ReviewInput{
		Rating:     f.rating,
		Comment:    f.comment,
		BusinessID: f.businessID,
	}

	var err error
	if existing := f.existingReview(); existing != nil {
		_, err = f.client.UpdateReview(ctx, existing.ID, input)
	} else {
		_, err = f.client.CreateReview(ctx, input)
	}
	if err != nil {
		f.setError(err)
		return 0, err
	}

	f.formError = nil

	// Refresh the member's reviews so the next submit for the same business
	// takes the edit path.
	if me, err := f.client.Me(ctx); err == nil {
		f.member = me
	}

	return f.businessID, nil
}

// FormError returns the error to display in the review form banner, nil when
// none is pending.
func (f *ReviewForm) FormError() error { return f.formError }

// AuthError returns the error to display inline in the auth dialog.
func (f *ReviewForm) AuthError() error { return f.authError }

func (f *ReviewForm) setError(err error) {
	if IsAuthFormError(err) {
		f.authError = err
		return
	}
	f.formError = err
}

func (f *ReviewForm) existingReview() *Review {
	if f.member == nil || f.businessID == 0 {
		return nil
	}
	for i := range f.member.Reviews {
		if f.member.Reviews[i].BusinessID == f.businessID {
			return &f.member.Reviews[i]
		}
	}
	return nil
}

func (f *ReviewForm) hasReviewFor(businessID uint32) bool {
	if f.member == nil {
		return false
	}
	for _, r := range f.member.Reviews {
		if r.BusinessID == businessID {
			return true
		}
	}
	return false
}
