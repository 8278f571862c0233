// Package client is a Go client for the business-review API. It wraps every
// REST endpoint with a typed method and keeps the bearer token issued at
// login/registration for authenticated calls.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Member is a member as returned by the API, credential omitted.
type Member struct {
	ID       uint32   `json:"id"`
	Username string   `json:"username"`
	Reviews  []Review `json:"reviews"`
}

// Business is a business with its nested reviews.
type Business struct {
	ID          uint32   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Reviews     []Review `json:"reviews"`
}

// Review is a rating plus comment tied to one member and one business.
type Review struct {
	ID         uint32 `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	MemberID   uint32 `json:"member_id"`
	BusinessID uint32 `json:"business_id"`
}

// AuthResponse carries the bearer token and the authenticated member.
type AuthResponse struct {
	Token  string  `json:"token"`
	Member *Member `json:"member"`
}

// ReviewInput is the payload for creating or updating a review.
type ReviewInput struct {
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	BusinessID uint32 `json:"business_id"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// APIError is the decoded error body of a failed API call.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// IsAuthFormError reports whether an error belongs in the login/registration
// dialog rather than the review form banner.
func IsAuthFormError(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	message := strings.ToLower(apiErr.Message)
	return strings.HasPrefix(message, "login") || strings.HasPrefix(message, "registration")
}

// Client is a typed HTTP client for the business-review API.
type Client struct {
	http  *resty.Client
	token string
}

// New creates a client against the given base URL, e.g. "http://localhost:3000".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// SetToken installs a bearer token for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string {
	return c.token
}

// Logout drops the stored bearer token.
func (c *Client) Logout() {
	c.token = ""
}

// Login exchanges credentials for a bearer token and stores it.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{username, password}, &result, false); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Register creates a member, stores the issued token, and returns both.
func (c *Client) Register(ctx context.Context, username, password string) (*AuthResponse, error) {
	var result AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", credentials{username, password}, &result, false); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Me resolves the stored token back to the authenticated member.
func (c *Client) Me(ctx context.Context) (*Member, error) {
	var result Member
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// Members lists all members with their authored reviews.
func (c *Client) Members(ctx context.Context) ([]Member, error) {
	var result []Member
	if err := c.do(ctx, http.MethodGet, "/api/members", nil, &result, false); err != nil {
		return nil, err
	}
	return result, nil
}

// Businesses lists all businesses with their nested reviews.
func (c *Client) Businesses(ctx context.Context) ([]Business, error) {
	var result []Business
	if err := c.do(ctx, http.MethodGet, "/api/businesses", nil, &result, false); err != nil {
		return nil, err
	}
	return result, nil
}

// Business fetches a single business with its nested reviews.
func (c *Client) Business(ctx context.Context, id uint32) (*Business, error) {
	var result Business
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/businesses/%d", id), nil, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateReview submits a new review for the authenticated member.
func (c *Client) CreateReview(ctx context.Context, input ReviewInput) (*Review, error) {
	var result Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews", input, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateReview replaces the rating and comment of an existing review.
func (c *Client) UpdateReview(ctx context.Context, reviewID uint32, input ReviewInput) (*Review, error) {
	var result Review
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reviews/%d", reviewID), input, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}, authed bool) error {
	var apiErr APIError

	req := c.http.R().
		SetContext(ctx).
		SetError(&apiErr)

	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	if authed {
		req.SetAuthToken(c.token)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
			apiErr.Message = resp.Status()
		}
		return &apiErr
	}

	return nil
}
