// Package reviewclient is a typed Go client for the reviews service API,
// used by internal tools and the review browser backend.
package reviewclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mockmate/reviews-service/internal/domain"
	"github.com/mockmate/reviews-service/pkg/httpclient"
)

const reviewsPath = "/api/v1/reviews"

// Client calls the reviews service over HTTP.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

// New creates a client for the reviews service at baseURL.
func New(baseURL string, cfg httpclient.Config) *Client {
	return &Client{
		http:    httpclient.New(cfg),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SubmitReviewInput is the payload for Submit.
type SubmitReviewInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Rating        int    `json:"rating"`
	Title         string `json:"title"`
	Comment       string `json:"comment"`
	InterviewType string `json:"interviewType"`
	InterviewRole string `json:"interviewRole"`
}

// ListResult is the decoded response of the list endpoint.
type ListResult struct {
	Reviews []domain.Review    `json:"reviews"`
	Stats   domain.ReviewStats `json:"stats"`
	Demo    bool               `json:"demo"`
	Error   string             `json:"error,omitempty"`
}

// SubmitResult is the decoded response of the submit endpoint.
type SubmitResult struct {
	Success bool               `json:"success"`
	Review  domain.Review      `json:"review"`
	Stats   domain.ReviewStats `json:"stats"`
	Demo    bool               `json:"demo"`
	Error   string             `json:"error,omitempty"`
}

// VoteResult is the decoded response of the helpful-vote endpoint.
type VoteResult struct {
	Success bool               `json:"success"`
	Stats   domain.ReviewStats `json:"stats"`
	Demo    bool               `json:"demo"`
	Error   string             `json:"error,omitempty"`
}

// List fetches all reviews with aggregated stats.
func (c *Client) List(ctx context.Context) (*ListResult, error) {
	resp, err := c.http.Get(ctx, c.baseURL+reviewsPath)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer resp.Body.Close()

	var result ListResult
	if err := decode(resp, &result); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return &result, nil
}

// Submit posts a new review.
func (c *Client) Submit(ctx context.Context, input SubmitReviewInput) (*SubmitResult, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+reviewsPath, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	defer resp.Body.Close()

	var result SubmitResult
	if err := decode(resp, &result); err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	return &result, nil
}

// VoteHelpful increments the helpful counter of a review.
func (c *Client) VoteHelpful(ctx context.Context, reviewID string, helpful int) (*VoteResult, error) {
	body, err := json.Marshal(map[string]any{
		"reviewId": reviewID,
		"helpful":  helpful,
	})
	if err != nil {
		return nil, fmt.Errorf("vote helpful: %w", err)
	}

	resp, err := c.http.Put(ctx, c.baseURL+reviewsPath, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("vote helpful: %w", err)
	}
	defer resp.Body.Close()

	var result VoteResult
	if err := decode(resp, &result); err != nil {
		return nil, fmt.Errorf("vote helpful: %w", err)
	}
	return &result, nil
}

func decode(resp *http.Response, v any) error {
	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, failure.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
