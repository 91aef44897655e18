// Package client is a small HTTP client for the dictionary API, used by the
// search widget and the command line tool.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"cloud-dictionary-api/internal/models"
)

// APIError is returned for any non-success response other than a lookup miss
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("dictionary api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("dictionary api: status %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

// Client calls TermLookup and TermSearch on a deployed API
type Client struct {
	http *resty.Client
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

// Lookup fetches one record. A 404 yields an error matching models.ErrTermNotFound.
func (c *Client) Lookup(ctx context.Context, term string) (*models.Term, error) {
	var result models.Term
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("term", term).
		SetResult(&result).
		SetError(&errorBody{}).
		Get("/terms/{term}")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}

	switch {
	case res.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%q: %w", term, models.ErrTermNotFound)
	case res.StatusCode() != http.StatusOK:
		return nil, apiError(res)
	}
	return &result, nil
}

// Search fetches every record matching query
func (c *Client) Search(ctx context.Context, query string) ([]models.Term, error) {
	var result []models.Term
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetResult(&result).
		SetError(&errorBody{}).
		Get("/terms")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, apiError(res)
	}
	if result == nil {
		result = []models.Term{}
	}
	return result, nil
}

func apiError(res *resty.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode()}
	if body, ok := res.Error().(*errorBody); ok && body != nil {
		apiErr.Message = body.Error
	}
	return apiErr
}
