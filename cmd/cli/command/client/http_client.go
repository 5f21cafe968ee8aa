package client

// http_client.go talks to the AnimeHub HTTP API on behalf of the CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"animehub/internal/microservices/http-api/dto"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends body as JSON and decodes a 2xx response into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) SubmitSeasonRating(ctx context.Context, req dto.SubmitSeasonRatingRequest) (*dto.SeasonRatingResponse, error) {
	var result dto.SeasonRatingResponse
	if err := c.do(ctx, http.MethodPost, "/api/ratings/season", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ShowRatings lists a show's season ratings. An empty userID lists everyone's.
func (c *HTTPClient) ShowRatings(ctx context.Context, showID, userID string) ([]dto.SeasonRatingResponse, error) {
	path := "/api/ratings/show/" + url.PathEscape(showID)
	if userID != "" {
		path += "?userId=" + url.QueryEscape(userID)
	}
	var result []dto.SeasonRatingResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) MyRatings(ctx context.Context) ([]dto.SeasonRatingResponse, error) {
	var result []dto.SeasonRatingResponse
	if err := c.do(ctx, http.MethodGet, "/api/ratings/my-ratings", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) DeleteSeasonRating(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/ratings/season/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ShowAggregate(ctx context.Context, showID string) (*dto.ShowRatingResponse, error) {
	var result dto.ShowRatingResponse
	if err := c.do(ctx, http.MethodGet, "/api/shows/"+url.PathEscape(showID)+"/rating", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	var result dto.ReviewResponse
	if err := c.do(ctx, http.MethodPost, "/api/reviews", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AnimeReviews lists public reviews of an anime, narrowed to a season and
// episode when those are set. An episode without a season is ignored.
func (c *HTTPClient) AnimeReviews(ctx context.Context, animeID string, season, episode dto.OptionalInt) ([]dto.ReviewResponse, error) {
	path := "/api/reviews/anime/" + url.PathEscape(animeID)
	if season.Set {
		path += fmt.Sprintf("/season/%d", season.Value)
		if episode.Set {
			path += fmt.Sprintf("/episode/%d", episode.Value)
		}
	}
	var result []dto.ReviewResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) MyReviews(ctx context.Context) ([]dto.ReviewResponse, error) {
	var result []dto.ReviewResponse
	if err := c.do(ctx, http.MethodGet, "/api/reviews/my-reviews", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
