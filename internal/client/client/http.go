package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/logging"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// HTTPClient talks to the news API over JSON/HTTP.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient validates baseURL and returns a client whose requests time out
// after timeout (zero means no client-side timeout).
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	req := authRequest{User: credentials{Username: username, Password: string(password)}}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("login"), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.User.model(resp.Token), nil
}

func (c *HTTPClient) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	req := authRequest{User: credentials{Username: username, Password: string(password), Name: name}}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("signup"), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.User.model(resp.Token), nil
}

func (c *HTTPClient) GetUser(ctx context.Context, token, username string) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint("users", username), tokenQuery(token), nil, &resp); err != nil {
		return nil, err
	}
	return resp.User.model(token), nil
}

func (c *HTTPClient) GetStories(ctx context.Context, limit int) ([]*models.Story, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}
	var resp storiesResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint("stories"), q, nil, &resp); err != nil {
		return nil, err
	}
	return storyModels(resp.Stories), nil
}

func (c *HTTPClient) AddStory(ctx context.Context, token string, fields models.StoryFields) (*models.Story, error) {
	req := addStoryRequest{
		Token: token,
		Story: newStory{Title: fields.Title, Author: fields.Author, URL: fields.URL},
	}
	var resp storyResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("stories"), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Story.model(), nil
}

func (c *HTTPClient) DeleteStory(ctx context.Context, token, storyID string) (*models.Story, error) {
	var resp storyResponse
	if err := c.do(ctx, http.MethodDelete, c.endpoint("stories", storyID), tokenQuery(token), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Story.model(), nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) (*models.User, error) {
	return c.favorite(ctx, http.MethodPost, token, username, storyID)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) (*models.User, error) {
	return c.favorite(ctx, http.MethodDelete, token, username, storyID)
}

func (c *HTTPClient) favorite(ctx context.Context, method, token, username, storyID string) (*models.User, error) {
	var resp userResponse
	u := c.endpoint("users", username, "favorites", storyID)
	if err := c.do(ctx, method, u, tokenQuery(token), nil, &resp); err != nil {
		return nil, err
	}
	return resp.User.model(token), nil
}

// endpoint appends path segments to the base URL, escaping each one.
func (c *HTTPClient) endpoint(segments ...string) *url.URL {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL.JoinPath(escaped...)
}

func tokenQuery(token string) url.Values {
	return url.Values{"token": []string{token}}
}

func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, query url.Values, in, out any) error {
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("request_id", requestID, "method", method, "path", u.Path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "duration", time.Since(started))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode >= 300 {
		return mapStatus(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapStatus turns a non-2xx response into one of the sentinel errors, keeping
// the server's message when it sent one.
func mapStatus(resp *http.Response) error {
	var sentinel error
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		sentinel = ErrBadRequest
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = ErrConflict
	case resp.StatusCode >= 500:
		sentinel = ErrUnavailable
	default:
		sentinel = errors.New(resp.Status)
	}

	var er errorResponse
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(b, &er) == nil && er.Error.Message != "" {
		return fmt.Errorf("%w: %s", sentinel, er.Error.Message)
	}
	return sentinel
}
