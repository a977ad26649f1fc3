// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remote is the HTTP client for the profile data API. It fetches
// profile records by username and search results by query string; the
// formatter never sees the network.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/profile-notes/pkg/types"
)

const defaultTimeout = 30 * time.Second

// Client talks to a profile data API. The provider is bring-your-own:
// BaseURL must be configured, there is no default endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a Client from config. It fails when no endpoint is
// configured so callers surface the problem before any fetch.
func NewClient(cfg types.RemoteConfig) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("remote endpoint not configured: set remote.base_url")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchProfile retrieves the profile record for username.
func (c *Client) FetchProfile(ctx context.Context, username string) (*types.ProfileRecord, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	var profile types.ProfileRecord
	endpoint := c.baseURL + "/profiles/" + url.PathEscape(username)
	if err := c.getJSON(ctx, endpoint, &profile); err != nil {
		return nil, fmt.Errorf("fetching profile %q: %w", username, err)
	}
	return &profile, nil
}

// searchResponse is the wire shape of a search call.
type searchResponse struct {
	Results []types.SearchResultEntry `json:"results"`
}

// SearchProfiles runs a profile search. The query string comes from
// format.BuildSearchQuery and is appended verbatim.
func (c *Client) SearchProfiles(ctx context.Context, query string) ([]types.SearchResultEntry, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	var sr searchResponse
	endpoint := c.baseURL + "/profiles/search?" + query
	if err := c.getJSON(ctx, endpoint, &sr); err != nil {
		return nil, fmt.Errorf("searching profiles: %w", err)
	}
	return sr.Results, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("data API request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("data API returned HTTP 404: no such record")
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("data API returned HTTP %d: check .secrets/profile-api-key", resp.StatusCode)
	default:
		return fmt.Errorf("data API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing data API response: %w", err)
	}
	return nil
}
