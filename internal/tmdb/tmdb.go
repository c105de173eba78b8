// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tmdb queries The Movie Database multi-search endpoint.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/tmdb-pick/internal/httputil"
	"github.com/pdiddy/tmdb-pick/pkg/types"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "en-US"
	defaultTimeout  = 10 * time.Second
)

var (
	// ErrEmptyQuery is returned when the search term is blank.
	ErrEmptyQuery = errors.New("search term is empty")

	// ErrNoToken is returned when no bearer token is configured.
	ErrNoToken = errors.New("TMDB token not configured: set TMDB_TOKEN or search.token")
)

// Client searches TMDB with a bearer token.
type Client struct {
	HTTP *http.Client
	cfg  types.SearchConfig
}

// NewClient returns a Client for cfg, filling in defaults for the base URL,
// language, and timeout.
func NewClient(cfg types.SearchConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// SearchMulti runs one /search/multi request for query and returns the raw
// hits of the first page in API order.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]types.RawResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if c.cfg.Token == "" {
		return nil, ErrNoToken
	}

	req, err := httputil.NewJSONRequest(ctx, http.MethodGet, c.searchURL(query), c.cfg.Token, c.cfg.UserAgent, nil)
	if err != nil {
		return nil, err
	}

	var resp types.SearchResponse
	if err := httputil.DecodeJSON(c.HTTP, req, &resp); err != nil {
		return nil, fmt.Errorf("TMDB search: %w", err)
	}
	if resp.Results == nil {
		return []types.RawResult{}, nil
	}
	return resp.Results, nil
}

func (c *Client) searchURL(query string) string {
	params := url.Values{
		"query":         {query},
		"include_adult": {strconv.FormatBool(c.cfg.IncludeAdult)},
		"language":      {c.cfg.Language},
		"page":          {"1"},
	}
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/search/multi?" + params.Encode()
}
