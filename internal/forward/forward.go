// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package forward submits a selected identifier to an operator-configured
// HTTP endpoint.
package forward

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/tmdb-pick/internal/choice"
	"github.com/pdiddy/tmdb-pick/internal/httputil"
	"github.com/pdiddy/tmdb-pick/pkg/types"
)

const defaultTimeout = 10 * time.Second

// ErrNoURL is returned when forwarding is requested without an endpoint.
var ErrNoURL = errors.New("forward URL not configured: set FORWARD_API_URL or forward.url")

// Payload is the JSON body of the forwarding request.
type Payload struct {
	MediaType string `json:"media_type"`
	TMDBID    uint64 `json:"tmdb_id"`
}

// Client posts selections to cfg.URL.
type Client struct {
	HTTP *http.Client
	cfg  types.ForwardConfig
}

// NewClient returns a Client for cfg.
func NewClient(cfg types.ForwardConfig) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}, nil
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string { return c.cfg.URL }

// Forward sends sel once. Any 2xx response is success.
func (c *Client) Forward(ctx context.Context, sel choice.SelectedIdentifier) error {
	payload := Payload{MediaType: sel.Kind, TMDBID: sel.ID}

	req, err := httputil.NewJSONRequest(ctx, http.MethodPost, c.cfg.URL, c.cfg.Token, c.cfg.UserAgent, payload)
	if err != nil {
		return err
	}

	resp, err := httputil.Do(c.HTTP, req)
	if err != nil {
		return fmt.Errorf("forwarding %s: %w", sel, err)
	}
	resp.Body.Close()
	return nil
}
