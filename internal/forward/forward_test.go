// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package forward

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tmdb-pick/internal/choice"
	"github.com/pdiddy/tmdb-pick/internal/httputil"
	"github.com/pdiddy/tmdb-pick/pkg/types"
)

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(types.ForwardConfig{Token: "t"})
	assert.ErrorIs(t, err, ErrNoURL)
}

func TestForward(t *testing.T) {
	var (
		method, auth, contentType string
		body                      Payload
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	c, err := NewClient(types.ForwardConfig{URL: ts.URL + "/api/v1/request", Token: "fwd"})
	require.NoError(t, err)
	assert.Equal(t, ts.URL+"/api/v1/request", c.Endpoint())

	err = c.Forward(context.Background(), choice.SelectedIdentifier{Kind: "movie", ID: 2})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "Bearer fwd", auth)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, Payload{MediaType: "movie", TMDBID: 2}, body)
}

func TestForwardWireFormat(t *testing.T) {
	var raw map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
	}))
	defer ts.Close()

	c, err := NewClient(types.ForwardConfig{URL: ts.URL})
	require.NoError(t, err)
	require.NoError(t, c.Forward(context.Background(), choice.SelectedIdentifier{Kind: "tv", ID: 1399}))

	assert.Equal(t, map[string]any{"media_type": "tv", "tmdb_id": float64(1399)}, raw)
}

func TestForwardStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "already requested", http.StatusConflict)
	}))
	defer ts.Close()

	c, err := NewClient(types.ForwardConfig{URL: ts.URL})
	require.NoError(t, err)

	err = c.Forward(context.Background(), choice.SelectedIdentifier{Kind: "tv", ID: 9})
	require.Error(t, err)

	var se *httputil.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Code)
	assert.Contains(t, err.Error(), "tv/9")
}
