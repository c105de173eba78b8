// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tmdb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tmdb-pick/internal/httputil"
	"github.com/pdiddy/tmdb-pick/pkg/types"
)

const multiFixture = `{
  "page": 1,
  "results": [
    {"id": 438631, "media_type": "movie", "original_title": "Dune", "release_date": "2021-09-15", "original_language": "en"},
    {"id": 90228, "media_type": "tv", "original_name": "Dune: Prophecy", "first_air_date": "2024-11-17", "original_language": "en"},
    {"id": 1, "media_type": "person", "name": "Frank Herbert"},
    {"id": 7, "media_type": "movie", "original_title": "No date"}
  ],
  "total_pages": 1,
  "total_results": 4
}`

func testCfg(baseURL string) types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "tmdb-pick/test"},
		BaseURL:    baseURL,
		Token:      "test-token",
	}
}

func TestSearchMulti_Request(t *testing.T) {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		io.WriteString(w, multiFixture)
	}))
	defer ts.Close()

	c := NewClient(testCfg(ts.URL + "/"))
	_, err := c.SearchMulti(context.Background(), "  dune & sons ")
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/search/multi", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "dune & sons", q.Get("query"))
	assert.Equal(t, "false", q.Get("include_adult"))
	assert.Equal(t, "en-US", q.Get("language"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "tmdb-pick/test", got.Header.Get("User-Agent"))
}

func TestSearchMulti_Options(t *testing.T) {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		io.WriteString(w, `{"results":[]}`)
	}))
	defer ts.Close()

	cfg := testCfg(ts.URL)
	cfg.IncludeAdult = true
	cfg.Language = "de-DE"
	_, err := NewClient(cfg).SearchMulti(context.Background(), "x")
	require.NoError(t, err)

	assert.Equal(t, "true", got.URL.Query().Get("include_adult"))
	assert.Equal(t, "de-DE", got.URL.Query().Get("language"))
}

func TestSearchMulti_Decodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, multiFixture)
	}))
	defer ts.Close()

	results, err := NewClient(testCfg(ts.URL)).SearchMulti(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "438631", results[0].ID.String())
	require.NotNil(t, results[0].OriginalTitle)
	assert.Equal(t, "Dune", *results[0].OriginalTitle)
	assert.Nil(t, results[0].OriginalName)

	require.NotNil(t, results[1].FirstAirDate)
	assert.Equal(t, "2024-11-17", *results[1].FirstAirDate)

	require.NotNil(t, results[2].MediaType)
	assert.Equal(t, "person", *results[2].MediaType)

	assert.Nil(t, results[3].ReleaseDate)
	assert.Nil(t, results[3].OriginalLanguage)
}

func TestSearchMulti_NullResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"page":1,"results":null}`)
	}))
	defer ts.Close()

	results, err := NewClient(testCfg(ts.URL)).SearchMulti(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchMulti_EmptyQuery(t *testing.T) {
	_, err := NewClient(testCfg("http://unused")).SearchMulti(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchMulti_NoToken(t *testing.T) {
	cfg := testCfg("http://unused")
	cfg.Token = ""
	_, err := NewClient(cfg).SearchMulti(context.Background(), "dune")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSearchMulti_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`)
	}))
	defer ts.Close()

	_, err := NewClient(testCfg(ts.URL)).SearchMulti(context.Background(), "dune")
	require.Error(t, err)

	var se *httputil.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Contains(t, err.Error(), "TMDB search")
}

func TestSearchMulti_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `<html>gateway</html>`)
	}))
	defer ts.Close()

	_, err := NewClient(testCfg(ts.URL)).SearchMulti(context.Background(), "dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(types.SearchConfig{Token: "t"})
	assert.Equal(t, DefaultBaseURL, c.cfg.BaseURL)
	assert.Equal(t, "en-US", c.cfg.Language)
	assert.Equal(t, defaultTimeout, c.HTTP.Timeout)
}
