// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for tmdb-pick: the raw
// search hits decoded from the metadata API and the configuration of each
// collaborator that talks to the network.
package types

import "encoding/json"

// RawResult is one unprocessed hit from the TMDB multi-search endpoint.
// Every field is optional. Pointer fields distinguish an absent key from a
// key present with an empty value, which the normalizer treats differently.
type RawResult struct {
	// ID is the TMDB numeric identifier. Kept as a json.Number so malformed
	// values (negative, fractional) reach the normalizer instead of failing
	// the whole response decode.
	ID *json.Number `json:"id,omitempty" yaml:"id,omitempty"`

	// OriginalName is the title field used by show-like records.
	OriginalName *string `json:"original_name,omitempty" yaml:"original_name,omitempty"`

	// OriginalTitle is the title field used by movie-like records.
	OriginalTitle *string `json:"original_title,omitempty" yaml:"original_title,omitempty"`

	// FirstAirDate is the date field used by show-like records.
	FirstAirDate *string `json:"first_air_date,omitempty" yaml:"first_air_date,omitempty"`

	// ReleaseDate is the date field used by movie-like records.
	ReleaseDate *string `json:"release_date,omitempty" yaml:"release_date,omitempty"`

	// OriginalLanguage is an ISO 639-1 code such as "en".
	OriginalLanguage *string `json:"original_language,omitempty" yaml:"original_language,omitempty"`

	// MediaType is "movie", "tv", or "person"; absent on some endpoints.
	MediaType *string `json:"media_type,omitempty" yaml:"media_type,omitempty"`
}

// SearchResponse is the envelope returned by /search/multi. Only the first
// page is ever requested.
type SearchResponse struct {
	Page         int         `json:"page"`
	Results      []RawResult `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// Str returns a pointer to s. Used to build RawResult literals.
func Str(s string) *string { return &s }

// Num returns a json.Number pointer for the literal n.
func Num(n string) *json.Number {
	v := json.Number(n)
	return &v
}
