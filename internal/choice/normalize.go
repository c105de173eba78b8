// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package choice turns heterogeneous TMDB search hits into a clean,
// uniquely keyed menu and recovers a typed identifier from the user's pick.
//
// The pipeline has three stages: Normalize maps a RawResult onto a
// canonical NormalizedResult, BuildChoices packages the survivors as
// ChoiceEntry values, and Decode turns the picked entry back into a
// SelectedIdentifier. Display strings are presentation only; the key used
// by Decode travels beside them.
package choice

import (
	"strconv"
	"strings"

	"github.com/pdiddy/tmdb-pick/pkg/types"
)

// Unknown is the placeholder used when a date or language cannot be
// determined.
const Unknown = "unknown"

// Kind is the canonical media kind of a normalized result.
type Kind int

const (
	// KindInvalid is the zero value and never appears in a NormalizedResult.
	KindInvalid Kind = iota
	KindMovie
	KindShow
)

// ParseKind maps a raw media_type tag onto a Kind, ignoring case and
// surrounding whitespace. Person records and unknown tags yield KindInvalid.
func ParseKind(tag string) Kind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "movie":
		return KindMovie
	case "tv":
		return KindShow
	default:
		return KindInvalid
	}
}

// Tag returns the lowercase API form ("movie", "tv") used in forwarding
// payloads.
func (k Kind) Tag() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindShow:
		return "tv"
	default:
		return ""
	}
}

// Label returns the uppercase display form.
func (k Kind) Label() string {
	return strings.ToUpper(k.Tag())
}

func (k Kind) String() string {
	if k == KindInvalid {
		return "invalid"
	}
	return k.Tag()
}

// NormalizedResult is a RawResult reduced to a display-ready shape. Title is
// never empty; Date and Language hold a value or Unknown.
type NormalizedResult struct {
	ID       uint64 `json:"id" yaml:"id"`
	Kind     Kind   `json:"-" yaml:"-"`
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Language string `json:"language" yaml:"language"`
}

// Normalize maps raw onto a NormalizedResult. It reports false when the
// record must be left out of the menu: person records, records without a
// recognizable kind, records whose id is not a non-negative integer, and
// records with no usable title.
func Normalize(raw types.RawResult) (NormalizedResult, bool) {
	if raw.MediaType == nil {
		return NormalizedResult{}, false
	}
	kind := ParseKind(*raw.MediaType)
	if kind == KindInvalid {
		return NormalizedResult{}, false
	}

	id, ok := parseID(raw)
	if !ok {
		return NormalizedResult{}, false
	}

	title, ok := resolveTitle(raw)
	if !ok {
		return NormalizedResult{}, false
	}

	return NormalizedResult{
		ID:       id,
		Kind:     kind,
		Title:    title,
		Date:     resolveDate(raw),
		Language: orUnknown(raw.OriginalLanguage),
	}, true
}

func parseID(raw types.RawResult) (uint64, bool) {
	if raw.ID == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw.ID.String()), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// resolveTitle prefers the show-style name, then the movie-style title.
// A blank value counts as absent so an empty title is never produced.
func resolveTitle(raw types.RawResult) (string, bool) {
	for _, candidate := range []*string{raw.OriginalName, raw.OriginalTitle} {
		if candidate != nil && strings.TrimSpace(*candidate) != "" {
			return *candidate, true
		}
	}
	return "", false
}

// resolveDate picks the show-style date when the key is present at all,
// otherwise the movie-style date. An empty chosen value becomes Unknown.
func resolveDate(raw types.RawResult) string {
	chosen := raw.FirstAirDate
	if chosen == nil {
		chosen = raw.ReleaseDate
	}
	return orUnknown(chosen)
}

func orUnknown(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return Unknown
	}
	return *s
}
