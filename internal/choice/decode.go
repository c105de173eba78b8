// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package choice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedEntry reports an entry whose key has no usable structure.
	ErrMalformedEntry = errors.New("malformed choice entry")

	// ErrMalformedID reports an entry whose id is not a non-negative integer.
	ErrMalformedID = errors.New("malformed tmdb id")
)

// SelectedIdentifier is the typed identifier recovered from a pick.
type SelectedIdentifier struct {
	Kind string `json:"media_type" yaml:"media_type"`
	ID   uint64 `json:"tmdb_id" yaml:"tmdb_id"`
}

func (s SelectedIdentifier) String() string {
	return fmt.Sprintf("%s/%d", s.Kind, s.ID)
}

// Decode recovers the SelectedIdentifier of an entry produced by
// BuildChoices. It reads only the entry's key.
func Decode(entry ChoiceEntry) (SelectedIdentifier, error) {
	kind := ParseKind(entry.Key.Kind)
	if kind == KindInvalid {
		return SelectedIdentifier{}, fmt.Errorf("%w: kind %q", ErrMalformedEntry, entry.Key.Kind)
	}

	raw := strings.TrimSpace(entry.Key.ID)
	if raw == "" {
		return SelectedIdentifier{}, fmt.Errorf("%w: missing id", ErrMalformedEntry)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return SelectedIdentifier{}, fmt.Errorf("%w: %q", ErrMalformedID, entry.Key.ID)
	}

	return SelectedIdentifier{Kind: kind.Tag(), ID: id}, nil
}
