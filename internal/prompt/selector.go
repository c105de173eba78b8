// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt holds the interactive collaborators of the pipeline:
// reading the search term, choosing one entry from a menu, and deciding
// whether a terminal is available for either.
package prompt

import (
	"errors"
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// ErrCancelled is returned when the user aborts an input or a menu.
var ErrCancelled = errors.New("cancelled")

// Selector picks one of items and returns its 0-based index.
type Selector interface {
	Select(items []string) (int, error)
}

// FuzzySelector shows items in a fuzzy-finder menu on the terminal.
type FuzzySelector struct {
	Prompt string
	Header string
}

// Select opens the menu. It never opens on an empty list.
func (s FuzzySelector) Select(items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to select")
	}

	prompt := s.Prompt
	if prompt == "" {
		prompt = "Pick a title: "
	}
	opts := []fuzzyfinder.Option{fuzzyfinder.WithPromptString(prompt)}
	if s.Header != "" {
		opts = append(opts, fuzzyfinder.WithHeader(s.Header))
	}

	idx, err := fuzzyfinder.Find(items, func(i int) string { return items[i] }, opts...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return 0, ErrCancelled
	}
	if err != nil {
		return 0, fmt.Errorf("selection menu: %w", err)
	}
	return idx, nil
}

// IndexSelector picks a fixed 1-based position without any interaction.
type IndexSelector struct {
	Position int
}

// Select returns Position-1 when it names an existing item.
func (s IndexSelector) Select(items []string) (int, error) {
	if s.Position < 1 || s.Position > len(items) {
		return 0, fmt.Errorf("--pick %d is out of range: %d choice(s) available", s.Position, len(items))
	}
	return s.Position - 1, nil
}
