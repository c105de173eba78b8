// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pick runs the search-and-select pipeline: one search request, a
// choice list built from its hits, one selection, a decoded identifier,
// and an optional forwarding call. Which collaborators are wired in
// decides how interactive the run is and whether the result leaves the
// process.
package pick

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pdiddy/tmdb-pick/internal/choice"
	"github.com/pdiddy/tmdb-pick/internal/prompt"
	"github.com/pdiddy/tmdb-pick/internal/render"
	"github.com/pdiddy/tmdb-pick/pkg/types"
)

// ErrNoResults is returned when a search leaves nothing to choose from.
var ErrNoResults = errors.New("no movies or shows found")

// Searcher returns the raw hits for a search term.
type Searcher interface {
	SearchMulti(ctx context.Context, query string) ([]types.RawResult, error)
}

// Forwarder submits a selection to a downstream API.
type Forwarder interface {
	Forward(ctx context.Context, sel choice.SelectedIdentifier) error
	Endpoint() string
}

// Pipeline wires the collaborators of one run. Forwarder may be nil.
type Pipeline struct {
	Searcher  Searcher
	Selector  prompt.Selector
	Forwarder Forwarder
	Printer   render.Printer
	Logger    *slog.Logger
}

// Result is the outcome of a completed run.
type Result struct {
	Selected  choice.SelectedIdentifier
	Entry     choice.ChoiceEntry
	Forwarded bool
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// Choices searches for query and returns the choice list without
// selecting anything.
func (p *Pipeline) Choices(ctx context.Context, query string) ([]choice.ChoiceEntry, error) {
	raws, err := p.Searcher.SearchMulti(ctx, query)
	if err != nil {
		return nil, err
	}

	entries := choice.BuildChoices(raws)
	p.logger().Debug("search complete", "query", query, "hits", len(raws), "choices", len(entries))
	return entries, nil
}

// Run searches for query, asks the Selector for one entry, decodes it, and
// forwards it when a Forwarder is wired in. The Selector is never called
// with an empty list.
func (p *Pipeline) Run(ctx context.Context, query string) (Result, error) {
	entries, err := p.Choices(ctx, query)
	if err != nil {
		return Result{}, err
	}
	if len(entries) == 0 {
		p.Printer.NoResults(query)
		return Result{}, ErrNoResults
	}

	idx, err := p.Selector.Select(choice.Displays(entries))
	if err != nil {
		return Result{}, err
	}
	entry, err := choice.At(entries, idx)
	if err != nil {
		return Result{}, err
	}
	sel, err := choice.Decode(entry)
	if err != nil {
		return Result{}, fmt.Errorf("decoding selection: %w", err)
	}

	p.logger().Info("selected", "media_type", sel.Kind, "tmdb_id", sel.ID, "title", entry.Result.Title)
	p.Printer.Selected(sel, entry)

	res := Result{Selected: sel, Entry: entry}
	if p.Forwarder == nil {
		return res, nil
	}

	if err := p.Forwarder.Forward(ctx, sel); err != nil {
		p.logger().Error("forward failed", "selection", sel.String(), "error", err)
		return res, err
	}
	p.logger().Info("forwarded", "selection", sel.String(), "endpoint", p.Forwarder.Endpoint())
	p.Printer.Forwarded(sel, p.Forwarder.Endpoint())
	res.Forwarded = true
	return res, nil
}
