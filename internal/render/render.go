// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes choice lists and selections for humans (a table,
// optionally styled) and for scripts (JSON or YAML).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tmdb-pick/internal/choice"
)

// Format selects the list output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var (
	purple = lipgloss.Color("#bd93f9")
	green  = lipgloss.Color("#50fa7b")
	cyan   = lipgloss.Color("#8be9fd")
	orange = lipgloss.Color("#ffb86c")
	red    = lipgloss.Color("#ff5555")
)

// Printer writes user-facing output. The zero value prints plain text.
type Printer struct {
	Out    io.Writer
	Styled bool
}

func (p Printer) style(s lipgloss.Style, text string) string {
	if !p.Styled {
		return text
	}
	return s.Render(text)
}

// Choices writes entries in format f.
func (p Printer) Choices(entries []choice.ChoiceEntry, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(p.Out, listing(entries))
	case FormatYAML:
		return writeYAML(p.Out, listing(entries))
	case FormatTable, "":
		p.table(entries)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", f)
	}
}

// Selected confirms the decoded selection.
func (p Printer) Selected(sel choice.SelectedIdentifier, entry choice.ChoiceEntry) {
	label := p.style(lipgloss.NewStyle().Foreground(green).Bold(true), "You selected")
	fmt.Fprintf(p.Out, "%s %s (%s %d)\n", label, entry.Result.Title, sel.Kind, sel.ID)
}

// Forwarded confirms a successful forwarding call.
func (p Printer) Forwarded(sel choice.SelectedIdentifier, endpoint string) {
	label := p.style(lipgloss.NewStyle().Foreground(cyan), "Forwarded")
	fmt.Fprintf(p.Out, "%s %s to %s\n", label, sel, endpoint)
}

// NoResults reports an empty choice list.
func (p Printer) NoResults(query string) {
	fmt.Fprintln(p.Out, p.style(lipgloss.NewStyle().Foreground(orange), fmt.Sprintf("No movies or shows found for %q.", query)))
}

// Error reports a failure on the user's terminal.
func (p Printer) Error(err error) {
	fmt.Fprintln(p.Out, p.style(lipgloss.NewStyle().Foreground(red), "Error: "+err.Error()))
}

func (p Printer) table(entries []choice.ChoiceEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.Out, "No results found.")
		return
	}

	header := fmt.Sprintf("%-4s  %-5s  %-45s  %-10s  %-7s  %s", "#", "Kind", "Title", "Date", "Lang", "TMDB ID")
	fmt.Fprintln(p.Out, p.style(lipgloss.NewStyle().Foreground(purple).Bold(true), header))
	fmt.Fprintln(p.Out, strings.Repeat("-", 90))

	for i, e := range entries {
		r := e.Result
		fmt.Fprintf(p.Out, "%-4d  %-5s  %-45s  %-10s  %-7s  %d\n",
			i+1, r.Kind.Label(), truncate(oneLine(r.Title), 45), r.Date, r.Language, r.ID)
	}

	fmt.Fprintf(p.Out, "\n%d results\n", len(entries))
}

// listEntry is the script-facing shape of one choice.
type listEntry struct {
	Position  int    `json:"position" yaml:"position"`
	MediaType string `json:"media_type" yaml:"media_type"`
	TMDBID    uint64 `json:"tmdb_id" yaml:"tmdb_id"`
	Title     string `json:"title" yaml:"title"`
	Date      string `json:"date" yaml:"date"`
	Language  string `json:"language" yaml:"language"`
	Display   string `json:"display" yaml:"display"`
}

func listing(entries []choice.ChoiceEntry) []listEntry {
	out := make([]listEntry, len(entries))
	for i, e := range entries {
		out[i] = listEntry{
			Position:  i + 1,
			MediaType: e.Result.Kind.Tag(),
			TMDBID:    e.Result.ID,
			Title:     e.Result.Title,
			Date:      e.Result.Date,
			Language:  e.Result.Language,
			Display:   e.Display,
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

var flatten = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

func oneLine(s string) string {
	return flatten.Replace(s)
}

// truncate shortens s to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
